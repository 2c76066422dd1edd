package insightHandler

import (
	insightService "botforge/internal/api/insight/service"
	"botforge/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type InsightHandler struct {
	log            *logrus.Logger
	middleware     middleware.Middleware
	insightService insightService.IInsightService
}

func New(
	log *logrus.Logger,
	middleware middleware.Middleware,
	is insightService.IInsightService,
) *InsightHandler {
	return &InsightHandler{
		log:            log,
		middleware:     middleware,
		insightService: is,
	}
}

func (h *InsightHandler) Start(srv fiber.Router) {
	insights := srv.Group("/insights")

	insights.Get("/validation", h.Validate)
	insights.Get("/optimization", h.Optimize)
	insights.Get("/stats", h.Stats)
}
