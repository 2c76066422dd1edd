package triggerHandler

import (
	triggerService "botforge/internal/api/trigger/service"
	"botforge/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type TriggerHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	triggerService triggerService.ITriggerService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ts triggerService.ITriggerService,
) *TriggerHandler {
	return &TriggerHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		triggerService: ts,
	}
}

func (h *TriggerHandler) Start(srv fiber.Router) {
	triggers := srv.Group("/triggers")

	triggers.Post("/", h.CreateTrigger)
	triggers.Post("/samples", h.SeedSampleTriggers)
	triggers.Get("", h.GetAllTriggers)
	triggers.Get("/:id", h.GetTriggerByID)
	triggers.Post("/:id/test", h.TestTrigger)
	triggers.Delete("/:id", h.DeleteTrigger)
}
