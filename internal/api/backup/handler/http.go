package backupHandler

import (
	backupService "botforge/internal/api/backup/service"
	"botforge/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type BackupHandler struct {
	log           *logrus.Logger
	middleware    middleware.Middleware
	backupService backupService.IBackupService
}

func New(
	log *logrus.Logger,
	middleware middleware.Middleware,
	bs backupService.IBackupService,
) *BackupHandler {
	return &BackupHandler{
		log:           log,
		middleware:    middleware,
		backupService: bs,
	}
}

func (h *BackupHandler) Start(srv fiber.Router) {
	bk := srv.Group("/backup")

	bk.Get("", h.Export)
	bk.Post("/", h.Import)
	bk.Delete("/", h.ClearAll)
}
