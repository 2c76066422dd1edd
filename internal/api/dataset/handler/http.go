package datasetHandler

import (
	datasetService "botforge/internal/api/dataset/service"
	"botforge/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type DatasetHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	datasetService datasetService.IDatasetService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ds datasetService.IDatasetService,
) *DatasetHandler {
	return &DatasetHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		datasetService: ds,
	}
}

func (h *DatasetHandler) Start(srv fiber.Router) {
	datasets := srv.Group("/datasets")

	datasets.Post("/", h.UploadDatasets)
	datasets.Get("", h.GetAllDatasets)
	datasets.Get("/:name/preview", h.PreviewDataset)
	datasets.Delete("/:name", h.DeleteDataset)
}
