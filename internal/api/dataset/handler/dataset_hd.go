package datasetHandler

import (
	"botforge/internal/api/dataset"
	contextPkg "botforge/pkg/context"
	"botforge/pkg/handlerUtil"
	"botforge/pkg/log"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *DatasetHandler) UploadDatasets(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing CSV upload request")

	form, err := ctx.MultipartForm()
	if err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	files := form.File["files"]
	if len(files) == 0 {
		return errHandler.Handle(ctx, requestID, dataset.ErrNoFilesUploaded, ctx.Path(), "upload_datasets")
	}

	result, err := h.datasetService.UploadDatasets(c, files)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "upload_datasets")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, result)
	}
}

func (h *DatasetHandler) GetAllDatasets(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	result, err := h.datasetService.GetAllDatasets(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_all_datasets")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func (h *DatasetHandler) PreviewDataset(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	name := ctx.Params("name")
	if name == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("dataset name is required"), ctx.Path())
	}

	result, err := h.datasetService.PreviewDataset(c, name)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "preview_dataset")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func (h *DatasetHandler) DeleteDataset(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing delete dataset request")

	name := ctx.Params("name")
	if name == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("dataset name is required"), ctx.Path())
	}

	if err := h.datasetService.DeleteDataset(c, name); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_dataset")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "CSV file deleted",
		})
	}
}
