package backup

import (
	"botforge/pkg/response"

	"github.com/gofiber/fiber/v2"
)

var (
	ErrInvalidBackup   = response.NewError(fiber.StatusBadRequest, "backup must contain triggers and csvData")
	ErrMalformedBackup = response.NewError(fiber.StatusBadRequest, "backup file could not be parsed")
)
