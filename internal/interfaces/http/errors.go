package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/ablemeditech-dev/able-inventory-sub001/internal/application/dto"
	"github.com/ablemeditech-dev/able-inventory-sub001/internal/domain"
)

// respondError traduce errores de dominio a códigos HTTP.
func respondError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// parseLocationID valida que el id de ubicación sea un UUID.
func parseLocationID(raw string) (string, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: id de ubicación %q", domain.ErrInvalidInput, raw)
	}
	return id.String(), nil
}
