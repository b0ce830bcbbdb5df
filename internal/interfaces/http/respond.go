package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/bulldogbars/barstock-api/internal/application/dto"
	"github.com/bulldogbars/barstock-api/internal/domain"
)

// internalDetail controla si los errores 500 exponen el mensaje real.
// En producción se reemplaza por un mensaje genérico. Lo fija Router().
var internalDetail = true

// fail responde un sobre de error con código y mensaje.
func fail(c *fiber.Ctx, status int, code, message string) error {
	env := dto.Fail(code)
	env.Message = message
	return c.Status(status).JSON(env)
}

// failErr mapea errores de dominio a su estado HTTP y código del sobre.
func failErr(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity):
		return fail(c, fiber.StatusBadRequest, "INVALID_QUANTITY", err.Error())
	case errors.Is(err, domain.ErrInsufficientStock):
		return fail(c, fiber.StatusBadRequest, "INSUFFICIENT_STOCK", err.Error())
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidLocation),
		errors.Is(err, domain.ErrInvalidStatusChange):
		return fail(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUserInactive),
		errors.Is(err, domain.ErrUnauthorized):
		return fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", err.Error())
	case errors.Is(err, domain.ErrForbidden):
		return fail(c, fiber.StatusForbidden, "FORBIDDEN", err.Error())
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, domain.ErrDuplicate):
		return fail(c, fiber.StatusConflict, "DUPLICATE", err.Error())
	case errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrDeliveryAlreadyClosed):
		return fail(c, fiber.StatusConflict, "CONFLICT", err.Error())
	}
	message := "error interno"
	if internalDetail {
		message = err.Error()
	}
	return fail(c, fiber.StatusInternalServerError, "INTERNAL", message)
}

// ok responde 200 con data en el sobre.
func ok(c *fiber.Ctx, data interface{}) error {
	return c.JSON(dto.OK(data))
}

// created responde 201 con data en el sobre.
func created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(dto.OK(data))
}

// paramID lee el parámetro de ruta como int64 positivo.
func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidInput
	}
	return int64(id), nil
}
