package http

import (
	"errors"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

var errInvalidBody = errors.New("cuerpo inválido")

// bindBody parsea y valida el cuerpo JSON contra los tags `validate` del DTO.
func bindBody(c *fiber.Ctx, v interface{}) error {
	if err := c.BodyParser(v); err != nil {
		return errInvalidBody
	}
	return validate.Struct(v)
}
