package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/djengua/ecommerce-api/internal/application/dto"
	"github.com/djengua/ecommerce-api/internal/domain"
)

// statusFor traduce errores del dominio a códigos HTTP. Lo que no reconoce es
// un 500; ErrScopeConfig también, porque una cuenta mal configurada cierra el
// acceso en vez de abrirlo.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrCategoryNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrDuplicate),
		errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrNoActiveCompany):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden),
		errors.Is(err, domain.ErrInactiveUser):
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError contesta con el sobre de error. Los 500 no exponen el detalle
// interno al cliente.
func respondError(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	message := err.Error()
	if status == fiber.StatusInternalServerError {
		message = "error interno del servidor"
	}
	return c.Status(status).JSON(dto.Fail(message))
}

func respondNotFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.Fail(message))
}

func respondBadBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
}
