package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/djengua/ecommerce-api/internal/application/auth"
	"github.com/djengua/ecommerce-api/internal/application/dto"
)

// AuthHandler maneja registro, login y sesión actual.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar cuenta
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Datos de la cuenta"
// @Success      201   {object}  dto.Response{data=dto.SessionResponse}
// @Failure      400   {object}  dto.Response
// @Failure      409   {object}  dto.Response
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	if errs := validateRegister(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FailValidation(errs))
	}
	out, err := h.uc.Register(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.Response{data=dto.SessionResponse}
// @Failure      401   {object}  dto.Response
// @Failure      403   {object}  dto.Response
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FailValidation([]dto.FieldError{
			{Field: "email", Message: "email y password son requeridos", Location: "body"},
		}))
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Me godoc
// @Summary      Perfil del usuario autenticado
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response{data=dto.UserResponse}
// @Failure      401  {object}  dto.Response
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	caller := GetCaller(c)
	out, err := h.uc.Me(caller.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

func validateRegister(in dto.RegisterRequest) []dto.FieldError {
	var errs []dto.FieldError
	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, dto.FieldError{Field: "name", Message: "el nombre es requerido", Location: "body"})
	}
	if !strings.Contains(in.Email, "@") {
		errs = append(errs, dto.FieldError{Field: "email", Message: "email inválido", Value: in.Email, Location: "body"})
	}
	if len(in.Password) < 6 {
		errs = append(errs, dto.FieldError{Field: "password", Message: "la contraseña debe tener al menos 6 caracteres", Location: "body"})
	}
	return errs
}
