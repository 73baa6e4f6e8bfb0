package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/djengua/ecommerce-api/internal/application/dto"
	"github.com/djengua/ecommerce-api/internal/application/usecase"
)

// UserHandler maneja la gestión de usuarios (protegido).
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List godoc
// @Summary      Listar usuarios del alcance
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        role     query  string  false  "Filtrar por rol"
// @Param        company  query  string  false  "Filtrar por compañía"
// @Success      200  {object}  dto.Response{data=[]dto.UserResponse}
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	var q dto.UserListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("parámetros inválidos"))
	}
	out, err := h.uc.List(GetCaller(c), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKCount(out, len(out)))
}

// GetByID godoc
// @Summary      Obtener usuario por ID
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.Response{data=dto.UserResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetCaller(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "usuario no encontrado")
	}
	return c.JSON(dto.OK(out))
}

// Create godoc
// @Summary      Crear usuario gestionado
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.Response{data=dto.CreatedUserResponse}
// @Failure      400   {object}  dto.Response
// @Failure      409   {object}  dto.Response
// @Router       /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	var errs []dto.FieldError
	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, dto.FieldError{Field: "name", Message: "el nombre es requerido", Location: "body"})
	}
	if !strings.Contains(in.Email, "@") {
		errs = append(errs, dto.FieldError{Field: "email", Message: "email inválido", Value: in.Email, Location: "body"})
	}
	if len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FailValidation(errs))
	}
	out, err := h.uc.Create(GetCaller(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// Update godoc
// @Summary      Actualizar usuario (parcial)
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del usuario"
// @Param        body  body  dto.UpdateUserRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.Response{data=dto.UserResponse}
// @Failure      404   {object}  dto.Response
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Update(GetCaller(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "usuario no encontrado")
	}
	return c.JSON(dto.OK(out))
}

// ChangeCompany godoc
// @Summary      Cambiar compañía activa del solicitante
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        companyId  path  string  true  "ID de la compañía"
// @Success      200  {object}  dto.Response{data=dto.UserResponse}
// @Failure      400  {object}  dto.Response
// @Router       /api/users/change-company/{companyId} [put]
func (h *UserHandler) ChangeCompany(c *fiber.Ctx) error {
	out, err := h.uc.ChangeCompany(GetCaller(c), c.Params("companyId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMessage(out, "compañía activa actualizada"))
}

// Delete godoc
// @Summary      Eliminar usuario gestionado
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetCaller(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Response{Success: true, Message: "usuario eliminado"})
}
