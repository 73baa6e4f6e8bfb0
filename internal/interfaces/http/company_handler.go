package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/djengua/ecommerce-api/internal/application/dto"
	"github.com/djengua/ecommerce-api/internal/application/usecase"
)

// CompanyHandler maneja las compañías del solicitante (protegido) y la vista
// pública.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// List godoc
// @Summary      Listar compañías del alcance
// @Tags         companies
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]dto.CompanyResponse}
// @Router       /api/companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetCaller(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKCount(out, len(out)))
}

// GetByID godoc
// @Summary      Obtener compañía por ID
// @Tags         companies
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la compañía"
// @Success      200  {object}  dto.Response{data=dto.CompanyResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/companies/{id} [get]
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetCaller(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "la compañía no existe")
	}
	return c.JSON(dto.OK(out))
}

// GetPublic godoc
// @Summary      Vista pública de una compañía
// @Tags         companies
// @Produce      json
// @Param        id   path  string  true  "ID de la compañía"
// @Success      200  {object}  dto.Response{data=dto.PublicCompanyResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/companies/{id}/public [get]
func (h *CompanyHandler) GetPublic(c *fiber.Ctx) error {
	out, err := h.uc.GetPublic(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "la compañía no existe")
	}
	return c.JSON(dto.OK(out))
}

// Create godoc
// @Summary      Crear compañía
// @Tags         companies
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyRequest  true  "Datos de la compañía"
// @Success      201   {object}  dto.Response{data=dto.CompanyResponse}
// @Failure      400   {object}  dto.Response
// @Failure      409   {object}  dto.Response
// @Router       /api/companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	if strings.TrimSpace(in.Name) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FailValidation([]dto.FieldError{
			{Field: "name", Message: "el nombre es requerido", Location: "body"},
		}))
	}
	out, err := h.uc.Create(GetCaller(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// Update godoc
// @Summary      Actualizar compañía (parcial)
// @Tags         companies
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la compañía"
// @Param        body  body  dto.UpdateCompanyRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.Response{data=dto.CompanyResponse}
// @Failure      404   {object}  dto.Response
// @Router       /api/companies/{id} [put]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Update(GetCaller(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "la compañía no existe")
	}
	return c.JSON(dto.OK(out))
}

// Delete godoc
// @Summary      Borrar compañía (lógico)
// @Tags         companies
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la compañía"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/companies/{id} [delete]
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetCaller(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Response{Success: true, Message: "compañía eliminada"})
}
