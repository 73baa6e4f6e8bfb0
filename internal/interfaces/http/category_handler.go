package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/djengua/ecommerce-api/internal/application/dto"
	"github.com/djengua/ecommerce-api/internal/application/usecase"
)

// CategoryHandler maneja las categorías (protegido) y su listado público.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar categorías del alcance
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]dto.CategoryResponse}
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetCaller(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKCount(out, len(out)))
}

// GetByID godoc
// @Summary      Obtener categoría por ID
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.Response{data=dto.CategoryResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/categories/{id} [get]
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetCaller(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "la categoria no existe")
	}
	return c.JSON(dto.OK(out))
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "Datos de la categoría"
// @Success      201   {object}  dto.Response{data=dto.CategoryResponse}
// @Failure      400   {object}  dto.Response
// @Failure      409   {object}  dto.Response
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
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
// @Summary      Actualizar categoría (parcial)
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la categoría"
// @Param        body  body  dto.UpdateCategoryRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.Response{data=dto.CategoryResponse}
// @Failure      404   {object}  dto.Response
// @Router       /api/categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Update(GetCaller(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "la categoria no existe")
	}
	return c.JSON(dto.OK(out))
}

// Delete godoc
// @Summary      Desactivar categoría
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetCaller(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Response{Success: true, Message: "categoría desactivada"})
}

// PublicList godoc
// @Summary      Categorías activas de una compañía (público)
// @Tags         categories
// @Produce      json
// @Param        companyId  path  string  true  "ID de la compañía"
// @Success      200  {object}  dto.Response{data=[]dto.PublicCategoryResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/categories/public/{companyId} [get]
func (h *CategoryHandler) PublicList(c *fiber.Ctx) error {
	out, err := h.uc.PublicList(c.Params("companyId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKCount(out, len(out)))
}
