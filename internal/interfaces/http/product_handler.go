package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/djengua/ecommerce-api/internal/application/dto"
	"github.com/djengua/ecommerce-api/internal/application/usecase"
)

// ProductHandler maneja el catálogo de productos (protegido).
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos de la compañía activa
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        page        query  int     false  "Página (desde 1)"
// @Param        limit       query  int     false  "Tamaño de página"
// @Param        categoryId  query  string  false  "Filtrar por categoría"
// @Param        q           query  string  false  "Buscar en nombre, sku y descripción"
// @Success      200  {object}  dto.Response{data=[]dto.ProductResponse}
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var q dto.ProductListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("parámetros inválidos"))
	}
	out, page, err := h.uc.List(GetCaller(c), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKPage(out, *page))
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.Response{data=dto.ProductResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetCaller(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "producto no encontrado")
	}
	return c.JSON(dto.OK(out))
}

// GetByIDs godoc
// @Summary      Obtener lote de productos por IDs
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IDsRequest  true  "IDs de productos"
// @Success      200   {object}  dto.Response{data=[]dto.ProductResponse}
// @Router       /api/products/by-ids [post]
func (h *ProductHandler) GetByIDs(c *fiber.Ctx) error {
	var in dto.IDsRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.GetByIDs(GetCaller(c), in.IDs)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKCount(out, len(out)))
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.Response{data=dto.ProductResponse}
// @Failure      400   {object}  dto.Response
// @Failure      409   {object}  dto.Response
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	var errs []dto.FieldError
	if strings.TrimSpace(in.SKU) == "" {
		errs = append(errs, dto.FieldError{Field: "sku", Message: "el sku es requerido", Location: "body"})
	}
	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, dto.FieldError{Field: "name", Message: "el nombre es requerido", Location: "body"})
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
// @Summary      Actualizar producto (parcial)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.Response{data=dto.ProductResponse}
// @Failure      404   {object}  dto.Response
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Update(GetCaller(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "producto no encontrado")
	}
	return c.JSON(dto.OK(out))
}

// Delete godoc
// @Summary      Desactivar producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetCaller(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Response{Success: true, Message: "producto desactivado"})
}
