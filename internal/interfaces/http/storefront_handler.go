package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/djengua/ecommerce-api/internal/application/dto"
	"github.com/djengua/ecommerce-api/internal/application/usecase"
)

// StorefrontHandler maneja las lecturas públicas de la tienda. Sin sesión.
type StorefrontHandler struct {
	uc *usecase.StorefrontUseCase
}

// NewStorefrontHandler construye el handler.
func NewStorefrontHandler(uc *usecase.StorefrontUseCase) *StorefrontHandler {
	return &StorefrontHandler{uc: uc}
}

// Catalog godoc
// @Summary      Catálogo público de una compañía
// @Tags         ecommerce
// @Produce      json
// @Param        companyId   path   string  true   "ID de la compañía"
// @Param        page        query  int     false  "Página (desde 1)"
// @Param        limit       query  int     false  "Tamaño de página"
// @Param        categoryId  query  string  false  "Filtrar por categoría"
// @Param        searchTerm  query  string  false  "Buscar en nombre, sku y descripción"
// @Success      200  {object}  dto.Response{data=dto.StorefrontCatalog}
// @Failure      404  {object}  dto.Response
// @Router       /api/ecommerce/{companyId} [get]
func (h *StorefrontHandler) Catalog(c *fiber.Ctx) error {
	var q dto.StorefrontQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("parámetros inválidos"))
	}
	out, page, err := h.uc.Catalog(c.Params("companyId"), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKPage(out, *page))
}

// Detail godoc
// @Summary      Detalle público de un producto publicado
// @Tags         ecommerce
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.Response{data=dto.StorefrontItem}
// @Failure      404  {object}  dto.Response
// @Router       /api/ecommerce/detail/{id} [get]
func (h *StorefrontHandler) Detail(c *fiber.Ctx) error {
	out, err := h.uc.Detail(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "producto no encontrado")
	}
	return c.JSON(dto.OK(out))
}
