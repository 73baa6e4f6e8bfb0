package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/djengua/ecommerce-api/internal/application/dto"
	"github.com/djengua/ecommerce-api/internal/application/usecase"
)

// BundleHandler maneja los paquetes de productos (protegido).
type BundleHandler struct {
	uc *usecase.BundleUseCase
}

// NewBundleHandler construye el handler.
func NewBundleHandler(uc *usecase.BundleUseCase) *BundleHandler {
	return &BundleHandler{uc: uc}
}

// List godoc
// @Summary      Listar paquetes de la compañía activa
// @Tags         bundles
// @Security     Bearer
// @Produce      json
// @Param        page   query  int     false  "Página (desde 1)"
// @Param        limit  query  int     false  "Tamaño de página"
// @Param        q      query  string  false  "Buscar en nombre, sku y descripción"
// @Success      200  {object}  dto.Response{data=[]dto.BundleResponse}
// @Router       /api/bundles [get]
func (h *BundleHandler) List(c *fiber.Ctx) error {
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
// @Summary      Obtener paquete por ID
// @Tags         bundles
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del paquete"
// @Success      200  {object}  dto.Response{data=dto.BundleResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/bundles/{id} [get]
func (h *BundleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetCaller(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "paquete no encontrado")
	}
	return c.JSON(dto.OK(out))
}

// Create godoc
// @Summary      Crear paquete
// @Tags         bundles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBundleRequest  true  "Datos del paquete"
// @Success      201   {object}  dto.Response{data=dto.BundleResponse}
// @Failure      400   {object}  dto.Response
// @Failure      409   {object}  dto.Response
// @Router       /api/bundles [post]
func (h *BundleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBundleRequest
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
	if len(in.Products) == 0 {
		errs = append(errs, dto.FieldError{Field: "products", Message: "el paquete necesita al menos un producto", Location: "body"})
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
// @Summary      Actualizar paquete (parcial)
// @Tags         bundles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del paquete"
// @Param        body  body  dto.UpdateBundleRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.Response{data=dto.BundleResponse}
// @Failure      404   {object}  dto.Response
// @Router       /api/bundles/{id} [put]
func (h *BundleHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBundleRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Update(GetCaller(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "paquete no encontrado")
	}
	return c.JSON(dto.OK(out))
}

// Delete godoc
// @Summary      Desactivar paquete
// @Tags         bundles
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del paquete"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/bundles/{id} [delete]
func (h *BundleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetCaller(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Response{Success: true, Message: "paquete desactivado"})
}
