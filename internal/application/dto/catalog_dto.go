package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/djengua/ecommerce-api/internal/domain/entity"
)

// ProductResponse representación completa de producto para administración.
type ProductResponse struct {
	ID           string          `json:"id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Cost         decimal.Decimal `json:"cost"`
	Quantity     int             `json:"quantity"`
	Unlimited    bool            `json:"unlimited"`
	Color        string          `json:"color,omitempty"`
	Size         string          `json:"size,omitempty"`
	Tax          decimal.Decimal `json:"tax"`
	IncludeTax   bool            `json:"includeTax"`
	Discount     decimal.Decimal `json:"discount"`
	FreeShipping bool            `json:"freeShipping"`
	Warranty     bool            `json:"warranty"`
	Rating       int             `json:"rating"`
	Published    bool            `json:"published"`
	IsActive     bool            `json:"isActive"`
	Images       []entity.Image  `json:"images"`
	Specs        []entity.Spec   `json:"specs"`
	Category     *CategoryRef    `json:"categoryId,omitempty"`
	Company      *CompanyRef     `json:"companyId,omitempty"`
	CreatedBy    string          `json:"createdBy,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// CreateProductRequest alta de producto.
type CreateProductRequest struct {
	SKU          string           `json:"sku"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Price        decimal.Decimal  `json:"price"`
	Cost         decimal.Decimal  `json:"cost"`
	Quantity     int              `json:"quantity"`
	Unlimited    bool             `json:"unlimited"`
	Color        string           `json:"color"`
	Size         string           `json:"size"`
	Tax          *decimal.Decimal `json:"tax"`
	IncludeTax   *bool            `json:"includeTax"`
	Discount     *decimal.Decimal `json:"discount"`
	FreeShipping bool             `json:"freeShipping"`
	Warranty     bool             `json:"warranty"`
	Published    *bool            `json:"published"`
	Images       []entity.Image   `json:"images"`
	Specs        []entity.Spec    `json:"specs"`
	CategoryID   string           `json:"categoryId"`
}

// UpdateProductRequest actualización parcial: solo los campos presentes se aplican.
type UpdateProductRequest struct {
	SKU          *string          `json:"sku"`
	Name         *string          `json:"name"`
	Description  *string          `json:"description"`
	Price        *decimal.Decimal `json:"price"`
	Cost         *decimal.Decimal `json:"cost"`
	Quantity     *int             `json:"quantity"`
	Unlimited    *bool            `json:"unlimited"`
	Color        *string          `json:"color"`
	Size         *string          `json:"size"`
	Tax          *decimal.Decimal `json:"tax"`
	IncludeTax   *bool            `json:"includeTax"`
	Discount     *decimal.Decimal `json:"discount"`
	FreeShipping *bool            `json:"freeShipping"`
	Warranty     *bool            `json:"warranty"`
	Rating       *int             `json:"rating"`
	Published    *bool            `json:"published"`
	IsActive     *bool            `json:"isActive"`
	Images       []entity.Image   `json:"images"`
	Specs        []entity.Spec    `json:"specs"`
	CategoryID   *string          `json:"categoryId"`
}

// ProductListQuery filtros de listado de productos.
type ProductListQuery struct {
	PageRequest
	CategoryID string `query:"categoryId"`
	Search     string `query:"q"`
}

// IDsRequest lote de identificadores para consultas por conjunto.
type IDsRequest struct {
	IDs []string `json:"ids"`
}

// BundleResponse representación de paquete de productos.
type BundleResponse struct {
	ID           string            `json:"id"`
	SKU          string            `json:"sku"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Price        decimal.Decimal   `json:"price"`
	Quantity     int               `json:"quantity"`
	Discount     decimal.Decimal   `json:"discount"`
	FreeShipping bool              `json:"freeShipping"`
	Warranty     bool              `json:"warranty"`
	Rating       int               `json:"rating"`
	Published    bool              `json:"published"`
	IsActive     bool              `json:"isActive"`
	Images       []entity.Image    `json:"images"`
	Specs        []entity.Spec     `json:"specs"`
	Products     []ProductResponse `json:"products"`
	Category     *CategoryRef      `json:"categoryId,omitempty"`
	Company      *CompanyRef       `json:"companyId,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

// CreateBundleRequest alta de paquete.
type CreateBundleRequest struct {
	SKU          string           `json:"sku"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Price        decimal.Decimal  `json:"price"`
	Quantity     int              `json:"quantity"`
	Discount     *decimal.Decimal `json:"discount"`
	FreeShipping bool             `json:"freeShipping"`
	Warranty     bool             `json:"warranty"`
	Published    *bool            `json:"published"`
	Images       []entity.Image   `json:"images"`
	Specs        []entity.Spec    `json:"specs"`
	Products     []string         `json:"products"`
	CategoryID   string           `json:"categoryId"`
}

// UpdateBundleRequest actualización parcial de paquete.
type UpdateBundleRequest struct {
	SKU          *string          `json:"sku"`
	Name         *string          `json:"name"`
	Description  *string          `json:"description"`
	Price        *decimal.Decimal `json:"price"`
	Quantity     *int             `json:"quantity"`
	Discount     *decimal.Decimal `json:"discount"`
	FreeShipping *bool            `json:"freeShipping"`
	Warranty     *bool            `json:"warranty"`
	Rating       *int             `json:"rating"`
	Published    *bool            `json:"published"`
	IsActive     *bool            `json:"isActive"`
	Images       []entity.Image   `json:"images"`
	Specs        []entity.Spec    `json:"specs"`
	Products     *[]string        `json:"products"`
	CategoryID   *string          `json:"categoryId"`
}

// StorefrontItem vista pública de producto: sin costos ni datos internos.
type StorefrontItem struct {
	ID           string          `json:"id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int             `json:"quantity"`
	Unlimited    bool            `json:"unlimited"`
	Color        string          `json:"color,omitempty"`
	Size         string          `json:"size,omitempty"`
	Discount     decimal.Decimal `json:"discount"`
	FreeShipping bool            `json:"freeShipping"`
	Warranty     bool            `json:"warranty"`
	Rating       int             `json:"rating"`
	Images       []entity.Image  `json:"images"`
	Specs        []entity.Spec   `json:"specs"`
	Category     *CategoryRef    `json:"category,omitempty"`
}

// StorefrontCatalog página pública de la tienda: compañía más sus productos
// publicados.
type StorefrontCatalog struct {
	Company  PublicCompanyResponse `json:"company"`
	Products []StorefrontItem      `json:"products"`
}

// StorefrontQuery filtros públicos de la tienda.
type StorefrontQuery struct {
	PageRequest
	CategoryID string `query:"categoryId"`
	SearchTerm string `query:"searchTerm"`
}
