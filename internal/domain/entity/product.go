package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tallas válidas para Product.Size.
var validSizes = map[string]bool{
	"XS": true, "S": true, "M": true, "L": true, "XL": true,
	"XXL": true, "XXXL": true, "ONE_SIZE": true, "CUSTOM": true,
}

// ValidSize acepta vacío (talla no aplica) o una de las tallas conocidas.
func ValidSize(size string) bool {
	return size == "" || validSizes[size]
}

// Product es un artículo del catálogo, aislado por CompanyID.
// Published controla visibilidad en la tienda pública; IsActive es el borrado lógico.
type Product struct {
	ID           string
	Name         string
	Description  string
	SKU          string // único global, se guarda en mayúsculas
	CompanyID    string
	CategoryID   string
	CreatedBy    string
	Price        decimal.Decimal
	Cost         decimal.Decimal
	Tax          decimal.Decimal // porcentaje 0..100
	Discount     decimal.Decimal
	Quantity     int
	Unlimited    bool // existencias sin límite, ignora Quantity
	IncludeTax   bool
	Published    bool
	IsActive     bool
	FreeShipping bool
	Warranty     bool
	Color        string
	Size         string
	Rating       int
	Images       []Image
	Specs        []Spec
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
