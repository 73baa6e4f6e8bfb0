package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bundle es un paquete de productos vendido como unidad. Mismo aislamiento por
// compañía que Product; Products guarda los ids de los productos incluidos.
type Bundle struct {
	ID           string
	Name         string
	Description  string
	SKU          string // único global, se guarda en mayúsculas
	CompanyID    string
	CategoryID   string
	CreatedBy    string
	Products     []string
	Price        decimal.Decimal
	Discount     decimal.Decimal
	Quantity     int
	Published    bool
	IsActive     bool
	FreeShipping bool
	Warranty     bool
	Rating       int
	Images       []Image
	Specs        []Spec
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
