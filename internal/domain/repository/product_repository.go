package repository

import (
	"github.com/djengua/ecommerce-api/internal/domain/entity"
	"github.com/djengua/ecommerce-api/internal/domain/scope"
)

// CatalogQuery criterios de listado para productos y bundles: filtro de alcance
// más búsqueda por substring (name/sku/description, sin distinguir mayúsculas),
// categoría opcional, solo publicados (tienda pública) y paginación.
type CatalogQuery struct {
	Scope         scope.Filter
	CategoryID    string
	Search        string
	OnlyPublished bool
	Limit         int
	Offset        int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	GetByIDs(ids []string) ([]*entity.Product, error)
	Update(product *entity.Product) error
	List(q CatalogQuery) ([]*entity.Product, error)
	Count(q CatalogQuery) (int, error)
}
