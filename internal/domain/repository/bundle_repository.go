package repository

import "github.com/djengua/ecommerce-api/internal/domain/entity"

// BundleRepository define el puerto de persistencia para Bundle (DIP).
// Comparte CatalogQuery con los productos: mismo alcance y criterios.
type BundleRepository interface {
	Create(bundle *entity.Bundle) error
	GetByID(id string) (*entity.Bundle, error)
	GetBySKU(sku string) (*entity.Bundle, error)
	Update(bundle *entity.Bundle) error
	List(q CatalogQuery) ([]*entity.Bundle, error)
	Count(q CatalogQuery) (int, error)
}
