package repository

import (
	"github.com/djengua/ecommerce-api/internal/domain/entity"
	"github.com/djengua/ecommerce-api/internal/domain/scope"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// El borrado es lógico (Deleted=true vía Update); List nunca devuelve eliminadas.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	// GetByName compara sin distinguir mayúsculas, dentro del alcance del creador.
	GetByName(name, createdBy string) (*entity.Company, error)
	Update(company *entity.Company) error
	List(f scope.Filter) ([]*entity.Company, error)
}
