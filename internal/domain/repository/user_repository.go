package repository

import (
	"github.com/djengua/ecommerce-api/internal/domain/entity"
	"github.com/djengua/ecommerce-api/internal/domain/scope"
)

// UserQuery criterios de listado de usuarios: el filtro de alcance más los
// filtros opcionales de la petición.
type UserQuery struct {
	Scope   scope.Filter
	Role    string // filtra por rol exacto si no está vacío
	Company string // filtra por compañía activa si no está vacío
}

// UserRepository define el puerto de persistencia para User (DIP).
// La implementación vive en infrastructure. GetBy* devuelven (nil, nil) si no existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	List(q UserQuery) ([]*entity.User, error)
	// Delete elimina definitivamente; solo se usa para usuarios gestionados por un admin.
	Delete(id string) error
}
