package repository

import (
	"github.com/djengua/ecommerce-api/internal/domain/entity"
	"github.com/djengua/ecommerce-api/internal/domain/scope"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	// GetByName compara sin distinguir mayúsculas, dentro del alcance del admin dueño.
	GetByName(name, userID string) (*entity.Category, error)
	GetByIDs(ids []string) ([]*entity.Category, error)
	Update(category *entity.Category) error
	List(f scope.Filter) ([]*entity.Category, error)
}
