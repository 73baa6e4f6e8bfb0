package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/djengua/ecommerce-api/internal/application/dto"
	"github.com/djengua/ecommerce-api/internal/domain"
	"github.com/djengua/ecommerce-api/internal/domain/entity"
	"github.com/djengua/ecommerce-api/internal/domain/repository"
	"github.com/djengua/ecommerce-api/internal/domain/scope"
)

// CategoryUseCase gestión de categorías. Pertenecen a la cuenta admin dueña
// (userId); los usuarios gestionados operan sobre las de su creador.
type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
	companyRepo  repository.CompanyRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(categoryRepo repository.CategoryRepository, companyRepo repository.CompanyRepository) *CategoryUseCase {
	return &CategoryUseCase{categoryRepo: categoryRepo, companyRepo: companyRepo}
}

// owner resuelve la cuenta dueña: el creador para usuarios gestionados, el
// propio solicitante para admins y superadmins.
func owner(c scope.Caller) (string, error) {
	f, err := scope.Owned(c)
	if err != nil {
		return "", err
	}
	if f.CreatedBy != "" {
		return f.CreatedBy, nil
	}
	return c.ID, nil
}

// Create crea una categoría. El nombre es único por dueño sin distinguir
// mayúsculas.
func (uc *CategoryUseCase) Create(c scope.Caller, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	ownerID, err := owner(c)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.categoryRepo.GetByName(name, ownerID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        name,
		Description: in.Description,
		IsActive:    isActive,
		UserID:      ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// List lista las categorías del dueño del alcance.
func (uc *CategoryUseCase) List(c scope.Caller) ([]dto.CategoryResponse, error) {
	ownerID, err := owner(c)
	if err != nil {
		return nil, err
	}
	f := scope.Filter{CreatedBy: ownerID, OnlyActive: !c.Privileged()}
	if c.Role == entity.RoleSuperadmin {
		f.CreatedBy = ""
	}
	categories, err := uc.categoryRepo.List(f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		items = append(items, *toCategoryResponse(category))
	}
	return items, nil
}

// GetByID obtiene una categoría dentro del alcance.
func (uc *CategoryUseCase) GetByID(c scope.Caller, id string) (*dto.CategoryResponse, error) {
	category, err := uc.inScope(c, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	return toCategoryResponse(category), nil
}

// Update aplica cambios parciales a una categoría dentro del alcance.
func (uc *CategoryUseCase) Update(c scope.Caller, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.inScope(c, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		if !strings.EqualFold(name, category.Name) {
			existing, err := uc.categoryRepo.GetByName(name, category.UserID)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != category.ID {
				return nil, domain.ErrDuplicate
			}
		}
		category.Name = name
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	if in.IsActive != nil {
		category.IsActive = *in.IsActive
	}
	category.UpdatedAt = time.Now()
	if err := uc.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Delete desactiva una categoría. Repetir la operación no es error.
func (uc *CategoryUseCase) Delete(c scope.Caller, id string) error {
	ownerID, err := owner(c)
	if err != nil {
		return err
	}
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrCategoryNotFound
	}
	if c.Role != entity.RoleSuperadmin && category.UserID != ownerID {
		return domain.ErrCategoryNotFound
	}
	if !category.IsActive {
		return nil
	}
	category.IsActive = false
	category.UpdatedAt = time.Now()
	return uc.categoryRepo.Update(category)
}

// PublicList lista las categorías activas de la cuenta dueña de una compañía.
// No requiere sesión.
func (uc *CategoryUseCase) PublicList(companyID string) ([]dto.PublicCategoryResponse, error) {
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil || company.Deleted || !company.IsActive {
		return nil, domain.ErrNotFound
	}
	categories, err := uc.categoryRepo.List(scope.Filter{CreatedBy: company.CreatedBy, OnlyActive: true})
	if err != nil {
		return nil, err
	}
	items := make([]dto.PublicCategoryResponse, 0, len(categories))
	for _, category := range categories {
		items = append(items, dto.PublicCategoryResponse{ID: category.ID, Name: category.Name})
	}
	return items, nil
}

func (uc *CategoryUseCase) inScope(c scope.Caller, id string) (*entity.Category, error) {
	ownerID, err := owner(c)
	if err != nil {
		return nil, err
	}
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	if c.Role != entity.RoleSuperadmin && category.UserID != ownerID {
		return nil, nil
	}
	if !c.Privileged() && !category.IsActive {
		return nil, nil
	}
	return category, nil
}

func toCategoryResponse(category *entity.Category) *dto.CategoryResponse {
	if category == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		IsActive:    category.IsActive,
		UserID:      category.UserID,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}
