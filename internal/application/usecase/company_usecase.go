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

// CompanyUseCase gestión de compañías (tenants). El nombre es único por
// creador sin distinguir mayúsculas; el borrado es lógico e idempotente.
type CompanyUseCase struct {
	companyRepo repository.CompanyRepository
	userRepo    repository.UserRepository
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(companyRepo repository.CompanyRepository, userRepo repository.UserRepository) *CompanyUseCase {
	return &CompanyUseCase{companyRepo: companyRepo, userRepo: userRepo}
}

// Create crea una compañía para el solicitante y lo agrega como miembro.
// Si aún no tiene compañía activa, esta queda activa.
func (uc *CompanyUseCase) Create(c scope.Caller, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.companyRepo.GetByName(name, c.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil && !existing.Deleted {
		return nil, domain.ErrDuplicate
	}
	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	now := time.Now()
	company := &entity.Company{
		ID:          uuid.New().String(),
		Name:        name,
		Description: in.Description,
		IsActive:    isActive,
		CreatedBy:   c.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.companyRepo.Create(company); err != nil {
		return nil, err
	}
	if err := uc.enroll(c.ID, company.ID); err != nil {
		return nil, err
	}
	return uc.toCompanyResponse(company), nil
}

// List lista compañías del alcance del solicitante, sin las borradas.
func (uc *CompanyUseCase) List(c scope.Caller) ([]dto.CompanyResponse, error) {
	f, err := scope.Owned(c)
	if err != nil {
		return nil, err
	}
	companies, err := uc.companyRepo.List(f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(companies))
	for _, company := range companies {
		if company.Deleted {
			continue
		}
		items = append(items, *uc.toCompanyResponse(company))
	}
	return items, nil
}

// GetByID obtiene una compañía dentro del alcance del solicitante.
func (uc *CompanyUseCase) GetByID(c scope.Caller, id string) (*dto.CompanyResponse, error) {
	company, err := uc.inScope(c, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	return uc.toCompanyResponse(company), nil
}

// GetPublic vista pública de una compañía activa. No requiere sesión.
func (uc *CompanyUseCase) GetPublic(id string) (*dto.PublicCompanyResponse, error) {
	company, err := uc.companyRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil || company.Deleted || !company.IsActive {
		return nil, nil
	}
	return &dto.PublicCompanyResponse{
		ID:          company.ID,
		Name:        company.Name,
		Description: company.Description,
	}, nil
}

// Update aplica cambios parciales a una compañía dentro del alcance.
func (uc *CompanyUseCase) Update(c scope.Caller, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.inScope(c, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		if !strings.EqualFold(name, company.Name) {
			existing, err := uc.companyRepo.GetByName(name, company.CreatedBy)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != company.ID && !existing.Deleted {
				return nil, domain.ErrDuplicate
			}
		}
		company.Name = name
	}
	if in.Description != nil {
		company.Description = *in.Description
	}
	if in.IsActive != nil {
		company.IsActive = *in.IsActive
	}
	company.UpdatedAt = time.Now()
	if err := uc.companyRepo.Update(company); err != nil {
		return nil, err
	}
	return uc.toCompanyResponse(company), nil
}

// Delete marca la compañía como borrada. Repetir la operación no es error.
func (uc *CompanyUseCase) Delete(c scope.Caller, id string) error {
	f, err := scope.Owned(c)
	if err != nil {
		return err
	}
	company, err := uc.companyRepo.GetByID(id)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}
	if f.CreatedBy != "" && company.CreatedBy != f.CreatedBy {
		return domain.ErrNotFound
	}
	if company.Deleted {
		return nil
	}
	company.Deleted = true
	company.IsActive = false
	company.UpdatedAt = time.Now()
	return uc.companyRepo.Update(company)
}

func (uc *CompanyUseCase) inScope(c scope.Caller, id string) (*entity.Company, error) {
	f, err := scope.Owned(c)
	if err != nil {
		return nil, err
	}
	company, err := uc.companyRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil || company.Deleted {
		return nil, nil
	}
	if f.CreatedBy != "" && company.CreatedBy != f.CreatedBy {
		return nil, nil
	}
	if f.OnlyActive && !company.IsActive {
		return nil, nil
	}
	return company, nil
}

// enroll agrega la compañía a las membresías del usuario y la activa si no
// tenía una compañía activa.
func (uc *CompanyUseCase) enroll(userID, companyID string) error {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if !user.MemberOf(companyID) {
		user.Companies = append(user.Companies, companyID)
	}
	if user.ActiveCompany == "" {
		user.ActiveCompany = companyID
	}
	user.UpdatedAt = time.Now()
	return uc.userRepo.Update(user)
}

func (uc *CompanyUseCase) toCompanyResponse(company *entity.Company) *dto.CompanyResponse {
	if company == nil {
		return nil
	}
	resp := &dto.CompanyResponse{
		ID:          company.ID,
		Name:        company.Name,
		Description: company.Description,
		IsActive:    company.IsActive,
		CreatedAt:   company.CreatedAt,
		UpdatedAt:   company.UpdatedAt,
	}
	if company.CreatedBy != "" {
		creator, err := uc.userRepo.GetByID(company.CreatedBy)
		if err == nil && creator != nil {
			resp.CreatedBy = &dto.CreatorRef{
				ID:       creator.ID,
				Name:     creator.Name,
				LastName: creator.LastName,
				Email:    creator.Email,
			}
		}
	}
	return resp
}
