package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/djengua/ecommerce-api/internal/application/dto"
	"github.com/djengua/ecommerce-api/internal/domain"
	"github.com/djengua/ecommerce-api/internal/domain/entity"
	"github.com/djengua/ecommerce-api/internal/domain/repository"
	"github.com/djengua/ecommerce-api/internal/domain/scope"
	"github.com/djengua/ecommerce-api/pkg/random"
)

// UserUseCase gestión de usuarios dentro del alcance del solicitante.
// Los usuarios gestionados siempre nacen con role=user y createdBy=quien los crea.
type UserUseCase struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository, companyRepo repository.CompanyRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, companyRepo: companyRepo}
}

// List lista usuarios visibles para el solicitante, con filtros opcionales
// por rol y compañía.
func (uc *UserUseCase) List(c scope.Caller, q dto.UserListQuery) ([]dto.UserResponse, error) {
	f, err := scope.Owned(c)
	if err != nil {
		return nil, err
	}
	users, err := uc.userRepo.List(repository.UserQuery{Scope: f, Role: q.Role, Company: q.Company})
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, *toUserResponse(u))
	}
	return items, nil
}

// GetByID obtiene un usuario por ID si está dentro del alcance del solicitante.
func (uc *UserUseCase) GetByID(c scope.Caller, id string) (*dto.UserResponse, error) {
	user, err := uc.inScope(c, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return toUserResponse(user), nil
}

// Create da de alta un usuario gestionado: role=user, createdBy=solicitante.
// Si no viene contraseña se genera una temporal y se incluye en la respuesta.
func (uc *UserUseCase) Create(c scope.Caller, in dto.CreateUserRequest) (*dto.CreatedUserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	for _, companyID := range in.Companies {
		company, err := uc.companyRepo.GetByID(companyID)
		if err != nil {
			return nil, err
		}
		if company == nil || company.Deleted {
			return nil, domain.ErrInvalidInput
		}
	}
	active := in.ActiveCompany
	if active == "" && len(in.Companies) > 0 {
		active = in.Companies[0]
	}
	if active != "" && !contains(in.Companies, active) {
		return nil, domain.ErrInvalidInput
	}
	password := in.Password
	temp := ""
	if password == "" {
		temp = random.Text(8)
		password = temp
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	companies := in.Companies
	if companies == nil {
		companies = []string{}
	}
	now := time.Now()
	user := &entity.User{
		ID:            uuid.New().String(),
		Name:          strings.TrimSpace(in.Name),
		LastName:      strings.TrimSpace(in.LastName),
		Email:         email,
		PasswordHash:  string(hash),
		Role:          entity.RoleUser,
		IsActive:      true,
		Avatar:        entity.DefaultAvatar,
		Phone:         in.Phone,
		CreatedBy:     c.ID,
		Companies:     companies,
		ActiveCompany: active,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return &dto.CreatedUserResponse{UserResponse: *toUserResponse(user), TempPassword: temp}, nil
}

// Update aplica cambios parciales a un usuario dentro del alcance.
func (uc *UserUseCase) Update(c scope.Caller, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.inScope(c, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if email == "" || !strings.Contains(email, "@") {
			return nil, domain.ErrInvalidInput
		}
		if email != user.Email {
			existing, err := uc.userRepo.GetByEmail(email)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != user.ID {
				return nil, domain.ErrEmailAlreadyExists
			}
			user.Email = email
		}
	}
	if in.Name != nil {
		user.Name = strings.TrimSpace(*in.Name)
	}
	if in.LastName != nil {
		user.LastName = strings.TrimSpace(*in.LastName)
	}
	if in.Role != nil {
		if !entity.ValidRole(*in.Role) {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *in.Role
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if in.Companies != nil {
		user.Companies = *in.Companies
		if user.ActiveCompany != "" && !user.MemberOf(user.ActiveCompany) {
			user.ActiveCompany = ""
		}
	}
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// ChangeCompany cambia la compañía activa del propio solicitante. La compañía
// debe estar en su lista de membresías.
func (uc *UserUseCase) ChangeCompany(c scope.Caller, companyID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(c.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if !user.MemberOf(companyID) {
		return nil, domain.ErrInvalidInput
	}
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil || company.Deleted {
		return nil, domain.ErrNotFound
	}
	user.ActiveCompany = companyID
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	resp.ActiveCompany = &dto.CompanyRef{
		ID:          company.ID,
		Name:        company.Name,
		Description: company.Description,
		IsActive:    company.IsActive,
	}
	return resp, nil
}

// Delete elimina definitivamente un usuario gestionado dentro del alcance.
func (uc *UserUseCase) Delete(c scope.Caller, id string) error {
	user, err := uc.inScope(c, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.userRepo.Delete(id)
}

// inScope resuelve el filtro del solicitante y retorna el usuario solo si lo
// satisface; fuera de alcance equivale a no encontrado.
func (uc *UserUseCase) inScope(c scope.Caller, id string) (*entity.User, error) {
	f, err := scope.Owned(c)
	if err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if f.CreatedBy != "" && user.CreatedBy != f.CreatedBy {
		return nil, nil
	}
	if f.OnlyActive && !user.IsActive {
		return nil, nil
	}
	return user, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	companies := u.Companies
	if companies == nil {
		companies = []string{}
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		Avatar:    u.Avatar,
		Phone:     u.Phone,
		CreatedBy: u.CreatedBy,
		Companies: companies,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
