package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/djengua/ecommerce-api/internal/application/dto"
	"github.com/djengua/ecommerce-api/internal/domain"
	"github.com/djengua/ecommerce-api/internal/domain/entity"
	"github.com/djengua/ecommerce-api/internal/domain/repository"
	"github.com/djengua/ecommerce-api/pkg/jwt"
)

// UseCase casos de uso de autenticación: registro, login y sesión actual.
type UseCase struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	tokens      *jwt.Service
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository, companyRepo repository.CompanyRepository, tokens *jwt.Service) *UseCase {
	return &UseCase{userRepo: userRepo, companyRepo: companyRepo, tokens: tokens}
}

// Register auto-registro público: siempre crea una cuenta admin y emite token.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *UseCase) Register(in dto.RegisterRequest) (*dto.SessionResponse, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" || strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(in.Name),
		LastName:     strings.TrimSpace(in.LastName),
		Email:        email,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		IsActive:     true,
		Avatar:       entity.DefaultAvatar,
		Companies:    []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	token, err := uc.tokens.Generate(user.ID, user.Role, user.Email, false)
	if err != nil {
		return nil, err
	}
	return &dto.SessionResponse{Token: token}, nil
}

// Login verifica credenciales y emite un JWT. Credenciales inválidas y usuario
// inexistente responden igual para no filtrar qué emails existen.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.SessionResponse, error) {
	user, err := uc.userRepo.GetByEmail(normalizeEmail(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, domain.ErrInactiveUser
	}
	token, err := uc.tokens.Generate(user.ID, user.Role, user.Email, in.RememberMe)
	if err != nil {
		return nil, err
	}
	return &dto.SessionResponse{Token: token}, nil
}

// Me retorna el perfil del usuario autenticado con la compañía activa poblada.
func (uc *UseCase) Me(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	resp := toUserResponse(user)
	if user.ActiveCompany != "" {
		company, err := uc.companyRepo.GetByID(user.ActiveCompany)
		if err != nil {
			return nil, err
		}
		if company != nil {
			resp.ActiveCompany = &dto.CompanyRef{
				ID:          company.ID,
				Name:        company.Name,
				Description: company.Description,
				IsActive:    company.IsActive,
			}
		}
	}
	return resp, nil
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
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
