package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/djengua/ecommerce-api/internal/application/dto"
	"github.com/djengua/ecommerce-api/internal/domain"
	"github.com/djengua/ecommerce-api/internal/domain/entity"
	"github.com/djengua/ecommerce-api/internal/domain/repository"
	"github.com/djengua/ecommerce-api/internal/domain/scope"
	"github.com/djengua/ecommerce-api/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(u *entity.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) List(q repository.UserQuery) ([]*entity.User, error) {
	out := []*entity.User{}
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) Delete(id string) error {
	delete(f.users, id)
	return nil
}

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: map[string]*entity.Company{}}
}

func (f *fakeCompanyRepo) Create(c *entity.Company) error {
	f.companies[c.ID] = c
	return nil
}

func (f *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	return f.companies[id], nil
}

func (f *fakeCompanyRepo) GetByName(name, createdBy string) (*entity.Company, error) {
	for _, c := range f.companies {
		if c.Name == name && c.CreatedBy == createdBy {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCompanyRepo) Update(c *entity.Company) error {
	f.companies[c.ID] = c
	return nil
}

func (f *fakeCompanyRepo) List(fl scope.Filter) ([]*entity.Company, error) {
	out := []*entity.Company{}
	for _, c := range f.companies {
		out = append(out, c)
	}
	return out, nil
}

func newTestUseCase(t *testing.T) (*UseCase, *fakeUserRepo, *fakeCompanyRepo) {
	t.Helper()
	tokens, err := jwt.New("secreto-de-prueba", "djengua-test", 30, 90)
	require.NoError(t, err)
	users := newFakeUserRepo()
	companies := newFakeCompanyRepo()
	return NewUseCase(users, companies, tokens), users, companies
}

func TestRegister_CreaAdminYEmiteToken(t *testing.T) {
	uc, users, _ := newTestUseCase(t)

	session, err := uc.Register(dto.RegisterRequest{
		Name:     "Laura",
		LastName: "Mendez",
		Email:    "  Laura@Djengua.com ",
		Password: "secreta123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)

	created, err := users.GetByEmail("laura@djengua.com")
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, entity.RoleAdmin, created.Role)
	assert.True(t, created.IsActive)
	assert.Equal(t, entity.DefaultAvatar, created.Avatar)
	assert.NotEqual(t, "secreta123", created.PasswordHash)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	_, err := uc.Register(dto.RegisterRequest{Name: "Laura", Email: "laura@djengua.com", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Name: "Otra", Email: "LAURA@djengua.com", Password: "otra456"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_DatosIncompletos(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	_, err := uc.Register(dto.RegisterRequest{Email: "sin-nombre@djengua.com", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_CredencialesValidas(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	_, err := uc.Register(dto.RegisterRequest{Name: "Laura", Email: "laura@djengua.com", Password: "secreta123"})
	require.NoError(t, err)

	session, err := uc.Login(dto.LoginRequest{Email: "laura@djengua.com", Password: "secreta123"})
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	_, err := uc.Register(dto.RegisterRequest{Name: "Laura", Email: "laura@djengua.com", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "laura@djengua.com", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@djengua.com", Password: "loquesea"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	uc, users, _ := newTestUseCase(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secreta123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, users.Create(&entity.User{
		ID:           "u-1",
		Email:        "baja@djengua.com",
		PasswordHash: string(hash),
		Role:         entity.RoleUser,
		IsActive:     false,
	}))

	_, err = uc.Login(dto.LoginRequest{Email: "baja@djengua.com", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrInactiveUser)
}

func TestMe_PueblaCompaniaActiva(t *testing.T) {
	uc, users, companies := newTestUseCase(t)

	require.NoError(t, companies.Create(&entity.Company{
		ID: "c-1", Name: "Acme", Description: "tienda", IsActive: true, CreatedBy: "u-1",
	}))
	require.NoError(t, users.Create(&entity.User{
		ID: "u-1", Name: "Laura", Email: "laura@djengua.com", Role: entity.RoleAdmin,
		IsActive: true, Companies: []string{"c-1"}, ActiveCompany: "c-1",
	}))

	me, err := uc.Me("u-1")
	require.NoError(t, err)
	require.NotNil(t, me.ActiveCompany)
	assert.Equal(t, "c-1", me.ActiveCompany.ID)
	assert.Equal(t, "Acme", me.ActiveCompany.Name)
}

func TestMe_UsuarioInexistente(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	_, err := uc.Me("no-existe")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
