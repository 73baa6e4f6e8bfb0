package scope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/djengua/ecommerce-api/internal/domain"
	"github.com/djengua/ecommerce-api/internal/domain/entity"
	"github.com/djengua/ecommerce-api/internal/domain/scope"
)

const (
	adminID   = "admin-1"
	companyID = "company-1"
)

func TestOwned_SuperadminSinRestriccion(t *testing.T) {
	f, err := scope.Owned(scope.Caller{ID: "sa-1", Role: entity.RoleSuperadmin})
	require.NoError(t, err)

	assert.Empty(t, f.CreatedBy)
	assert.Empty(t, f.CompanyID)
	assert.False(t, f.OnlyActive, "superadmin puede ver filas inactivas")
}

func TestOwned_AdminSoloVeLoSuyo(t *testing.T) {
	f, err := scope.Owned(scope.Caller{ID: adminID, Role: entity.RoleAdmin})
	require.NoError(t, err)

	assert.Equal(t, adminID, f.CreatedBy)
	assert.False(t, f.OnlyActive, "admin ve inactivas en gestión")
}

func TestOwned_UserHeredaElAlcanceDeSuAdmin(t *testing.T) {
	f, err := scope.Owned(scope.Caller{ID: "user-1", Role: entity.RoleUser, CreatedBy: adminID})
	require.NoError(t, err)

	assert.Equal(t, adminID, f.CreatedBy)
	assert.True(t, f.OnlyActive, "user solo ve filas activas")
}

func TestOwned_UserSinCreatedBy_FallaCerrado(t *testing.T) {
	_, err := scope.Owned(scope.Caller{ID: "user-1", Role: entity.RoleUser})

	assert.ErrorIs(t, err, domain.ErrScopeConfig,
		"user sin admin dueño debe fallar, nunca devolver datos sin alcance")
}

func TestOwned_RolDesconocido_Forbidden(t *testing.T) {
	_, err := scope.Owned(scope.Caller{ID: "x", Role: "bodeguero"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCatalog_RestringePorCompaniaActiva(t *testing.T) {
	f, err := scope.Catalog(scope.Caller{
		ID: "user-1", Role: entity.RoleUser, CreatedBy: adminID, ActiveCompany: companyID,
	})
	require.NoError(t, err)

	assert.Equal(t, companyID, f.CompanyID)
	assert.True(t, f.OnlyActive)
}

func TestCatalog_AdminVeInactivasDeSuCompania(t *testing.T) {
	f, err := scope.Catalog(scope.Caller{ID: adminID, Role: entity.RoleAdmin, ActiveCompany: companyID})
	require.NoError(t, err)

	assert.Equal(t, companyID, f.CompanyID)
	assert.False(t, f.OnlyActive)
}

func TestCatalog_SinCompaniaActiva_Error(t *testing.T) {
	_, err := scope.Catalog(scope.Caller{ID: adminID, Role: entity.RoleAdmin})
	assert.ErrorIs(t, err, domain.ErrNoActiveCompany)
}

func TestCatalog_UserSinCreatedBy_FallaCerrado(t *testing.T) {
	_, err := scope.Catalog(scope.Caller{ID: "user-1", Role: entity.RoleUser, ActiveCompany: companyID})
	assert.ErrorIs(t, err, domain.ErrScopeConfig)
}

func TestFromUser_CopiaLosCamposDeAlcance(t *testing.T) {
	u := &entity.User{
		ID:            "user-1",
		Role:          entity.RoleUser,
		CreatedBy:     adminID,
		ActiveCompany: companyID,
	}
	c := scope.FromUser(u)

	assert.Equal(t, u.ID, c.ID)
	assert.Equal(t, u.Role, c.Role)
	assert.Equal(t, u.CreatedBy, c.CreatedBy)
	assert.Equal(t, u.ActiveCompany, c.ActiveCompany)
}
