// Package scope centraliza el cálculo del filtro de visibilidad multi-tenant.
// El código original repetía estos condicionales en cada controlador y divergían
// entre sí; aquí hay una sola tabla de reglas:
//
//	superadmin -> sin restricción
//	admin      -> filas cuyo dueño (createdBy/userId) es el propio admin
//	user       -> filas del admin que lo creó; sin createdBy es estado
//	              inconsistente y se falla cerrado, nunca datos sin alcance
//
// Los recursos de catálogo (productos, bundles) agregan además la restricción
// de compañía activa.
package scope

import (
	"github.com/djengua/ecommerce-api/internal/domain"
	"github.com/djengua/ecommerce-api/internal/domain/entity"
)

// Caller es la identidad resuelta por el middleware de autenticación.
type Caller struct {
	ID            string
	Role          string
	CreatedBy     string
	ActiveCompany string
}

// FromUser construye el Caller desde el usuario autenticado.
func FromUser(u *entity.User) Caller {
	return Caller{
		ID:            u.ID,
		Role:          u.Role,
		CreatedBy:     u.CreatedBy,
		ActiveCompany: u.ActiveCompany,
	}
}

// Privileged indica si el rol puede ver filas inactivas en los endpoints de administración.
func (c Caller) Privileged() bool {
	return c.Role == entity.RoleAdmin || c.Role == entity.RoleSuperadmin
}

// Filter es el predicado de visibilidad que los repositorios componen con los
// criterios propios de cada petición. Campos vacíos no restringen.
type Filter struct {
	CreatedBy  string // dueño (admin) de las filas visibles
	CompanyID  string // compañía de las filas visibles
	OnlyActive bool   // true -> solo filas isActive
}

// Owned devuelve el filtro para recursos con alcance de creador:
// compañías, categorías y listados de usuarios.
func Owned(c Caller) (Filter, error) {
	switch c.Role {
	case entity.RoleSuperadmin:
		return Filter{}, nil
	case entity.RoleAdmin:
		return Filter{CreatedBy: c.ID}, nil
	case entity.RoleUser:
		if c.CreatedBy == "" {
			// Un user sin admin dueño no tiene alcance calculable: error de
			// configuración, distinto de 403/404.
			return Filter{}, domain.ErrScopeConfig
		}
		return Filter{CreatedBy: c.CreatedBy, OnlyActive: true}, nil
	default:
		return Filter{}, domain.ErrForbidden
	}
}

// Catalog devuelve el filtro para recursos con alcance de compañía:
// productos y bundles. Exige compañía activa; para role=user además solo
// filas activas.
func Catalog(c Caller) (Filter, error) {
	if !entity.ValidRole(c.Role) {
		return Filter{}, domain.ErrForbidden
	}
	if c.Role == entity.RoleUser && c.CreatedBy == "" {
		return Filter{}, domain.ErrScopeConfig
	}
	if c.ActiveCompany == "" {
		return Filter{}, domain.ErrNoActiveCompany
	}
	return Filter{
		CompanyID:  c.ActiveCompany,
		OnlyActive: !c.Privileged(),
	}, nil
}
