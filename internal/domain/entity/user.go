package entity

import "time"

// Roles válidos para User.
const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperadmin = "superadmin"
)

// DefaultAvatar es el avatar asignado al registrar un usuario.
const DefaultAvatar = "/avatars/profile.jpg"

// User representa un usuario del sistema. Los admin se registran solos y crean
// usuarios (role=user) con CreatedBy apuntando al admin dueño. ActiveCompany es
// la compañía sobre la que operan los endpoints de catálogo y debe pertenecer
// a Companies cuando está asignada.
type User struct {
	ID            string
	Name          string
	LastName      string
	Email         string
	PasswordHash  string // bcrypt hash, nunca plano en dominio después de persistir
	Role          string // user, admin, superadmin
	IsActive      bool
	Avatar        string
	Phone         string
	CreatedBy     string   // id del admin que lo creó; vacío para admins auto-registrados
	Companies     []string // membresías de compañías
	ActiveCompany string   // compañía activa (una de Companies) o vacío
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ValidRole indica si el rol es uno de los conocidos.
func ValidRole(role string) bool {
	switch role {
	case RoleUser, RoleAdmin, RoleSuperadmin:
		return true
	}
	return false
}

// MemberOf indica si el usuario pertenece a la compañía.
func (u *User) MemberOf(companyID string) bool {
	for _, id := range u.Companies {
		if id == companyID {
			return true
		}
	}
	return false
}
