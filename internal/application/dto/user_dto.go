package dto

import "time"

// CompanyRef resumen de compañía poblado en respuestas de usuario/catálogo.
type CompanyRef struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"isActive"`
}

// UserResponse representación pública del usuario; nunca incluye el hash de contraseña.
type UserResponse struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	LastName      string      `json:"lastName"`
	Email         string      `json:"email"`
	Role          string      `json:"role"`
	IsActive      bool        `json:"isActive"`
	Avatar        string      `json:"avatar,omitempty"`
	Phone         string      `json:"phone,omitempty"`
	CreatedBy     string      `json:"createdBy,omitempty"`
	Companies     []string    `json:"companies"`
	ActiveCompany *CompanyRef `json:"activeCompany,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

// CreateUserRequest alta de usuario gestionado (role=user) por un admin.
// Si Password viene vacío se genera una contraseña temporal.
type CreateUserRequest struct {
	Name          string   `json:"name"`
	LastName      string   `json:"lastName"`
	Email         string   `json:"email"`
	Password      string   `json:"password"`
	Phone         string   `json:"phone"`
	Companies     []string `json:"companies"`
	ActiveCompany string   `json:"activeCompany"`
}

// CreatedUserResponse respuesta de alta: incluye la contraseña temporal
// solo cuando fue generada por el sistema.
type CreatedUserResponse struct {
	UserResponse
	TempPassword string `json:"tempPassword,omitempty"`
}

// UpdateUserRequest actualización parcial: solo los campos presentes cambian.
type UpdateUserRequest struct {
	Name      *string   `json:"name"`
	LastName  *string   `json:"lastName"`
	Email     *string   `json:"email"`
	Role      *string   `json:"role"`
	IsActive  *bool     `json:"isActive"`
	Phone     *string   `json:"phone"`
	Password  *string   `json:"password"`
	Companies *[]string `json:"companies"`
}

// UserListQuery filtros opcionales del listado de usuarios.
type UserListQuery struct {
	Role    string `query:"role"`
	Company string `query:"company"`
}
