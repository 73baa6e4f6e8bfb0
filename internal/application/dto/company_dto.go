package dto

import "time"

// CreatorRef resumen del usuario creador poblado en respuestas.
type CreatorRef struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	LastName string `json:"lastName,omitempty"`
	Email    string `json:"email,omitempty"`
}

// CompanyResponse representación de compañía para los endpoints de administración.
type CompanyResponse struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	IsActive    bool        `json:"isActive"`
	CreatedBy   *CreatorRef `json:"createdBy,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// PublicCompanyResponse vista pública: solo nombre y descripción.
type PublicCompanyResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateCompanyRequest alta de compañía.
type CreateCompanyRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    *bool  `json:"isActive"`
}

// UpdateCompanyRequest actualización parcial de compañía.
type UpdateCompanyRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}
