package entity

import "time"

// Company es el tenant: los recursos de catálogo se aíslan por compañía.
// Deleted es borrado lógico; IsActive controla visibilidad pública.
type Company struct {
	ID          string
	Name        string
	Description string
	IsActive    bool
	Deleted     bool
	CreatedBy   string // admin dueño de la compañía
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
