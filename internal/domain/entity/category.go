package entity

import "time"

// Category agrupa productos y bundles. Pertenece al admin que la creó (UserID);
// los usuarios de ese admin la ven a través de su createdBy.
type Category struct {
	ID          string
	Name        string
	Description string
	IsActive    bool
	UserID      string // admin dueño
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
