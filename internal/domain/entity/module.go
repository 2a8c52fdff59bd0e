package entity

import "time"

// Module representa un módulo funcional que pertenece a un Software.
// SoftwareID es obligatorio y debe existir al crear o reasignar el módulo.
type Module struct {
	ID          string    `db:"id"`
	SoftwareID  string    `db:"software_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Status      bool      `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
