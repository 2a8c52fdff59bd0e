package entity

import "time"

// Software representa un producto de software licenciable del catálogo.
type Software struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Status      bool      `db:"status"` // true = activo
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
