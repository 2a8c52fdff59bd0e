package entity

import "time"

// Reseller representa un revendedor asociado a una entidad organizacional.
// Mientras exista, la entidad referenciada no puede eliminarse (ON DELETE RESTRICT).
type Reseller struct {
	ID        string    `db:"id"`
	EntityID  string    `db:"entity_id"`
	Status    bool      `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}
