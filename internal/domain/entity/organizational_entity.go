package entity

import "time"

// EntityType clasifica una entidad organizacional.
type EntityType string

// Tipos de entidad soportados (deben coincidir con el CHECK de organizational_entities).
const (
	EntityTypeClient      EntityType = "client"
	EntityTypeDistributor EntityType = "distributor"
	EntityTypeReseller    EntityType = "reseller"
	EntityTypePartner     EntityType = "partner"
)

// Valid informa si el tipo es uno de los valores enumerados.
func (t EntityType) Valid() bool {
	switch t {
	case EntityTypeClient, EntityTypeDistributor, EntityTypeReseller, EntityTypePartner:
		return true
	}
	return false
}

// OrganizationalEntity representa una organización (cliente, distribuidor, socio...).
type OrganizationalEntity struct {
	ID        string     `db:"id"`
	Name      string     `db:"name"`
	Address   string     `db:"address"`
	Phone     string     `db:"phone"`
	Status    bool       `db:"status"`
	Type      EntityType `db:"type"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}
