package dto

import "time"

// CreateEntityRequest entrada para crear una entidad organizacional.
type CreateEntityRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Address string `json:"address" validate:"max=300"`
	Phone   string `json:"phone" validate:"max=50"`
	Type    string `json:"type" validate:"required,oneof=client distributor reseller partner"`
	Status  *bool  `json:"status"`
}

// UpdateEntityRequest entrada para reemplazar todos los campos mutables de una entidad.
type UpdateEntityRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Address string `json:"address" validate:"max=300"`
	Phone   string `json:"phone" validate:"max=50"`
	Type    string `json:"type" validate:"required,oneof=client distributor reseller partner"`
	Status  *bool  `json:"status" validate:"required"`
}

// UpdateAddressRequest entrada para PUT /api/entities/:id/address. Vacío borra la dirección.
type UpdateAddressRequest struct {
	Address string `json:"address" validate:"max=300"`
}

// UpdatePhoneRequest entrada para PUT /api/entities/:id/phone. Vacío borra el teléfono.
type UpdatePhoneRequest struct {
	Phone string `json:"phone" validate:"max=50"`
}

// UpdateTypeRequest entrada para PUT /api/entities/:id/type.
type UpdateTypeRequest struct {
	Type string `json:"type" validate:"required,oneof=client distributor reseller partner"`
}

// EntityResponse salida de una entidad organizacional.
type EntityResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Status    bool      `json:"status"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
