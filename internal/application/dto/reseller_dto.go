package dto

import "time"

// CreateResellerRequest entrada para crear un revendedor. EntityID debe existir.
type CreateResellerRequest struct {
	EntityID string `json:"entity_id" validate:"required,uuid"`
	Status   *bool  `json:"status"`
}

// UpdateResellerRequest entrada para reemplazar un revendedor.
type UpdateResellerRequest struct {
	EntityID string `json:"entity_id" validate:"required,uuid"`
	Status   *bool  `json:"status" validate:"required"`
}

// ResellerResponse salida de un revendedor.
type ResellerResponse struct {
	ID        string    `json:"id"`
	EntityID  string    `json:"entity_id"`
	Status    bool      `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
