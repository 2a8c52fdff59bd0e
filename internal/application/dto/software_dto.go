package dto

import "time"

// CreateSoftwareRequest entrada para crear un software.
type CreateSoftwareRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Status      *bool  `json:"status"`
}

// UpdateSoftwareRequest entrada para reemplazar todos los campos mutables de un software.
type UpdateSoftwareRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Status      *bool  `json:"status" validate:"required"`
}

// SoftwareResponse salida de un software.
type SoftwareResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      bool      `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
