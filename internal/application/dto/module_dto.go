package dto

import "time"

// CreateModuleRequest entrada para crear un módulo. SoftwareID debe existir.
type CreateModuleRequest struct {
	SoftwareID  string `json:"software_id" validate:"required,uuid"`
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Status      *bool  `json:"status"`
}

// UpdateModuleRequest entrada para reemplazar un módulo; permite reasignar el software.
type UpdateModuleRequest struct {
	SoftwareID  string `json:"software_id" validate:"required,uuid"`
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Status      *bool  `json:"status" validate:"required"`
}

// ModuleResponse salida de un módulo.
type ModuleResponse struct {
	ID          string    `json:"id"`
	SoftwareID  string    `json:"software_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      bool      `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
