package dto

// ListResponse lista de registros con el total devuelto.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// NewListResponse construye la respuesta garantizando items no nulo en JSON.
func NewListResponse[T any](items []T) *ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return &ListResponse[T]{Items: items, Total: len(items)}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// UpdateStatusRequest entrada para los endpoints PUT /:id/status.
type UpdateStatusRequest struct {
	Status *bool `json:"status" validate:"required"`
}

// UpdateNameRequest entrada para los endpoints PUT /:id/name.
type UpdateNameRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// boolOr devuelve *b o def si es nil.
func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}

// StatusOrDefault aplica el estado por defecto (activo) cuando el payload no lo trae.
func StatusOrDefault(b *bool) bool {
	return boolOr(b, true)
}
