package repository

import "context"

// Repository define el puerto de persistencia genérico (DIP) para cualquier registro T.
// Las implementaciones viven en infrastructure (postgres, memory).
type Repository[T any] interface {
	// Add asigna la identidad, valida campos obligatorios y persiste el registro.
	Add(ctx context.Context, record *T) error
	// ListAll devuelve todos los registros; el orden no está garantizado.
	ListAll(ctx context.Context) ([]*T, error)
	// FindFirst devuelve el primer registro que cumple el criterio, o (nil, nil) si no hay ninguno.
	FindFirst(ctx context.Context, c Criteria) (*T, error)
	// FindAll devuelve todos los registros que cumplen el criterio.
	FindAll(ctx context.Context, c Criteria) ([]*T, error)
	// Update persiste el registro existente identificado por su ID.
	Update(ctx context.Context, record *T) error
	// Delete elimina el registro por ID. Falla con domain.ErrReferenced si otro registro lo referencia.
	Delete(ctx context.Context, record *T) error
}

// Criteria es un predicado de igualdad sobre una columna del registro.
// Solo se aceptan columnas declaradas en la metadata de la tabla.
type Criteria struct {
	Column string
	Value  any
}

// ByID busca por identidad.
func ByID(id string) Criteria {
	return Criteria{Column: "id", Value: id}
}

// ByName busca por nombre.
func ByName(name string) Criteria {
	return Criteria{Column: "name", Value: name}
}

// ByColumn busca por igualdad sobre una columna arbitraria (p. ej. la referencia al padre).
func ByColumn(column string, value any) Criteria {
	return Criteria{Column: column, Value: value}
}
