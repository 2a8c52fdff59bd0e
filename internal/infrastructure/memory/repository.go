package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jhoicas/Licencias-api/internal/domain"
	"github.com/jhoicas/Licencias-api/internal/domain/entity"
	"github.com/jhoicas/Licencias-api/internal/domain/repository"
	"github.com/jhoicas/Licencias-api/internal/infrastructure/schema"
)

// Asegura que Repo implementa repository.Repository para cada registro.
var (
	_ repository.Repository[entity.Software]             = (*Repo[entity.Software])(nil)
	_ repository.Repository[entity.Module]               = (*Repo[entity.Module])(nil)
	_ repository.Repository[entity.OrganizationalEntity] = (*Repo[entity.OrganizationalEntity])(nil)
	_ repository.Repository[entity.Reseller]             = (*Repo[entity.Reseller])(nil)
)

// Repo repositorio genérico en memoria. Guarda y devuelve copias: el llamador nunca
// comparte punteros con el estado almacenado.
type Repo[T any] struct {
	store *Store
	table schema.Table[T]
	rows  *table
}

// NewRepo registra la tabla en el Store y devuelve su repositorio.
func NewRepo[T any](store *Store, tbl schema.Table[T]) *Repo[T] {
	rows := store.register(tbl.Name, func(row any, name string) (any, bool) {
		return tbl.Value(row.(*T), name)
	})
	return &Repo[T]{store: store, table: tbl, rows: rows}
}

// Add asigna la identidad si falta, valida obligatorios y claves foráneas, y guarda una copia.
func (r *Repo[T]) Add(_ context.Context, record *T) error {
	id := r.table.ID(record)
	generated := false
	if *id == "" {
		*id = uuid.New().String()
		generated = true
	}
	if err := r.insert(record); err != nil {
		if generated {
			*id = ""
		}
		return fmt.Errorf("insert %s: %w", r.table.Name, err)
	}
	return nil
}

func (r *Repo[T]) insert(record *T) error {
	if err := r.table.Validate(record); err != nil {
		return err
	}
	cp := *record
	id := *r.table.ID(&cp)

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, exists := r.rows.rows[id]; exists {
		return fmt.Errorf("%w: id %s", domain.ErrDuplicate, id)
	}
	if err := r.store.checkParents(r.table.Name, &cp); err != nil {
		return err
	}
	r.rows.rows[id] = &cp
	r.rows.order = append(r.rows.order, id)
	return nil
}

// ListAll devuelve todos los registros, los más recientes primero.
func (r *Repo[T]) ListAll(_ context.Context) ([]*T, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	list := make([]*T, 0, len(r.rows.order))
	for i := len(r.rows.order) - 1; i >= 0; i-- {
		list = append(list, r.copyOf(r.rows.order[i]))
	}
	return list, nil
}

// FindFirst devuelve el primer registro que cumple el criterio o (nil, nil).
func (r *Repo[T]) FindFirst(_ context.Context, c repository.Criteria) (*T, error) {
	list, err := r.find(c, 1)
	if err != nil || len(list) == 0 {
		return nil, err
	}
	return list[0], nil
}

// FindAll devuelve todos los registros que cumplen el criterio.
func (r *Repo[T]) FindAll(_ context.Context, c repository.Criteria) ([]*T, error) {
	return r.find(c, 0)
}

func (r *Repo[T]) find(c repository.Criteria, limit int) ([]*T, error) {
	if !r.table.HasColumn(c.Column) {
		return nil, fmt.Errorf("%w: columna %q no existe en %s", domain.ErrInvalidInput, c.Column, r.table.Name)
	}
	want := fmt.Sprint(c.Value)

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	list := make([]*T, 0)
	for i := len(r.rows.order) - 1; i >= 0; i-- {
		id := r.rows.order[i]
		v, _ := r.table.Value(r.rows.rows[id].(*T), c.Column)
		if fmt.Sprint(v) != want {
			continue
		}
		list = append(list, r.copyOf(id))
		if limit > 0 && len(list) == limit {
			break
		}
	}
	return list, nil
}

// Update reemplaza el registro almacenado con el mismo ID.
func (r *Repo[T]) Update(_ context.Context, record *T) error {
	if err := r.table.Validate(record); err != nil {
		return err
	}
	cp := *record
	id := *r.table.ID(&cp)

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, exists := r.rows.rows[id]; !exists {
		return fmt.Errorf("update %s %s: %w", r.table.Name, id, domain.ErrNotFound)
	}
	if err := r.store.checkParents(r.table.Name, &cp); err != nil {
		return fmt.Errorf("update %s: %w", r.table.Name, err)
	}
	r.rows.rows[id] = &cp
	return nil
}

// Delete elimina por ID salvo que otra tabla lo referencie con RESTRICT.
func (r *Repo[T]) Delete(_ context.Context, record *T) error {
	id := *r.table.ID(record)

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, exists := r.rows.rows[id]; !exists {
		return fmt.Errorf("delete %s %s: %w", r.table.Name, id, domain.ErrNotFound)
	}
	if err := r.store.checkChildren(r.table.Name, id); err != nil {
		return fmt.Errorf("delete %s: %w", r.table.Name, err)
	}
	r.rows.remove(id)
	return nil
}

// copyOf debe llamarse con el lock tomado.
func (r *Repo[T]) copyOf(id string) *T {
	cp := *(r.rows.rows[id].(*T))
	return &cp
}
