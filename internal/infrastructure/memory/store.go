// Package memory implementa el puerto repository.Repository en memoria.
// Aplica las mismas claves foráneas (ON DELETE RESTRICT) que las migraciones SQL,
// leyendo schema.Relations al construir el Store. Se usa con DB_DRIVER=memory y en tests.
package memory

import (
	"fmt"
	"sync"

	"github.com/jhoicas/Licencias-api/internal/domain"
	"github.com/jhoicas/Licencias-api/internal/infrastructure/schema"
)

// Store agrupa las tablas en memoria y protege todo el estado con un único RWMutex,
// de modo que las verificaciones de claves foráneas ven un estado consistente.
type Store struct {
	mu        sync.RWMutex
	relations schema.Relations
	tables    map[string]*table
}

type table struct {
	rows   map[string]any
	order  []string
	column func(row any, name string) (any, bool)
}

// NewStore crea un almacén vacío con la configuración de relaciones dada.
func NewStore(relations schema.Relations) *Store {
	return &Store{
		relations: relations,
		tables:    make(map[string]*table),
	}
}

// register declara una tabla; llamadas repetidas devuelven la misma.
func (s *Store) register(name string, column func(row any, name string) (any, bool)) *table {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.tables[name]; ok {
		return t
	}
	t := &table{rows: make(map[string]any), column: column}
	s.tables[name] = t
	return t
}

// checkParents verifica que cada clave foránea de la fila apunte a un registro existente.
// Debe llamarse con el lock tomado.
func (s *Store) checkParents(name string, row any) error {
	t := s.tables[name]
	for _, rel := range s.relations.Parents(name) {
		v, ok := t.column(row, rel.Column)
		if !ok {
			continue
		}
		parentID := fmt.Sprint(v)
		parent := s.tables[rel.References]
		if parent == nil {
			return fmt.Errorf("%w: %s.%s=%s", domain.ErrParentNotFound, name, rel.Column, parentID)
		}
		if _, exists := parent.rows[parentID]; !exists {
			return fmt.Errorf("%w: %s.%s=%s", domain.ErrParentNotFound, name, rel.Column, parentID)
		}
	}
	return nil
}

// checkChildren impide borrar un registro referenciado por una relación RESTRICT.
// Debe llamarse con el lock tomado.
func (s *Store) checkChildren(name, id string) error {
	for _, rel := range s.relations.Children(name) {
		if rel.OnDelete != schema.Restrict {
			continue
		}
		child := s.tables[rel.Table]
		if child == nil {
			continue
		}
		for _, row := range child.rows {
			if v, ok := child.column(row, rel.Column); ok && fmt.Sprint(v) == id {
				return fmt.Errorf("%w: %s.%s referencia %s %s", domain.ErrReferenced, rel.Table, rel.Column, name, id)
			}
		}
	}
	return nil
}

func (t *table) remove(id string) {
	delete(t.rows, id)
	for i, v := range t.order {
		if v == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			return
		}
	}
}
