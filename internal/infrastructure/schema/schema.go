// Package schema declara la metadata de persistencia de cada registro: nombre de tabla,
// columnas, campos obligatorios y relaciones de clave foránea. La consumen los adaptadores
// postgres y memory al arrancar el proceso.
package schema

import (
	"fmt"

	"github.com/jhoicas/Licencias-api/internal/domain"
)

// OnDelete política referencial al borrar el registro padre.
type OnDelete string

// Restrict impide borrar el padre mientras exista un hijo que lo referencie.
const Restrict OnDelete = "RESTRICT"

// Relation describe una clave foránea Table.Column -> References.id.
type Relation struct {
	Table      string
	Column     string
	References string
	OnDelete   OnDelete
}

// Table mapea un registro T a su tabla. Columns está en el mismo orden que Values
// y la primera columna es siempre la identidad ("id").
type Table[T any] struct {
	Name     string
	Columns  []string
	Required []string
	Values   func(*T) []any
	ID       func(*T) *string
}

// HasColumn informa si la columna está declarada en la tabla.
func (t Table[T]) HasColumn(column string) bool {
	for _, c := range t.Columns {
		if c == column {
			return true
		}
	}
	return false
}

// Value devuelve el valor de una columna del registro.
func (t Table[T]) Value(record *T, column string) (any, bool) {
	values := t.Values(record)
	for i, c := range t.Columns {
		if c == column {
			return values[i], true
		}
	}
	return nil, false
}

// Validate verifica que las columnas obligatorias no estén vacías.
func (t Table[T]) Validate(record *T) error {
	for _, col := range t.Required {
		v, ok := t.Value(record, col)
		if !ok {
			return fmt.Errorf("%s: columna obligatoria %q no declarada", t.Name, col)
		}
		if isEmpty(v) {
			return fmt.Errorf("%w: %s es requerido", domain.ErrInvalidInput, col)
		}
	}
	return nil
}

func isEmpty(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case fmt.Stringer:
		return x.String() == ""
	}
	return fmt.Sprint(v) == ""
}

// Relations es la configuración de relaciones entre tablas.
type Relations []Relation

// Parents devuelve las claves foráneas declaradas en la tabla (hijo -> padre).
func (rs Relations) Parents(table string) Relations {
	var out Relations
	for _, r := range rs {
		if r.Table == table {
			out = append(out, r)
		}
	}
	return out
}

// Children devuelve las relaciones que apuntan a la tabla (padre <- hijo).
func (rs Relations) Children(table string) Relations {
	var out Relations
	for _, r := range rs {
		if r.References == table {
			out = append(out, r)
		}
	}
	return out
}
