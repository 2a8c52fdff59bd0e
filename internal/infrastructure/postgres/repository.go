package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/Licencias-api/internal/domain"
	"github.com/jhoicas/Licencias-api/internal/domain/entity"
	"github.com/jhoicas/Licencias-api/internal/domain/repository"
	"github.com/jhoicas/Licencias-api/internal/infrastructure/schema"
)

// querier es lo mínimo que necesita Repo; lo cumplen *pgxpool.Pool, *pgx.Conn y pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Repo implementación genérica del puerto repository.Repository sobre PostgreSQL.
// Las filas se escanean por nombre de columna usando los tags `db` del registro.
type Repo[T any] struct {
	db    querier
	table schema.Table[T]

	selectSQL string
	insertSQL string
	updateSQL string
	deleteSQL string
}

// NewRepo construye el adaptador de persistencia para la tabla indicada.
func NewRepo[T any](db querier, table schema.Table[T]) *Repo[T] {
	name := pgx.Identifier{table.Name}.Sanitize()
	cols := make([]string, len(table.Columns))
	for i, c := range table.Columns {
		cols[i] = pgx.Identifier{c}.Sanitize()
	}
	placeholders := make([]string, len(cols))
	sets := make([]string, 0, len(cols)-1)
	for i := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		if i > 0 {
			sets = append(sets, fmt.Sprintf("%s = $%d", cols[i], i+1))
		}
	}
	return &Repo[T]{
		db:        db,
		table:     table,
		selectSQL: fmt.Sprintf("SELECT %s FROM %s", strings.Join(cols, ", "), name),
		insertSQL: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", name, strings.Join(cols, ", "), strings.Join(placeholders, ", ")),
		updateSQL: fmt.Sprintf("UPDATE %s SET %s WHERE %s = $1", name, strings.Join(sets, ", "), cols[0]),
		deleteSQL: fmt.Sprintf("DELETE FROM %s WHERE %s = $1", name, cols[0]),
	}
}

// Asegura que Repo implementa repository.Repository para cada registro.
var (
	_ repository.Repository[entity.Software]             = (*Repo[entity.Software])(nil)
	_ repository.Repository[entity.Module]               = (*Repo[entity.Module])(nil)
	_ repository.Repository[entity.OrganizationalEntity] = (*Repo[entity.OrganizationalEntity])(nil)
	_ repository.Repository[entity.Reseller]             = (*Repo[entity.Reseller])(nil)
)

// Add asigna un UUID si el registro no lo trae, valida y persiste.
func (r *Repo[T]) Add(ctx context.Context, record *T) error {
	id := r.table.ID(record)
	generated := false
	if *id == "" {
		*id = uuid.New().String()
		generated = true
	}
	if err := r.table.Validate(record); err != nil {
		if generated {
			*id = ""
		}
		return err
	}
	if _, err := r.db.Exec(ctx, r.insertSQL, r.table.Values(record)...); err != nil {
		if generated {
			*id = ""
		}
		return fmt.Errorf("insert %s: %w", r.table.Name, writeError(err))
	}
	return nil
}

// ListAll devuelve todos los registros, los más recientes primero.
func (r *Repo[T]) ListAll(ctx context.Context) ([]*T, error) {
	rows, err := r.db.Query(ctx, r.selectSQL+" ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.table.Name, err)
	}
	list, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", r.table.Name, err)
	}
	return list, nil
}

// FindFirst devuelve el primer registro que cumple el criterio o (nil, nil).
func (r *Repo[T]) FindFirst(ctx context.Context, c repository.Criteria) (*T, error) {
	query, err := r.whereSQL(c)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query+" LIMIT 1", c.Value)
	if err != nil {
		if isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", r.table.Name, err)
	}
	record, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		if isNoRows(err) || isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", r.table.Name, err)
	}
	return record, nil
}

// FindAll devuelve todos los registros que cumplen el criterio.
func (r *Repo[T]) FindAll(ctx context.Context, c repository.Criteria) ([]*T, error) {
	query, err := r.whereSQL(c)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query+" ORDER BY created_at DESC", c.Value)
	if err != nil {
		if isInvalidText(err) {
			return []*T{}, nil
		}
		return nil, fmt.Errorf("list %s: %w", r.table.Name, err)
	}
	list, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		if isInvalidText(err) {
			return []*T{}, nil
		}
		return nil, fmt.Errorf("scan %s: %w", r.table.Name, err)
	}
	return list, nil
}

// Update sobrescribe todas las columnas del registro identificado por su ID.
func (r *Repo[T]) Update(ctx context.Context, record *T) error {
	if err := r.table.Validate(record); err != nil {
		return err
	}
	cmd, err := r.db.Exec(ctx, r.updateSQL, r.table.Values(record)...)
	if err != nil {
		return fmt.Errorf("update %s: %w", r.table.Name, writeError(err))
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update %s %s: %w", r.table.Name, *r.table.ID(record), domain.ErrNotFound)
	}
	return nil
}

// Delete elimina el registro por ID. Una FK con ON DELETE RESTRICT hace fallar la operación.
func (r *Repo[T]) Delete(ctx context.Context, record *T) error {
	id := *r.table.ID(record)
	cmd, err := r.db.Exec(ctx, r.deleteSQL, id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", r.table.Name, deleteError(err))
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("delete %s %s: %w", r.table.Name, id, domain.ErrNotFound)
	}
	return nil
}

// whereSQL arma el SELECT filtrado; solo admite columnas declaradas en la tabla.
func (r *Repo[T]) whereSQL(c repository.Criteria) (string, error) {
	if !r.table.HasColumn(c.Column) {
		return "", fmt.Errorf("%w: columna %q no existe en %s", domain.ErrInvalidInput, c.Column, r.table.Name)
	}
	return fmt.Sprintf("%s WHERE %s = $1", r.selectSQL, pgx.Identifier{c.Column}.Sanitize()), nil
}
