package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Licencias-api/internal/domain"
	"github.com/jhoicas/Licencias-api/internal/domain/repository"
	"github.com/jhoicas/Licencias-api/internal/infrastructure/schema"
)

func TestNewRepo_SentenciasGeneradas(t *testing.T) {
	r := NewRepo(nil, schema.Resellers)

	assert.Equal(t, `SELECT "id", "entity_id", "status", "created_at" FROM "resellers"`, r.selectSQL)
	assert.Equal(t, `INSERT INTO "resellers" ("id", "entity_id", "status", "created_at") VALUES ($1, $2, $3, $4)`, r.insertSQL)
	assert.Equal(t, `UPDATE "resellers" SET "entity_id" = $2, "status" = $3, "created_at" = $4 WHERE "id" = $1`, r.updateSQL)
	assert.Equal(t, `DELETE FROM "resellers" WHERE "id" = $1`, r.deleteSQL)
}

func TestWhereSQL_SoloColumnasDeclaradas(t *testing.T) {
	r := NewRepo(nil, schema.Modules)

	q, err := r.whereSQL(repository.ByColumn("software_id", "x"))
	require.NoError(t, err)
	assert.Contains(t, q, `WHERE "software_id" = $1`)

	_, err = r.whereSQL(repository.ByColumn("1=1; DROP TABLE modules", "x"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// No llega a la base: la validación corta antes.
	_, err = r.FindAll(context.Background(), repository.ByColumn("desconocida", 1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
