package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Licencias-api/internal/domain"
	"github.com/jhoicas/Licencias-api/internal/domain/entity"
	"github.com/jhoicas/Licencias-api/internal/domain/repository"
	"github.com/jhoicas/Licencias-api/internal/infrastructure/memory"
	"github.com/jhoicas/Licencias-api/internal/infrastructure/schema"
)

func newRepos() (*memory.Repo[entity.Software], *memory.Repo[entity.Module]) {
	store := memory.NewStore(schema.Relationships)
	return memory.NewRepo(store, schema.Software), memory.NewRepo(store, schema.Modules)
}

func TestRepo_AddAsignaUUID(t *testing.T) {
	sw, _ := newRepos()
	rec := &entity.Software{Name: "ERP", CreatedAt: time.Now()}
	require.NoError(t, sw.Add(context.Background(), rec))

	_, err := uuid.Parse(rec.ID)
	assert.NoError(t, err)
}

func TestRepo_AddSinObligatorios_ErrInvalidInput(t *testing.T) {
	sw, _ := newRepos()
	rec := &entity.Software{}
	err := sw.Add(context.Background(), rec)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, rec.ID, "el ID generado se descarta si falla")
}

func TestRepo_AddHijoSinPadre_ErrParentNotFound(t *testing.T) {
	_, mods := newRepos()
	err := mods.Add(context.Background(), &entity.Module{SoftwareID: uuid.NewString(), Name: "x"})
	assert.ErrorIs(t, err, domain.ErrParentNotFound)

	list, err := mods.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRepo_DevuelveCopias(t *testing.T) {
	sw, _ := newRepos()
	ctx := context.Background()
	rec := &entity.Software{Name: "ERP"}
	require.NoError(t, sw.Add(ctx, rec))

	rec.Name = "mutado fuera del repo"
	got, err := sw.FindFirst(ctx, repository.ByID(rec.ID))
	require.NoError(t, err)
	assert.Equal(t, "ERP", got.Name)

	got.Name = "mutado en la copia"
	again, _ := sw.FindFirst(ctx, repository.ByID(rec.ID))
	assert.Equal(t, "ERP", again.Name)
}

func TestRepo_FindFirstAusente_DevuelveNil(t *testing.T) {
	sw, _ := newRepos()
	got, err := sw.FindFirst(context.Background(), repository.ByID(uuid.NewString()))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRepo_FindColumnaDesconocida(t *testing.T) {
	sw, _ := newRepos()
	_, err := sw.FindAll(context.Background(), repository.ByColumn("password", "x"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRepo_FindAllPorPadre(t *testing.T) {
	sw, mods := newRepos()
	ctx := context.Background()
	erp := &entity.Software{Name: "ERP"}
	crm := &entity.Software{Name: "CRM"}
	require.NoError(t, sw.Add(ctx, erp))
	require.NoError(t, sw.Add(ctx, crm))
	for _, name := range []string{"Facturación", "Inventario"} {
		require.NoError(t, mods.Add(ctx, &entity.Module{SoftwareID: erp.ID, Name: name}))
	}
	require.NoError(t, mods.Add(ctx, &entity.Module{SoftwareID: crm.ID, Name: "Campañas"}))

	list, err := mods.FindAll(ctx, repository.ByColumn("software_id", erp.ID))
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, "Inventario", list[0].Name, "más recientes primero")

	first, err := sw.FindFirst(ctx, repository.ByName("CRM"))
	require.NoError(t, err)
	assert.Equal(t, crm.ID, first.ID)
}

func TestRepo_UpdateInexistente_ErrNotFound(t *testing.T) {
	sw, _ := newRepos()
	err := sw.Update(context.Background(), &entity.Software{ID: uuid.NewString(), Name: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepo_DeleteRestrict(t *testing.T) {
	sw, mods := newRepos()
	ctx := context.Background()
	erp := &entity.Software{Name: "ERP"}
	require.NoError(t, sw.Add(ctx, erp))
	mod := &entity.Module{SoftwareID: erp.ID, Name: "Billing"}
	require.NoError(t, mods.Add(ctx, mod))

	assert.ErrorIs(t, sw.Delete(ctx, erp), domain.ErrReferenced)

	require.NoError(t, mods.Delete(ctx, mod))
	require.NoError(t, sw.Delete(ctx, erp))
	assert.ErrorIs(t, sw.Delete(ctx, erp), domain.ErrNotFound)
}

func TestRepo_AccesoConcurrente(t *testing.T) {
	sw, _ := newRepos()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = sw.Add(ctx, &entity.Software{Name: "concurrente"})
			_, _ = sw.ListAll(ctx)
		}()
	}
	wg.Wait()

	list, err := sw.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 50)
}
