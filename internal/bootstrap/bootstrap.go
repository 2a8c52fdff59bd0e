// Package bootstrap arma los casos de uso sobre el driver de persistencia configurado.
// Lo comparten cmd/api y cmd/seed.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/jhoicas/Licencias-api/internal/application/usecase"
	"github.com/jhoicas/Licencias-api/internal/domain/entity"
	"github.com/jhoicas/Licencias-api/internal/domain/repository"
	"github.com/jhoicas/Licencias-api/internal/infrastructure/memory"
	"github.com/jhoicas/Licencias-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Licencias-api/internal/infrastructure/schema"
	"github.com/jhoicas/Licencias-api/pkg/config"
	"github.com/jhoicas/Licencias-api/pkg/logger"
)

// Repositories un repositorio por tabla.
type Repositories struct {
	Software  repository.Repository[entity.Software]
	Modules   repository.Repository[entity.Module]
	Entities  repository.Repository[entity.OrganizationalEntity]
	Resellers repository.Repository[entity.Reseller]
}

// UseCases casos de uso listos para inyectar en el router.
type UseCases struct {
	Software *usecase.SoftwareUseCase
	Module   *usecase.ModuleUseCase
	Entity   *usecase.EntityUseCase
	Reseller *usecase.ResellerUseCase
}

// NewUseCases construye los casos de uso sobre los repositorios dados.
func NewUseCases(r Repositories) *UseCases {
	return &UseCases{
		Software: usecase.NewSoftwareUseCase(r.Software),
		Module:   usecase.NewModuleUseCase(r.Modules, r.Software),
		Entity:   usecase.NewEntityUseCase(r.Entities),
		Reseller: usecase.NewResellerUseCase(r.Resellers, r.Entities),
	}
}

// MemoryRepositories crea un Store en memoria con las relaciones de schema.Relationships.
func MemoryRepositories() Repositories {
	store := memory.NewStore(schema.Relationships)
	return Repositories{
		Software:  memory.NewRepo(store, schema.Software),
		Modules:   memory.NewRepo(store, schema.Modules),
		Entities:  memory.NewRepo(store, schema.Entities),
		Resellers: memory.NewRepo(store, schema.Resellers),
	}
}

// Open abre la persistencia según cfg.Driver y devuelve los casos de uso.
// Con postgres aplica las migraciones si cfg.Migrate; la función devuelta cierra el pool.
func Open(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*UseCases, func(), error) {
	switch cfg.Driver {
	case config.DriverMemory:
		log.Warn().Msg("persistencia en memoria: los datos se pierden al reiniciar")
		return NewUseCases(MemoryRepositories()), func() {}, nil
	case config.DriverPostgres:
	default:
		return nil, nil, fmt.Errorf("bootstrap: driver desconocido %q", cfg.Driver)
	}

	if cfg.Migrate {
		if err := migrateUp(cfg.ConnectionString(), log); err != nil {
			return nil, nil, err
		}
	}

	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	repos := Repositories{
		Software:  postgres.NewRepo(pool, schema.Software),
		Modules:   postgres.NewRepo(pool, schema.Modules),
		Entities:  postgres.NewRepo(pool, schema.Entities),
		Resellers: postgres.NewRepo(pool, schema.Resellers),
	}
	return NewUseCases(repos), pool.Close, nil
}

func migrateUp(dsn string, log *logger.Logger) (err error) {
	m, err := postgres.NewMigrator(dsn, log)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := m.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return m.Up()
}
