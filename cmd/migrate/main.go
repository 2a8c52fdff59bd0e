// migrate aplica o revierte las migraciones embebidas contra la base configurada.
//
// Uso: go run ./cmd/migrate [up|down|version]
// Sin argumento ejecuta up. down revierte una sola migración.
package main

import (
	"fmt"
	"os"

	"github.com/jhoicas/Licencias-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Licencias-api/pkg/config"
	"github.com/jhoicas/Licencias-api/pkg/logger"
)

func main() {
	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	if cfg.DB.Driver != config.DriverPostgres {
		log.Fatal().Str("driver", cfg.DB.Driver).Msg("migrate requiere DB_DRIVER=postgres")
	}

	m, err := postgres.NewMigrator(cfg.DB.ConnectionString(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar migraciones")
	}

	if err := run(m, cmd); err != nil {
		_ = m.Close()
		log.Fatal().Err(err).Str("cmd", cmd).Msg("migración")
	}
	if err := m.Close(); err != nil {
		log.Error().Err(err).Msg("cerrar migrador")
	}
}

func run(m *postgres.Migrator, cmd string) error {
	switch cmd {
	case "up":
		return m.Up()
	case "down":
		return m.Down()
	case "version":
		v, dirty, err := m.Version()
		if err != nil {
			return err
		}
		fmt.Printf("versión: %d (dirty=%t)\n", v, dirty)
		return nil
	default:
		return fmt.Errorf("comando desconocido %q (up|down|version)", cmd)
	}
}
