// seed carga un catálogo de demostración a través de los casos de uso e imprime un
// token JWT de desarrollo para probar la API.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/Licencias-api/internal/application/dto"
	"github.com/jhoicas/Licencias-api/internal/bootstrap"
	"github.com/jhoicas/Licencias-api/pkg/config"
	"github.com/jhoicas/Licencias-api/pkg/jwt"
	"github.com/jhoicas/Licencias-api/pkg/logger"
)

const seedUserID = "00000000-0000-0000-0000-000000000001"

type demoSoftware struct {
	name, description string
	modules           []string
}

var catalog = []demoSoftware{
	{name: "ERP", description: "Planificación de recursos empresariales", modules: []string{"Facturación", "Inventario", "Contabilidad"}},
	{name: "CRM", description: "Gestión de clientes", modules: []string{"Oportunidades", "Campañas"}},
}

var entities = []dto.CreateEntityRequest{
	{Name: "Distribuidora Andina", Address: "Cra 7 # 45-10, Bogotá", Phone: "+57 601 555 0101", Type: "distributor"},
	{Name: "Soluciones del Caribe", Address: "Calle 72 # 54-20, Barranquilla", Phone: "+57 605 555 0202", Type: "reseller"},
	{Name: "Comercial El Roble", Address: "Av. 6N # 23-15, Cali", Phone: "+57 602 555 0303", Type: "client"},
}

// checkDriver rechaza drivers sin persistencia: en memoria el catálogo se perdería al salir.
func checkDriver(driver string) error {
	if driver != config.DriverPostgres {
		return fmt.Errorf("seed: driver %q no persiste datos", driver)
	}
	return nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	if err := checkDriver(cfg.DB.Driver); err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("seed requiere DB_DRIVER=postgres")
	}

	ctx := context.Background()
	uc, closeDB, err := bootstrap.Open(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("persistencia")
	}
	defer closeDB()

	if err := seed(ctx, uc, log); err != nil {
		log.Error().Err(err).Msg("seed")
		closeDB()
		os.Exit(1)
	}

	token, err := jwt.Generate(cfg.JWT.Secret, seedUserID, "admin", cfg.JWT.Issuer, cfg.JWT.Expiration)
	if err != nil {
		log.Error().Err(err).Msg("generar token")
		return
	}
	fmt.Printf("Authorization: Bearer %s\n", token)
}

func seed(ctx context.Context, uc *bootstrap.UseCases, log *logger.Logger) error {
	for _, s := range catalog {
		sw, err := uc.Software.Create(ctx, dto.CreateSoftwareRequest{Name: s.name, Description: s.description})
		if err != nil {
			return fmt.Errorf("software %s: %w", s.name, err)
		}
		for _, name := range s.modules {
			if _, err := uc.Module.Create(ctx, dto.CreateModuleRequest{SoftwareID: sw.ID, Name: name}); err != nil {
				return fmt.Errorf("módulo %s/%s: %w", s.name, name, err)
			}
		}
		log.Info().Str("software", sw.Name).Int("modulos", len(s.modules)).Msg("software creado")
	}

	for _, in := range entities {
		e, err := uc.Entity.Create(ctx, in)
		if err != nil {
			return fmt.Errorf("entidad %s: %w", in.Name, err)
		}
		if e.Type == "distributor" || e.Type == "reseller" {
			if _, err := uc.Reseller.Create(ctx, dto.CreateResellerRequest{EntityID: e.ID}); err != nil {
				return fmt.Errorf("revendedor %s: %w", e.Name, err)
			}
		}
		log.Info().Str("entidad", e.Name).Str("tipo", e.Type).Msg("entidad creada")
	}
	return nil
}
