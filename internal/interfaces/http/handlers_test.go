package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Licencias-api/internal/application/dto"
	"github.com/jhoicas/Licencias-api/internal/bootstrap"
	apphttp "github.com/jhoicas/Licencias-api/internal/interfaces/http"
	"github.com/jhoicas/Licencias-api/pkg/logger"
)

// buildAPI arma la API completa sobre la persistencia en memoria.
func buildAPI(t *testing.T) *fiber.App {
	t.Helper()
	uc := bootstrap.NewUseCases(bootstrap.MemoryRepositories())
	app := apphttp.NewApp("licencias-test", logger.Nop())
	apphttp.Router(app, apphttp.RouterDeps{
		SoftwareUC: uc.Software,
		ModuleUC:   uc.Module,
		EntityUC:   uc.Entity,
		ResellerUC: uc.Reseller,
		JWTSecret:  testJWTSecret,
	})
	return app
}

// call lanza la petición autenticada y devuelve status y cuerpo.
func call(t *testing.T, app *fiber.App, method, path string, payload any) (int, []byte) {
	t.Helper()
	var body io.Reader
	if payload != nil {
		switch p := payload.(type) {
		case string:
			body = bytes.NewBufferString(p)
		default:
			raw, err := json.Marshal(p)
			require.NoError(t, err)
			body = bytes.NewReader(raw)
		}
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearer(t, "admin"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

func errorCode(t *testing.T, raw []byte) string {
	t.Helper()
	return decode[dto.ErrorResponse](t, raw).Code
}

func createSoftware(t *testing.T, app *fiber.App, name string) dto.SoftwareResponse {
	t.Helper()
	status, raw := call(t, app, http.MethodPost, "/api/software", map[string]any{"name": name})
	require.Equal(t, http.StatusCreated, status, string(raw))
	return decode[dto.SoftwareResponse](t, raw)
}

// ──────────────────────────────────────────────────────────────────────────────
// Software
// ──────────────────────────────────────────────────────────────────────────────

func TestSoftwareHandler_SinToken_Retorna401(t *testing.T) {
	app := buildAPI(t)
	req := httptest.NewRequest(http.MethodGet, "/api/software", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSoftwareHandler_CRUD(t *testing.T) {
	app := buildAPI(t)
	sw := createSoftware(t, app, "ERP")
	assert.True(t, sw.Status)

	status, raw := call(t, app, http.MethodGet, "/api/software/"+sw.ID, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ERP", decode[dto.SoftwareResponse](t, raw).Name)

	status, raw = call(t, app, http.MethodPut, "/api/software/"+sw.ID, map[string]any{
		"name": "ERP Cloud", "description": "SaaS", "status": false,
	})
	require.Equal(t, http.StatusOK, status, string(raw))
	updated := decode[dto.SoftwareResponse](t, raw)
	assert.Equal(t, "ERP Cloud", updated.Name)
	assert.False(t, updated.Status)

	status, raw = call(t, app, http.MethodGet, "/api/software", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, decode[dto.ListResponse[dto.SoftwareResponse]](t, raw).Total)

	status, _ = call(t, app, http.MethodDelete, "/api/software/"+sw.ID, nil)
	assert.Equal(t, http.StatusNoContent, status)

	status, raw = call(t, app, http.MethodGet, "/api/software/"+sw.ID, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", errorCode(t, raw))
}

func TestSoftwareHandler_Validaciones(t *testing.T) {
	app := buildAPI(t)

	status, raw := call(t, app, http.MethodPost, "/api/software", map[string]any{"description": "sin nombre"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", errorCode(t, raw))

	status, raw = call(t, app, http.MethodPost, "/api/software", "{no es json")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_BODY", errorCode(t, raw))

	status, raw = call(t, app, http.MethodGet, "/api/software/no-es-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_ID", errorCode(t, raw))

	sw := createSoftware(t, app, "ERP")
	status, raw = call(t, app, http.MethodPut, "/api/software/"+sw.ID+"/status", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, status, "status es obligatorio")
	assert.Equal(t, "VALIDATION", errorCode(t, raw))
}

func TestSoftwareHandler_UpdateStatusSoloCambiaStatus(t *testing.T) {
	app := buildAPI(t)
	sw := createSoftware(t, app, "ERP")

	status, raw := call(t, app, http.MethodPut, "/api/software/"+sw.ID+"/status", map[string]any{"status": false})
	require.Equal(t, http.StatusOK, status, string(raw))
	out := decode[dto.SoftwareResponse](t, raw)
	assert.False(t, out.Status)
	assert.Equal(t, sw.Name, out.Name)
	assert.Equal(t, sw.Description, out.Description)

	status, raw = call(t, app, http.MethodPut, "/api/software/"+uuid.NewString()+"/name", map[string]any{"name": "X"})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", errorCode(t, raw))
}

func TestSoftwareHandler_DeleteInexistente_Retorna404(t *testing.T) {
	app := buildAPI(t)
	status, raw := call(t, app, http.MethodDelete, "/api/software/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", errorCode(t, raw))
}

// ──────────────────────────────────────────────────────────────────────────────
// Module
// ──────────────────────────────────────────────────────────────────────────────

func TestModuleHandler_CreateConSoftwareInexistente_Retorna400(t *testing.T) {
	app := buildAPI(t)
	status, raw := call(t, app, http.MethodPost, "/api/modules", map[string]any{
		"software_id": uuid.NewString(), "name": "Facturación",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "PARENT_NOT_FOUND", errorCode(t, raw))

	status, raw = call(t, app, http.MethodGet, "/api/modules", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Zero(t, decode[dto.ListResponse[dto.ModuleResponse]](t, raw).Total)
}

func TestModuleHandler_SoftwareIDMalFormado_Retorna400(t *testing.T) {
	app := buildAPI(t)
	status, raw := call(t, app, http.MethodPost, "/api/modules", map[string]any{"software_id": "123", "name": "X"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", errorCode(t, raw))
}

// Escenario completo: ERP -> Billing -> listar por software -> borrar ERP falla.
func TestModuleHandler_EscenarioBorradoRestringido(t *testing.T) {
	app := buildAPI(t)
	erp := createSoftware(t, app, "ERP")

	status, raw := call(t, app, http.MethodPost, "/api/modules", map[string]any{"software_id": erp.ID, "name": "Billing"})
	require.Equal(t, http.StatusCreated, status, string(raw))
	billing := decode[dto.ModuleResponse](t, raw)
	assert.Equal(t, erp.ID, billing.SoftwareID)

	status, raw = call(t, app, http.MethodGet, "/api/modules/by-software/"+erp.ID, nil)
	require.Equal(t, http.StatusOK, status)
	list := decode[dto.ListResponse[dto.ModuleResponse]](t, raw)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Billing", list.Items[0].Name)

	status, raw = call(t, app, http.MethodDelete, "/api/software/"+erp.ID, nil)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL", errorCode(t, raw))

	status, _ = call(t, app, http.MethodGet, "/api/software/"+erp.ID, nil)
	assert.Equal(t, http.StatusOK, status, "el software sigue existiendo")
	status, _ = call(t, app, http.MethodGet, "/api/modules/"+billing.ID, nil)
	assert.Equal(t, http.StatusOK, status, "el módulo sigue existiendo")
}

func TestModuleHandler_ListBySoftware(t *testing.T) {
	app := buildAPI(t)

	status, raw := call(t, app, http.MethodGet, "/api/modules/by-software/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, status, "software inexistente")
	assert.Equal(t, "NOT_FOUND", errorCode(t, raw))

	sw := createSoftware(t, app, "CRM")
	status, raw = call(t, app, http.MethodGet, "/api/modules/by-software/"+sw.ID, nil)
	require.Equal(t, http.StatusOK, status)
	list := decode[dto.ListResponse[dto.ModuleResponse]](t, raw)
	assert.NotNil(t, list.Items)
	assert.Empty(t, list.Items)
}

// ──────────────────────────────────────────────────────────────────────────────
// Entities y Resellers
// ──────────────────────────────────────────────────────────────────────────────

func TestEntityHandler_CamposYTipo(t *testing.T) {
	app := buildAPI(t)

	status, raw := call(t, app, http.MethodPost, "/api/entities", map[string]any{"name": "Andina", "type": "proveedor"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", errorCode(t, raw))

	status, raw = call(t, app, http.MethodPost, "/api/entities", map[string]any{"name": "Andina", "type": "distributor"})
	require.Equal(t, http.StatusCreated, status, string(raw))
	e := decode[dto.EntityResponse](t, raw)

	for field, value := range map[string]string{
		"address": "Cra 7 # 45-10",
		"phone":   "+57 601 555 0101",
		"type":    "partner",
		"name":    "Andina SAS",
	} {
		status, raw = call(t, app, http.MethodPut, "/api/entities/"+e.ID+"/"+field, map[string]any{field: value})
		require.Equal(t, http.StatusOK, status, field+": "+string(raw))
	}

	status, raw = call(t, app, http.MethodGet, "/api/entities/"+e.ID, nil)
	require.Equal(t, http.StatusOK, status)
	got := decode[dto.EntityResponse](t, raw)
	assert.Equal(t, "Cra 7 # 45-10", got.Address)
	assert.Equal(t, "+57 601 555 0101", got.Phone)
	assert.Equal(t, "partner", got.Type)
	assert.Equal(t, "Andina SAS", got.Name)
}

func TestResellerHandler_Flujo(t *testing.T) {
	app := buildAPI(t)

	status, raw := call(t, app, http.MethodPost, "/api/resellers", map[string]any{"entity_id": uuid.NewString()})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "PARENT_NOT_FOUND", errorCode(t, raw))

	status, raw = call(t, app, http.MethodPost, "/api/entities", map[string]any{"name": "Caribe", "type": "reseller"})
	require.Equal(t, http.StatusCreated, status)
	e := decode[dto.EntityResponse](t, raw)

	status, raw = call(t, app, http.MethodPost, "/api/resellers", map[string]any{"entity_id": e.ID})
	require.Equal(t, http.StatusCreated, status, string(raw))
	r := decode[dto.ResellerResponse](t, raw)
	assert.Equal(t, e.ID, r.EntityID)

	status, raw = call(t, app, http.MethodGet, "/api/resellers/by-entity/"+e.ID, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, decode[dto.ListResponse[dto.ResellerResponse]](t, raw).Total)

	status, raw = call(t, app, http.MethodPut, "/api/resellers/"+r.ID+"/status", map[string]any{"status": false})
	require.Equal(t, http.StatusOK, status)
	assert.False(t, decode[dto.ResellerResponse](t, raw).Status)

	status, _ = call(t, app, http.MethodDelete, "/api/entities/"+e.ID, nil)
	assert.Equal(t, http.StatusInternalServerError, status, "entidad referenciada por un revendedor")

	status, _ = call(t, app, http.MethodDelete, "/api/resellers/"+r.ID, nil)
	assert.Equal(t, http.StatusNoContent, status)
	status, _ = call(t, app, http.MethodDelete, "/api/entities/"+e.ID, nil)
	assert.Equal(t, http.StatusNoContent, status)
}

func TestRouter_RutaInexistente_Retorna404JSON(t *testing.T) {
	app := buildAPI(t)
	status, raw := call(t, app, http.MethodGet, "/api/no-existe", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", errorCode(t, raw))
}

// ──────────────────────────────────────────────────────────────────────────────
// Reemplazos completos y updates de campo
// ──────────────────────────────────────────────────────────────────────────────

func createEntity(t *testing.T, app *fiber.App, name string) dto.EntityResponse {
	t.Helper()
	status, raw := call(t, app, http.MethodPost, "/api/entities", map[string]any{
		"name": name, "address": "Calle 1", "phone": "555", "type": "client",
	})
	require.Equal(t, http.StatusCreated, status, string(raw))
	return decode[dto.EntityResponse](t, raw)
}

func TestModuleHandler_UpdateName(t *testing.T) {
	app := buildAPI(t)
	sw := createSoftware(t, app, "ERP")
	status, raw := call(t, app, http.MethodPost, "/api/modules", map[string]any{"software_id": sw.ID, "name": "Billing"})
	require.Equal(t, http.StatusCreated, status, string(raw))
	m := decode[dto.ModuleResponse](t, raw)

	status, raw = call(t, app, http.MethodPut, "/api/modules/"+m.ID+"/name", map[string]any{"name": "Facturación"})
	require.Equal(t, http.StatusOK, status, string(raw))
	assert.Equal(t, "Facturación", decode[dto.ModuleResponse](t, raw).Name)

	status, raw = call(t, app, http.MethodGet, "/api/modules/"+m.ID, nil)
	require.Equal(t, http.StatusOK, status)
	got := decode[dto.ModuleResponse](t, raw)
	assert.Equal(t, "Facturación", got.Name)
	assert.Equal(t, sw.ID, got.SoftwareID)
	assert.True(t, got.Status)
}

func TestEntityHandler_UpdateReemplazaTodosLosCampos(t *testing.T) {
	app := buildAPI(t)
	e := createEntity(t, app, "Andina")

	status, raw := call(t, app, http.MethodPut, "/api/entities/"+e.ID, map[string]any{
		"name": "Andina SAS", "address": "Cra 7 # 45-10", "phone": "+57 601 555 0101",
		"type": "partner", "status": false,
	})
	require.Equal(t, http.StatusOK, status, string(raw))

	status, raw = call(t, app, http.MethodGet, "/api/entities/"+e.ID, nil)
	require.Equal(t, http.StatusOK, status)
	got := decode[dto.EntityResponse](t, raw)
	assert.Equal(t, e.ID, got.ID)
	assert.Equal(t, "Andina SAS", got.Name)
	assert.Equal(t, "Cra 7 # 45-10", got.Address)
	assert.Equal(t, "+57 601 555 0101", got.Phone)
	assert.Equal(t, "partner", got.Type)
	assert.False(t, got.Status)
	assert.True(t, got.CreatedAt.Equal(e.CreatedAt), "created_at no cambia")
	assert.False(t, got.UpdatedAt.Before(e.UpdatedAt), "updated_at se vuelve a sellar")

	status, raw = call(t, app, http.MethodPut, "/api/entities/"+uuid.NewString(), map[string]any{
		"name": "X", "type": "client", "status": true,
	})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", errorCode(t, raw))
}

func TestEntityHandler_UpdateCampoVacioBorraDireccionYTelefono(t *testing.T) {
	app := buildAPI(t)
	e := createEntity(t, app, "Roble")

	status, raw := call(t, app, http.MethodPut, "/api/entities/"+e.ID+"/address", map[string]any{"address": ""})
	require.Equal(t, http.StatusOK, status, string(raw))
	status, raw = call(t, app, http.MethodPut, "/api/entities/"+e.ID+"/phone", map[string]any{"phone": ""})
	require.Equal(t, http.StatusOK, status, string(raw))

	status, raw = call(t, app, http.MethodGet, "/api/entities/"+e.ID, nil)
	require.Equal(t, http.StatusOK, status)
	got := decode[dto.EntityResponse](t, raw)
	assert.Empty(t, got.Address)
	assert.Empty(t, got.Phone)
	assert.Equal(t, "Roble", got.Name)
}

func TestResellerHandler_UpdateReasignaEntidad(t *testing.T) {
	app := buildAPI(t)
	original := createEntity(t, app, "Caribe")
	destino := createEntity(t, app, "Andina")

	status, raw := call(t, app, http.MethodPost, "/api/resellers", map[string]any{"entity_id": original.ID})
	require.Equal(t, http.StatusCreated, status, string(raw))
	r := decode[dto.ResellerResponse](t, raw)

	// Entidad inexistente: 400 y el revendedor conserva su entidad.
	status, raw = call(t, app, http.MethodPut, "/api/resellers/"+r.ID, map[string]any{
		"entity_id": uuid.NewString(), "status": true,
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "PARENT_NOT_FOUND", errorCode(t, raw))

	status, raw = call(t, app, http.MethodGet, "/api/resellers/"+r.ID, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, original.ID, decode[dto.ResellerResponse](t, raw).EntityID)

	// Reasignación válida.
	status, raw = call(t, app, http.MethodPut, "/api/resellers/"+r.ID, map[string]any{
		"entity_id": destino.ID, "status": false,
	})
	require.Equal(t, http.StatusOK, status, string(raw))
	out := decode[dto.ResellerResponse](t, raw)
	assert.Equal(t, destino.ID, out.EntityID)
	assert.False(t, out.Status)

	status, raw = call(t, app, http.MethodGet, "/api/resellers/by-entity/"+destino.ID, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, decode[dto.ListResponse[dto.ResellerResponse]](t, raw).Total)

	status, raw = call(t, app, http.MethodGet, "/api/resellers/by-entity/"+original.ID, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Zero(t, decode[dto.ListResponse[dto.ResellerResponse]](t, raw).Total)

	// La entidad original ya no está referenciada y puede borrarse.
	status, _ = call(t, app, http.MethodDelete, "/api/entities/"+original.ID, nil)
	assert.Equal(t, http.StatusNoContent, status)
}
