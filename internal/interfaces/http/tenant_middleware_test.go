package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Talento-api/internal/domain"
	"github.com/jhoicas/Talento-api/internal/domain/repository"
	apphttp "github.com/jhoicas/Talento-api/internal/interfaces/http"
	"github.com/jhoicas/Talento-api/pkg/metrics"
)

// Prometheus registra en el registry global: una sola instancia por paquete de test.
var testMetrics = metrics.New("test_http")

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// stubHandle satisface repository.TenantHandle para el middleware; las rutas
// de estos tests solo consultan TenantID y Schema.
type stubHandle struct{ tenantID, schema string }

func (h stubHandle) TenantID() string { return h.tenantID }
func (h stubHandle) Schema() string   { return h.schema }

func (h stubHandle) Departments() repository.DepartmentRepository               { return nil }
func (h stubHandle) Positions() repository.PositionRepository                   { return nil }
func (h stubHandle) Employees() repository.EmployeeRepository                   { return nil }
func (h stubHandle) SalaryHistory() repository.SalaryRepository                 { return nil }
func (h stubHandle) Payslips() repository.PayslipRepository                     { return nil }
func (h stubHandle) Overtime() repository.OvertimeRepository                    { return nil }
func (h stubHandle) LeaveTypes() repository.LeaveTypeRepository                 { return nil }
func (h stubHandle) LeaveAllocations() repository.LeaveAllocationRepository     { return nil }
func (h stubHandle) LeaveRequests() repository.LeaveRequestRepository           { return nil }
func (h stubHandle) Attendance() repository.AttendanceRepository                { return nil }
func (h stubHandle) PerformanceReviews() repository.PerformanceReviewRepository { return nil }
func (h stubHandle) Documents() repository.DocumentRepository                   { return nil }
func (h stubHandle) TrainingSessions() repository.TrainingSessionRepository     { return nil }
func (h stubHandle) EmployeeTrainings() repository.EmployeeTrainingRepository   { return nil }
func (h stubHandle) Notifications() repository.NotificationRepository           { return nil }
func (h stubHandle) Terminations() repository.TerminationRepository             { return nil }

// stubResolver resuelve desde un mapa fijo y cuenta llamadas.
type stubResolver struct {
	known map[string]string // tenantID -> schema
	calls int
}

func (r *stubResolver) Resolve(_ context.Context, tenantID string) (repository.TenantHandle, error) {
	r.calls++
	if tenantID == "mal formado!" {
		return nil, domain.ErrValidation
	}
	schema, ok := r.known[tenantID]
	if !ok {
		return nil, domain.ErrTenantNotFound
	}
	return stubHandle{tenantID: tenantID, schema: schema}, nil
}

func (r *stubResolver) Invalidate(tenantID string) {
	delete(r.known, tenantID)
}

func buildTenantApp(resolver *stubResolver) *fiber.App {
	app := fiber.New()
	app.Get("/hr/ping",
		apphttp.TenantMiddleware(resolver, testMetrics),
		func(c *fiber.Ctx) error {
			h := apphttp.GetTenantHandle(c)
			return c.JSON(fiber.Map{"tenant": h.TenantID(), "schema": h.Schema()})
		},
	)
	return app
}

func doTenantRequest(t *testing.T, app *fiber.App, tenantHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/hr/ping", nil)
	if tenantHeader != "" {
		req.Header.Set("X-Tenant-ID", tenantHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Sin header de tenant: 400 antes de tocar el storage.
func TestTenantMiddleware_SinHeader_Retorna400(t *testing.T) {
	resolver := &stubResolver{known: map[string]string{}}
	app := buildTenantApp(resolver)

	resp := doTenantRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, resolver.calls, "sin header no debe consultarse el resolver")
	assert.Contains(t, readBody(t, resp), "TENANT_REQUIRED")
}

// Tenant desconocido: 404 sin filtrar el motivo.
func TestTenantMiddleware_TenantDesconocido_Retorna404(t *testing.T) {
	resolver := &stubResolver{known: map[string]string{}}
	app := buildTenantApp(resolver)

	resp := doTenantRequest(t, app, "fantasma")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "TENANT_NOT_FOUND")
}

// Identificador malformado: 400.
func TestTenantMiddleware_IdentificadorInvalido_Retorna400(t *testing.T) {
	resolver := &stubResolver{known: map[string]string{}}
	app := buildTenantApp(resolver)

	resp := doTenantRequest(t, app, "mal formado!")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "TENANT_INVALID")
}

// Tenant válido: el handler recibe el handle ligado a su schema.
func TestTenantMiddleware_TenantValido_InyectaHandle(t *testing.T) {
	resolver := &stubResolver{known: map[string]string{"acme": "talento_acme"}}
	app := buildTenantApp(resolver)

	resp := doTenantRequest(t, app, "acme")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, `"tenant":"acme"`)
	assert.Contains(t, body, `"schema":"talento_acme"`)
}

// Dos tenants en la misma app: cada petición ve solo su schema.
func TestTenantMiddleware_PeticionesNoSeCruzan(t *testing.T) {
	resolver := &stubResolver{known: map[string]string{
		"acme": "talento_acme",
		"beta": "talento_beta",
	}}
	app := buildTenantApp(resolver)

	respA := doTenantRequest(t, app, "acme")
	defer respA.Body.Close()
	respB := doTenantRequest(t, app, "beta")
	defer respB.Body.Close()

	assert.Contains(t, readBody(t, respA), "talento_acme")
	assert.Contains(t, readBody(t, respB), "talento_beta")
}
