package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Talento-api/internal/application/onboarding"
	"github.com/jhoicas/Talento-api/internal/domain"
	"github.com/jhoicas/Talento-api/internal/domain/entity"
	"github.com/jhoicas/Talento-api/internal/domain/repository"
	"github.com/jhoicas/Talento-api/internal/infrastructure/postgres"
	apphttp "github.com/jhoicas/Talento-api/internal/interfaces/http"
	"github.com/jhoicas/Talento-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes del alta: solo interesa el mapeo de errores del handler, así que la
// transacción del catálogo devuelve el error configurado sin ejecutar nada.
// ──────────────────────────────────────────────────────────────────────────────

type failingTxRunner struct{ err error }

func (r failingTxRunner) Run(_ context.Context, _ func(
	tenants repository.TenantRepository,
	users repository.UserRepository,
	memberships repository.MembershipRepository,
	plans repository.PlanRepository,
	subs repository.SubscriptionRepository,
) error) error {
	return r.err
}

type noopTenants struct{}

func (noopTenants) Create(_ context.Context, _ *entity.Tenant) error { return nil }
func (noopTenants) GetByID(_ context.Context, _ string) (*entity.Tenant, error) {
	return nil, nil
}
func (noopTenants) GetBySchema(_ context.Context, _ string) (*entity.Tenant, error) {
	return nil, nil
}
func (noopTenants) UpdateStatus(_ context.Context, _, _ string) error            { return nil }
func (noopTenants) List(_ context.Context, _, _ int) ([]*entity.Tenant, error)   { return nil, nil }
func (noopTenants) SoftDelete(_ context.Context, _ string) error                 { return nil }

type noopProvisioner struct{}

func (noopProvisioner) SchemaName(tenantID string) (string, error) {
	return postgres.SchemaName(tenantID)
}
func (noopProvisioner) Provision(_ context.Context, _ string) error { return nil }

type noopSeeder struct{}

func (noopSeeder) SeedBaseline(_ context.Context, _ repository.TenantHandle) error { return nil }

type plainHasher struct{}

func (plainHasher) Hash(plain string) (string, error) { return "hash:" + plain, nil }
func (plainHasher) Verify(_, _ string) error          { return nil }

func buildTenantHandlerApp(txErr error) *fiber.App {
	uc := onboarding.NewUseCase(
		failingTxRunner{err: txErr}, noopTenants{}, noopProvisioner{}, noopSeeder{},
		&stubResolver{known: map[string]string{}}, plainHasher{},
		logger.New(logger.Config{Env: "test", Level: "error"}), testMetrics,
	)
	app := fiber.New()
	handler := apphttp.NewTenantHandler(uc)
	app.Post("/api/tenants", handler.Onboard)
	return app
}

func postOnboard(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/tenants", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

const onboardBody = `{
	"tenant_id": "acme-corp",
	"name": "Acme Corp",
	"admin_email": "admin@acme.test",
	"admin_name": "Admin Acme",
	"admin_password": "super-secreta-1"
}`

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestTenantHandlerOnboard_EmailDuplicadoDevuelve409(t *testing.T) {
	// El perdedor de la carrera por el email único recibe Conflict, no 500.
	app := buildTenantHandlerApp(domain.ErrEmailAlreadyExists)

	resp := postOnboard(t, app, onboardBody)

	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "EMAIL_EXISTS")
}

func TestTenantHandlerOnboard_TenantDuplicadoDevuelve409(t *testing.T) {
	app := buildTenantHandlerApp(domain.ErrConflict)

	resp := postOnboard(t, app, onboardBody)

	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "TENANT_EXISTS")
}

func TestTenantHandlerOnboard_ValidacionDevuelve400(t *testing.T) {
	app := buildTenantHandlerApp(nil)

	resp := postOnboard(t, app, `{"tenant_id": "acme-corp"}`)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "VALIDATION")
}
