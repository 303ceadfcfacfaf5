package postgres

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Talento-api/internal/domain"
	"github.com/jhoicas/Talento-api/pkg/logger"
)

// SchemaPrefix prefijo fijo de todos los schemas de tenant.
const SchemaPrefix = "talento_"

// tenantIDPattern allow-list estricta para identificadores de tenant antes de
// derivar un nombre de schema. Los UUID en minúscula califican. Cualquier otra
// cosa se rechaza: el identificador termina nombrando un objeto de base de
// datos y jamás se interpola sin validar.
var tenantIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{0,47}$`)

// SchemaName deriva el nombre de schema de un tenant: función pura y
// determinista, prefijo fijo + identificador con guiones mapeados a "_".
// Identificadores distintos producen nombres distintos (el mapeo "-"->"_" es
// inyectivo porque "_" no pertenece al alfabeto de entrada).
func SchemaName(tenantID string) (string, error) {
	if !tenantIDPattern.MatchString(tenantID) {
		return "", fmt.Errorf("%w: identificador de tenant no apto para schema: %q", domain.ErrValidation, tenantID)
	}
	return SchemaPrefix + strings.ReplaceAll(tenantID, "-", "_"), nil
}

// tenantTable un statement DDL de la topología. El token {schema} se sustituye
// por el identificador ya saneado; ningún otro dato entra al SQL.
type tenantTable struct {
	name string
	ddl  string
}

// tenantTopology topología fija de cada schema de tenant, en orden de
// dependencias: las tablas con FK se crean después de las que referencian.
// Todo es IF NOT EXISTS para que Provision sea idempotente y un onboarding
// reintentado no falle en el segundo intento.
var tenantTopology = []tenantTable{
	{"departments", `
		CREATE TABLE IF NOT EXISTS {schema}.departments (
			id          UUID PRIMARY KEY,
			name        VARCHAR(100) NOT NULL UNIQUE,
			description TEXT
		)`},
	{"positions", `
		CREATE TABLE IF NOT EXISTS {schema}.positions (
			id            UUID PRIMARY KEY,
			name          VARCHAR(100) NOT NULL,
			department_id UUID REFERENCES {schema}.departments(id),
			description   TEXT
		)`},
	// employees referencia al catálogo compartido: FK cross-schema explícita
	// hacia public.users (PostgreSQL la soporta; se conserva como constraint).
	{"employees", `
		CREATE TABLE IF NOT EXISTS {schema}.employees (
			id              UUID PRIMARY KEY,
			public_user_id  UUID REFERENCES public.users(id),
			employee_number VARCHAR(50) UNIQUE,
			hire_date       DATE NOT NULL,
			department_id   UUID REFERENCES {schema}.departments(id),
			position_id     UUID REFERENCES {schema}.positions(id),
			status          VARCHAR(20) NOT NULL DEFAULT 'active',
			email           VARCHAR(255),
			phone           VARCHAR(30),
			address         TEXT
		)`},
	{"salary_history", `
		CREATE TABLE IF NOT EXISTS {schema}.salary_history (
			id             UUID PRIMARY KEY,
			employee_id    UUID NOT NULL REFERENCES {schema}.employees(id),
			amount         NUMERIC(10,2) NOT NULL,
			currency       VARCHAR(3) NOT NULL DEFAULT 'USD',
			effective_date DATE NOT NULL
		)`},
	{"payslips", `
		CREATE TABLE IF NOT EXISTS {schema}.payslips (
			id           UUID PRIMARY KEY,
			employee_id  UUID NOT NULL REFERENCES {schema}.employees(id),
			period_start DATE NOT NULL,
			period_end   DATE NOT NULL,
			gross_pay    NUMERIC(10,2) NOT NULL,
			deductions   NUMERIC(10,2) NOT NULL DEFAULT 0,
			net_pay      NUMERIC(10,2) NOT NULL,
			payment_date DATE
		)`},
	{"overtime", `
		CREATE TABLE IF NOT EXISTS {schema}.overtime (
			id              UUID PRIMARY KEY,
			employee_id     UUID NOT NULL REFERENCES {schema}.employees(id),
			date            DATE NOT NULL,
			hours           NUMERIC(5,2) NOT NULL,
			rate_multiplier NUMERIC(3,2) NOT NULL DEFAULT 1.5,
			approved        BOOLEAN NOT NULL DEFAULT false
		)`},
	{"leave_types", `
		CREATE TABLE IF NOT EXISTS {schema}.leave_types (
			id          UUID PRIMARY KEY,
			name        VARCHAR(50) NOT NULL,
			description TEXT
		)`},
	{"leave_allocations", `
		CREATE TABLE IF NOT EXISTS {schema}.leave_allocations (
			id            UUID PRIMARY KEY,
			employee_id   UUID NOT NULL REFERENCES {schema}.employees(id),
			leave_type_id UUID NOT NULL REFERENCES {schema}.leave_types(id),
			total_days    INTEGER NOT NULL,
			allocated_on  DATE NOT NULL
		)`},
	{"leave_requests", `
		CREATE TABLE IF NOT EXISTS {schema}.leave_requests (
			id            UUID PRIMARY KEY,
			employee_id   UUID NOT NULL REFERENCES {schema}.employees(id),
			leave_type_id UUID NOT NULL REFERENCES {schema}.leave_types(id),
			start_date    DATE NOT NULL,
			end_date      DATE NOT NULL,
			reason        TEXT,
			status        VARCHAR(20) NOT NULL DEFAULT 'pending',
			requested_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		)`},
	{"attendance", `
		CREATE TABLE IF NOT EXISTS {schema}.attendance (
			id          UUID PRIMARY KEY,
			employee_id UUID NOT NULL REFERENCES {schema}.employees(id),
			date        DATE NOT NULL,
			clock_in    TIMESTAMPTZ,
			clock_out   TIMESTAMPTZ,
			status      VARCHAR(20) NOT NULL DEFAULT 'present'
		)`},
	{"performance_reviews", `
		CREATE TABLE IF NOT EXISTS {schema}.performance_reviews (
			id          UUID PRIMARY KEY,
			employee_id UUID NOT NULL REFERENCES {schema}.employees(id),
			reviewer_id UUID REFERENCES public.users(id),
			review_date DATE NOT NULL,
			score       INTEGER CHECK (score BETWEEN 1 AND 10),
			comments    TEXT
		)`},
	{"documents", `
		CREATE TABLE IF NOT EXISTS {schema}.documents (
			id          UUID PRIMARY KEY,
			employee_id UUID NOT NULL REFERENCES {schema}.employees(id),
			title       VARCHAR(100),
			file_url    TEXT NOT NULL,
			uploaded_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`},
	{"training_sessions", `
		CREATE TABLE IF NOT EXISTS {schema}.training_sessions (
			id          UUID PRIMARY KEY,
			title       VARCHAR(100) NOT NULL,
			description TEXT,
			start_date  DATE NOT NULL,
			end_date    DATE NOT NULL
		)`},
	{"employee_trainings", `
		CREATE TABLE IF NOT EXISTS {schema}.employee_trainings (
			id          UUID PRIMARY KEY,
			employee_id UUID NOT NULL REFERENCES {schema}.employees(id),
			session_id  UUID NOT NULL REFERENCES {schema}.training_sessions(id),
			attended    BOOLEAN NOT NULL DEFAULT false
		)`},
	{"notifications", `
		CREATE TABLE IF NOT EXISTS {schema}.notifications (
			id          UUID PRIMARY KEY,
			employee_id UUID NOT NULL REFERENCES {schema}.employees(id),
			message     TEXT NOT NULL,
			read        BOOLEAN NOT NULL DEFAULT false,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		)`},
	{"terminations", `
		CREATE TABLE IF NOT EXISTS {schema}.terminations (
			id               UUID PRIMARY KEY,
			employee_id      UUID NOT NULL REFERENCES {schema}.employees(id),
			reason           TEXT NOT NULL,
			termination_date DATE NOT NULL,
			final_pay        NUMERIC(10,2)
		)`},
}

// Provisioner crea el schema de un tenant con su topología completa de tablas.
//
// Modo de ejecución: PostgreSQL soporta DDL transaccional, pero el
// aprovisionamiento corre DESPUÉS de que la transacción del catálogo confirmó,
// como paso idempotente independiente. Eso mantiene la tx del catálogo corta y
// hace del reintento la primitiva de recuperación (ver onboarding).
type Provisioner struct {
	q   Querier
	log *logger.Logger
}

// NewProvisioner construye el provisioner. Pasar pool o tx (Querier).
func NewProvisioner(q Querier, log *logger.Logger) *Provisioner {
	return &Provisioner{q: q, log: log}
}

// SchemaName deriva el nombre de schema (delegando en la función pura del paquete).
func (p *Provisioner) SchemaName(tenantID string) (string, error) {
	return SchemaName(tenantID)
}

// Provision crea el schema si no existe y después las 16 tablas de la
// topología en orden de dependencias. Seguro de llamar dos veces. Ante un
// fallo reporta qué statement falló; el estado físico parcial solo puede
// persistir transitoriamente — el orquestador de onboarding reintenta o marca
// el tenant suspendido.
func (p *Provisioner) Provision(ctx context.Context, schema string) error {
	quoted, err := quoteSchema(schema)
	if err != nil {
		return err
	}

	if _, err := p.q.Exec(ctx, "CREATE SCHEMA IF NOT EXISTS "+quoted); err != nil {
		return fmt.Errorf("%w: schema %s: create schema: %w", domain.ErrProvisioningFailed, schema, err)
	}

	for _, t := range tenantTopology {
		stmt := strings.ReplaceAll(t.ddl, "{schema}", quoted)
		if _, err := p.q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("%w: schema %s: tabla %s: %w", domain.ErrProvisioningFailed, schema, t.name, err)
		}
	}

	p.log.Debug().Str("schema", schema).Int("tables", len(tenantTopology)).Msg("schema de tenant aprovisionado")
	return nil
}

// Provisioned informa si el schema existe con la topología completa (cuenta
// las tablas esperadas en information_schema). Lo usa el resolver para fallar
// cerrado y la reconciliación de onboardings parciales.
func (p *Provisioner) Provisioned(ctx context.Context, schema string) (bool, error) {
	if _, err := quoteSchema(schema); err != nil {
		return false, err
	}
	const query = `
		SELECT count(*) FROM information_schema.tables
		WHERE table_schema = $1`
	var count int
	if err := p.q.QueryRow(ctx, query, schema).Scan(&count); err != nil {
		return false, fmt.Errorf("check schema %s: %w", schema, err)
	}
	return count >= len(tenantTopology), nil
}

// quoteSchema valida que el nombre tenga el prefijo y alfabeto esperados y lo
// devuelve entrecomillado vía pgx.Identifier. Doble barrera: allow-list
// primero, quoting después.
func quoteSchema(schema string) (string, error) {
	rest, ok := strings.CutPrefix(schema, SchemaPrefix)
	if !ok || rest == "" {
		return "", fmt.Errorf("%w: nombre de schema sin prefijo %q: %q", domain.ErrValidation, SchemaPrefix, schema)
	}
	for _, r := range rest {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '_' {
			return "", fmt.Errorf("%w: nombre de schema con caracteres no permitidos: %q", domain.ErrValidation, schema)
		}
	}
	return pgx.Identifier{schema}.Sanitize(), nil
}
