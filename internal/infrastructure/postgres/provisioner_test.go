package postgres

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Talento-api/internal/domain"
	"github.com/jhoicas/Talento-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// fakeQuerier registra cada Exec y permite inyectar fallos por substring.
type fakeQuerier struct {
	execs    []string
	failWhen string // si el SQL contiene esto, Exec falla
	rowCount int    // lo que devuelve QueryRow al escanear un count
}

func (f *fakeQuerier) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, sql)
	if f.failWhen != "" && strings.Contains(sql, f.failWhen) {
		return pgconn.CommandTag{}, errors.New("error simulado")
	}
	return pgconn.CommandTag{}, nil
}

func (f *fakeQuerier) Query(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
	return nil, errors.New("no implementado en el fake")
}

func (f *fakeQuerier) QueryRow(_ context.Context, _ string, _ ...any) pgx.Row {
	return fakeRow{count: f.rowCount}
}

type fakeRow struct{ count int }

func (r fakeRow) Scan(dest ...any) error {
	if len(dest) == 1 {
		if p, ok := dest[0].(*int); ok {
			*p = r.count
			return nil
		}
	}
	return errors.New("destino inesperado en el fake")
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}

// ──────────────────────────────────────────────────────────────────────────────
// SchemaName
// ──────────────────────────────────────────────────────────────────────────────

func TestSchemaName_Determinista(t *testing.T) {
	a, err := SchemaName("acme-corp")
	require.NoError(t, err)
	b, err := SchemaName("acme-corp")
	require.NoError(t, err)

	assert.Equal(t, a, b, "la derivación debe ser determinista")
	assert.Equal(t, "talento_acme_corp", a)
}

func TestSchemaName_IdentificadoresDistintosSchemasDistintos(t *testing.T) {
	seen := map[string]string{}
	for _, id := range []string{"acme", "acme-corp", "acme-c-orp", "acmecorp", "a1b2-c3"} {
		s, err := SchemaName(id)
		require.NoError(t, err, "identificador válido: %s", id)
		prev, dup := seen[s]
		assert.False(t, dup, "colisión de schema entre %q y %q", id, prev)
		seen[s] = id
	}
}

func TestSchemaName_UUIDMinuscula(t *testing.T) {
	s, err := SchemaName("6f1e8a2b-9c41-4d6e-b8aa-0f3d9c2e71aa")
	require.NoError(t, err)
	assert.Equal(t, "talento_6f1e8a2b_9c41_4d6e_b8aa_0f3d9c2e71aa", s)
}

func TestSchemaName_RechazaIdentificadoresPeligrosos(t *testing.T) {
	for _, id := range []string{
		"",
		"ACME",                    // mayúsculas fuera del alfabeto
		"acme corp",               // espacio
		"acme;drop schema public", // inyección
		`acme"--`,                 // quoting
		"-acme",                   // no empieza alfanumérico
		"acme_corp",               // "_" reservado para el mapeo de "-"
		strings.Repeat("a", 49),   // demasiado largo
	} {
		_, err := SchemaName(id)
		assert.ErrorIs(t, err, domain.ErrValidation, "debe rechazarse: %q", id)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Provision
// ──────────────────────────────────────────────────────────────────────────────

func TestProvision_CreaSchemaYTablasEnOrden(t *testing.T) {
	q := &fakeQuerier{}
	p := NewProvisioner(q, testLogger())

	err := p.Provision(context.Background(), "talento_acme")
	require.NoError(t, err)

	// 1 CREATE SCHEMA + una tabla por entrada de la topología
	require.Len(t, q.execs, 1+len(tenantTopology))
	assert.Contains(t, q.execs[0], "CREATE SCHEMA IF NOT EXISTS")

	// Las dependencias se respetan: departments antes que employees,
	// employees antes que payslips, leave_types antes que leave_requests.
	idx := map[string]int{}
	for i, tbl := range tenantTopology {
		assert.Contains(t, q.execs[i+1], tbl.name, "orden de topología")
		idx[tbl.name] = i
	}
	assert.Less(t, idx["departments"], idx["employees"])
	assert.Less(t, idx["employees"], idx["payslips"])
	assert.Less(t, idx["leave_types"], idx["leave_requests"])
	assert.Less(t, idx["training_sessions"], idx["employee_trainings"])

	// Todo el DDL es idempotente y va contra el schema entrecomillado.
	for _, stmt := range q.execs[1:] {
		assert.Contains(t, stmt, "IF NOT EXISTS")
		assert.Contains(t, stmt, `"talento_acme".`)
		assert.NotContains(t, stmt, "{schema}", "el token debe sustituirse siempre")
	}
}

func TestProvision_SegundaLlamadaNoFalla(t *testing.T) {
	q := &fakeQuerier{}
	p := NewProvisioner(q, testLogger())

	require.NoError(t, p.Provision(context.Background(), "talento_acme"))
	require.NoError(t, p.Provision(context.Background(), "talento_acme"),
		"reprovisionar debe ser seguro (IF NOT EXISTS)")
}

func TestProvision_FalloReportaTabla(t *testing.T) {
	q := &fakeQuerier{failWhen: "payslips"}
	p := NewProvisioner(q, testLogger())

	err := p.Provision(context.Background(), "talento_acme")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProvisioningFailed)
	assert.Contains(t, err.Error(), "payslips", "el error debe nombrar la tabla que falló")
}

func TestProvision_RechazaSchemaSinPrefijo(t *testing.T) {
	p := NewProvisioner(&fakeQuerier{}, testLogger())

	for _, schema := range []string{"public", "acme", "talento_", `talento_x";drop`} {
		err := p.Provision(context.Background(), schema)
		assert.ErrorIs(t, err, domain.ErrValidation, "schema inválido: %q", schema)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Provisioned
// ──────────────────────────────────────────────────────────────────────────────

func TestProvisioned_TopologiaCompleta(t *testing.T) {
	p := NewProvisioner(&fakeQuerier{rowCount: len(tenantTopology)}, testLogger())
	ok, err := p.Provisioned(context.Background(), "talento_acme")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestProvisioned_TopologiaParcial(t *testing.T) {
	p := NewProvisioner(&fakeQuerier{rowCount: 3}, testLogger())
	ok, err := p.Provisioned(context.Background(), "talento_acme")
	require.NoError(t, err)
	assert.False(t, ok, "un schema a medias no cuenta como aprovisionado")
}
