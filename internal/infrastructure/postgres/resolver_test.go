package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Talento-api/internal/domain"
	"github.com/jhoicas/Talento-api/internal/domain/entity"
)

// fakeTenantRepo catálogo en memoria con conteo de lecturas.
type fakeTenantRepo struct {
	tenants map[string]*entity.Tenant
	getByID int
}

func (f *fakeTenantRepo) Create(_ context.Context, t *entity.Tenant) error {
	f.tenants[t.ID] = t
	return nil
}

func (f *fakeTenantRepo) GetByID(_ context.Context, id string) (*entity.Tenant, error) {
	f.getByID++
	return f.tenants[id], nil
}

func (f *fakeTenantRepo) GetBySchema(_ context.Context, schema string) (*entity.Tenant, error) {
	for _, t := range f.tenants {
		if t.Schema == schema {
			return t, nil
		}
	}
	return nil, nil
}

func (f *fakeTenantRepo) UpdateStatus(_ context.Context, id, status string) error {
	if t, ok := f.tenants[id]; ok {
		t.Status = status
		return nil
	}
	return domain.ErrNotFound
}

func (f *fakeTenantRepo) List(_ context.Context, _, _ int) ([]*entity.Tenant, error) {
	return nil, nil
}

func (f *fakeTenantRepo) SoftDelete(_ context.Context, id string) error {
	if t, ok := f.tenants[id]; ok {
		now := time.Now()
		t.DeletedAt = &now
		return nil
	}
	return domain.ErrNotFound
}

// fakeChecker responde si el schema está aprovisionado, contando llamadas.
type fakeChecker struct {
	provisioned bool
	calls       int
}

func (f *fakeChecker) Provisioned(_ context.Context, _ string) (bool, error) {
	f.calls++
	return f.provisioned, nil
}

func activeTenant(id string) *entity.Tenant {
	schema, _ := SchemaName(id)
	return &entity.Tenant{ID: id, Name: id, Schema: schema, Status: entity.TenantStatusActive}
}

func newTestResolver(tenants *fakeTenantRepo, checker *fakeChecker) *Resolver {
	return NewResolver(&fakeQuerier{}, tenants, checker)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fallar cerrado
// ──────────────────────────────────────────────────────────────────────────────

func TestResolve_IdentificadorVacioOMalformado(t *testing.T) {
	repo := &fakeTenantRepo{tenants: map[string]*entity.Tenant{}}
	r := newTestResolver(repo, &fakeChecker{provisioned: true})

	for _, id := range []string{"", "ACME", "acme corp", `acme"x`, "acme_x"} {
		_, err := r.Resolve(context.Background(), id)
		assert.ErrorIs(t, err, domain.ErrValidation, "identificador: %q", id)
	}
	assert.Zero(t, repo.getByID, "un identificador inválido no debe tocar el catálogo")
}

func TestResolve_TenantInexistente(t *testing.T) {
	r := newTestResolver(&fakeTenantRepo{tenants: map[string]*entity.Tenant{}}, &fakeChecker{provisioned: true})

	_, err := r.Resolve(context.Background(), "fantasma")
	assert.ErrorIs(t, err, domain.ErrTenantNotFound)
}

func TestResolve_TenantNoActivo(t *testing.T) {
	for _, status := range []string{entity.TenantStatusInactive, entity.TenantStatusSuspended} {
		ten := activeTenant("acme")
		ten.Status = status
		repo := &fakeTenantRepo{tenants: map[string]*entity.Tenant{"acme": ten}}
		r := newTestResolver(repo, &fakeChecker{provisioned: true})

		_, err := r.Resolve(context.Background(), "acme")
		assert.ErrorIs(t, err, domain.ErrTenantNotFound, "status: %s", status)
	}
}

func TestResolve_TenantSoftDeleted(t *testing.T) {
	ten := activeTenant("acme")
	now := time.Now()
	ten.DeletedAt = &now
	repo := &fakeTenantRepo{tenants: map[string]*entity.Tenant{"acme": ten}}
	r := newTestResolver(repo, &fakeChecker{provisioned: true})

	_, err := r.Resolve(context.Background(), "acme")
	assert.ErrorIs(t, err, domain.ErrTenantNotFound)
}

func TestResolve_SchemaNoAprovisionado(t *testing.T) {
	repo := &fakeTenantRepo{tenants: map[string]*entity.Tenant{"acme": activeTenant("acme")}}
	checker := &fakeChecker{provisioned: false}
	r := newTestResolver(repo, checker)

	_, err := r.Resolve(context.Background(), "acme")
	assert.ErrorIs(t, err, domain.ErrTenantNotFound,
		"un tenant en catálogo sin schema físico no debe resolver")
}

// ──────────────────────────────────────────────────────────────────────────────
// Cache
// ──────────────────────────────────────────────────────────────────────────────

func TestResolve_CacheaResolucionesExitosas(t *testing.T) {
	repo := &fakeTenantRepo{tenants: map[string]*entity.Tenant{"acme": activeTenant("acme")}}
	checker := &fakeChecker{provisioned: true}
	r := newTestResolver(repo, checker)

	h1, err := r.Resolve(context.Background(), "acme")
	require.NoError(t, err)
	h2, err := r.Resolve(context.Background(), "acme")
	require.NoError(t, err)

	assert.Equal(t, h1.Schema(), h2.Schema())
	assert.Equal(t, 1, repo.getByID, "la segunda resolución debe salir del cache")
	assert.Equal(t, 1, checker.calls)
}

func TestResolve_NoCacheaResultadosNegativos(t *testing.T) {
	repo := &fakeTenantRepo{tenants: map[string]*entity.Tenant{"acme": activeTenant("acme")}}
	checker := &fakeChecker{provisioned: false}
	r := newTestResolver(repo, checker)

	_, err := r.Resolve(context.Background(), "acme")
	require.ErrorIs(t, err, domain.ErrTenantNotFound)

	// El aprovisionamiento se completa después (reintento del onboarding).
	checker.provisioned = true
	h, err := r.Resolve(context.Background(), "acme")
	require.NoError(t, err, "el resultado negativo no debe quedar cacheado")
	assert.Equal(t, "talento_acme", h.Schema())
	assert.Equal(t, 2, checker.calls, "cada intento fallido debe reconsultar")
}

func TestResolve_InvalidateFuerzaRelectura(t *testing.T) {
	repo := &fakeTenantRepo{tenants: map[string]*entity.Tenant{"acme": activeTenant("acme")}}
	r := newTestResolver(repo, &fakeChecker{provisioned: true})

	_, err := r.Resolve(context.Background(), "acme")
	require.NoError(t, err)

	// El tenant se suspende; sin invalidar, el cache seguiría resolviendo.
	require.NoError(t, repo.UpdateStatus(context.Background(), "acme", entity.TenantStatusSuspended))
	r.Invalidate("acme")

	_, err = r.Resolve(context.Background(), "acme")
	assert.ErrorIs(t, err, domain.ErrTenantNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Aislamiento estructural del handle
// ──────────────────────────────────────────────────────────────────────────────

func TestResolve_HandleLigadoASuSchema(t *testing.T) {
	repo := &fakeTenantRepo{tenants: map[string]*entity.Tenant{
		"acme": activeTenant("acme"),
		"beta": activeTenant("beta"),
	}}
	r := newTestResolver(repo, &fakeChecker{provisioned: true})

	ha, err := r.Resolve(context.Background(), "acme")
	require.NoError(t, err)
	hb, err := r.Resolve(context.Background(), "beta")
	require.NoError(t, err)

	assert.Equal(t, "acme", ha.TenantID())
	assert.Equal(t, "talento_acme", ha.Schema())
	assert.Equal(t, "talento_beta", hb.Schema())
	assert.NotEqual(t, ha.Schema(), hb.Schema(),
		"handles de tenants distintos deben apuntar a schemas distintos")
}
