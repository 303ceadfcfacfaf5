package postgres

import (
	"context"
	"sync"

	"github.com/jhoicas/Talento-api/internal/domain"
	"github.com/jhoicas/Talento-api/internal/domain/entity"
	"github.com/jhoicas/Talento-api/internal/domain/repository"
)

// Asegura que Resolver implementa repository.TenantResolver.
var _ repository.TenantResolver = (*Resolver)(nil)

// SchemaChecker contrato mínimo del resolver para verificar que el schema de
// un tenant existe con topología completa. Lo implementa *Provisioner.
type SchemaChecker interface {
	Provisioned(ctx context.Context, schema string) (bool, error)
}

// Resolver mapea identificadores de tenant a handles ligados a su schema.
// Cachea el mapeo tenantID -> schema (inmutable una vez aprovisionado); los
// resultados negativos nunca se cachean para no tapar un aprovisionamiento
// posterior.
type Resolver struct {
	q       Querier
	tenants repository.TenantRepository
	checker SchemaChecker

	mu    sync.RWMutex
	cache map[string]string // tenantID -> schema
}

// NewResolver construye el resolver sobre el pool compartido.
func NewResolver(q Querier, tenants repository.TenantRepository, checker SchemaChecker) *Resolver {
	return &Resolver{
		q:       q,
		tenants: tenants,
		checker: checker,
		cache:   make(map[string]string),
	}
}

// Resolve devuelve el handle del tenant. Falla cerrado: identificador ausente
// o mal formado -> ErrValidation; tenant inexistente, no activo, soft-deleted
// o sin schema aprovisionado -> ErrTenantNotFound. Nunca cae a un schema por
// defecto ni al catálogo compartido.
func (r *Resolver) Resolve(ctx context.Context, tenantID string) (repository.TenantHandle, error) {
	if tenantID == "" || !tenantIDPattern.MatchString(tenantID) {
		return nil, domain.ErrValidation
	}

	r.mu.RLock()
	schema, ok := r.cache[tenantID]
	r.mu.RUnlock()
	if ok {
		return newTenantHandle(r.q, tenantID, schema), nil
	}

	t, err := r.tenants.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if t == nil || t.DeletedAt != nil || t.Status != entity.TenantStatusActive {
		return nil, domain.ErrTenantNotFound
	}

	provisioned, err := r.checker.Provisioned(ctx, t.Schema)
	if err != nil {
		return nil, err
	}
	if !provisioned {
		// Catálogo y estado físico divergen (ventana de onboarding parcial);
		// rechazar sin cachear: un reintento de aprovisionamiento lo resuelve.
		return nil, domain.ErrTenantNotFound
	}

	r.mu.Lock()
	r.cache[tenantID] = t.Schema
	r.mu.Unlock()

	return newTenantHandle(r.q, tenantID, t.Schema), nil
}

// Invalidate elimina una entrada del cache (para soft delete o suspensión).
func (r *Resolver) Invalidate(tenantID string) {
	r.mu.Lock()
	delete(r.cache, tenantID)
	r.mu.Unlock()
}
