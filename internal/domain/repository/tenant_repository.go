package repository

import (
	"context"

	"github.com/jhoicas/Talento-api/internal/domain/entity"
)

// TenantRepository define el puerto de persistencia del catálogo de tenants (DIP).
// La implementación vive en infrastructure y participa en la transacción del
// caller cuando se construye sobre una tx.
type TenantRepository interface {
	Create(ctx context.Context, tenant *entity.Tenant) error
	GetByID(ctx context.Context, id string) (*entity.Tenant, error)
	GetBySchema(ctx context.Context, schema string) (*entity.Tenant, error)
	UpdateStatus(ctx context.Context, id, status string) error
	List(ctx context.Context, limit, offset int) ([]*entity.Tenant, error)
	SoftDelete(ctx context.Context, id string) error
}
