package repository

import (
	"context"

	"github.com/jhoicas/Talento-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (catálogo compartido).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// GetByEmail devuelve (nil, nil) cuando el email no existe.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
}

// MembershipRepository define el puerto para la tabla tenant_users.
type MembershipRepository interface {
	Create(ctx context.Context, m *entity.Membership) error
	ListByUser(ctx context.Context, userID string) ([]*entity.Membership, error)
	// GetByUserAndTenant devuelve (nil, nil) si el par no existe.
	GetByUserAndTenant(ctx context.Context, userID, tenantID string) (*entity.Membership, error)
}
