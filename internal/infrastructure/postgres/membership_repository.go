package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Talento-api/internal/domain"
	"github.com/jhoicas/Talento-api/internal/domain/entity"
	"github.com/jhoicas/Talento-api/internal/domain/repository"
)

var _ repository.MembershipRepository = (*MembershipRepo)(nil)

// MembershipRepo implementación del puerto MembershipRepository (tenant_users).
type MembershipRepo struct {
	q Querier
}

// NewMembershipRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMembershipRepository(q Querier) *MembershipRepo {
	return &MembershipRepo{q: q}
}

// Create persiste una membresía. El UNIQUE (user_id, tenant_id) garantiza a lo
// sumo una fila por par; duplicado -> domain.ErrConflict.
func (r *MembershipRepo) Create(ctx context.Context, m *entity.Membership) error {
	query := `
		INSERT INTO tenant_users (id, user_id, tenant_id, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.UserID, m.TenantID, m.Role, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert membership: %w", err)
	}
	return nil
}

// ListByUser lista las membresías de un usuario (sus tenants y roles).
func (r *MembershipRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Membership, error) {
	query := `
		SELECT id, user_id, tenant_id, role, created_at, updated_at
		FROM tenant_users WHERE user_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}
	defer rows.Close()

	var list []*entity.Membership
	for rows.Next() {
		var m entity.Membership
		if err := rows.Scan(&m.ID, &m.UserID, &m.TenantID, &m.Role, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan membership: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// GetByUserAndTenant obtiene la membresía de un par (user, tenant); (nil, nil) si no hay.
func (r *MembershipRepo) GetByUserAndTenant(ctx context.Context, userID, tenantID string) (*entity.Membership, error) {
	query := `
		SELECT id, user_id, tenant_id, role, created_at, updated_at
		FROM tenant_users WHERE user_id = $1 AND tenant_id = $2`
	var m entity.Membership
	err := r.q.QueryRow(ctx, query, userID, tenantID).Scan(
		&m.ID, &m.UserID, &m.TenantID, &m.Role, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get membership: %w", err)
	}
	return &m, nil
}
