package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Talento-api/internal/domain"
	"github.com/jhoicas/Talento-api/internal/domain/entity"
	"github.com/jhoicas/Talento-api/internal/domain/repository"
)

var _ repository.DepartmentRepository = (*DepartmentRepo)(nil)

// DepartmentRepo acceso a la tabla departments de un tenant (vía TenantHandle).
type DepartmentRepo struct {
	scoped
}

// Create persiste un departamento. Nombre duplicado -> domain.ErrDuplicate.
func (r *DepartmentRepo) Create(ctx context.Context, d *entity.Department) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, name, description) VALUES ($1, $2, $3)`, r.table("departments"))
	_, err := r.q.Exec(ctx, query, d.ID, d.Name, d.Description)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert department: %w", err)
	}
	return nil
}

// GetByID obtiene un departamento; (nil, nil) si no existe.
func (r *DepartmentRepo) GetByID(ctx context.Context, id string) (*entity.Department, error) {
	query := fmt.Sprintf(`
		SELECT id, name, COALESCE(description, '') FROM %s WHERE id = $1`, r.table("departments"))
	var d entity.Department
	err := r.q.QueryRow(ctx, query, id).Scan(&d.ID, &d.Name, &d.Description)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get department: %w", err)
	}
	return &d, nil
}

// List devuelve departamentos con paginación.
func (r *DepartmentRepo) List(ctx context.Context, limit, offset int) ([]*entity.Department, error) {
	query := fmt.Sprintf(`
		SELECT id, name, COALESCE(description, '')
		FROM %s ORDER BY name LIMIT $1 OFFSET $2`, r.table("departments"))
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer rows.Close()

	var list []*entity.Department
	for rows.Next() {
		var d entity.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.Description); err != nil {
			return nil, fmt.Errorf("scan department: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

var _ repository.PositionRepository = (*PositionRepo)(nil)

// PositionRepo acceso a la tabla positions de un tenant.
type PositionRepo struct {
	scoped
}

// Create persiste un cargo.
func (r *PositionRepo) Create(ctx context.Context, p *entity.Position) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, name, department_id, description)
		VALUES ($1, $2, $3, $4)`, r.table("positions"))
	_, err := r.q.Exec(ctx, query, p.ID, p.Name, p.DepartmentID, p.Description)
	if err != nil {
		return fmt.Errorf("insert position: %w", err)
	}
	return nil
}

// List devuelve cargos con paginación.
func (r *PositionRepo) List(ctx context.Context, limit, offset int) ([]*entity.Position, error) {
	query := fmt.Sprintf(`
		SELECT id, name, department_id, COALESCE(description, '')
		FROM %s ORDER BY name LIMIT $1 OFFSET $2`, r.table("positions"))
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list positions: %w", err)
	}
	defer rows.Close()

	var list []*entity.Position
	for rows.Next() {
		var p entity.Position
		if err := rows.Scan(&p.ID, &p.Name, &p.DepartmentID, &p.Description); err != nil {
			return nil, fmt.Errorf("scan position: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
