package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Talento-api/internal/domain"
	"github.com/jhoicas/Talento-api/internal/domain/entity"
	"github.com/jhoicas/Talento-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo acceso a la tabla employees de un tenant (vía TenantHandle).
type EmployeeRepo struct {
	scoped
}

// Create persiste un empleado. Número de empleado duplicado -> domain.ErrDuplicate.
func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, public_user_id, employee_number, hire_date, department_id, position_id, status, email, phone, address)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`, r.table("employees"))
	_, err := r.q.Exec(ctx, query,
		e.ID, e.PublicUserID, e.EmployeeNumber, e.HireDate,
		e.DepartmentID, e.PositionID, e.Status, e.Email, e.Phone, e.Address,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado; (nil, nil) si no existe.
func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	return r.getBy(ctx, "id", id)
}

// GetByNumber obtiene un empleado por su número; (nil, nil) si no existe.
func (r *EmployeeRepo) GetByNumber(ctx context.Context, number string) (*entity.Employee, error) {
	return r.getBy(ctx, "employee_number", number)
}

func (r *EmployeeRepo) getBy(ctx context.Context, column, value string) (*entity.Employee, error) {
	query := fmt.Sprintf(`
		SELECT id, public_user_id, COALESCE(employee_number, ''), hire_date,
		       department_id, position_id, status,
		       COALESCE(email, ''), COALESCE(phone, ''), COALESCE(address, '')
		FROM %s WHERE %s = $1`, r.table("employees"), column)
	var e entity.Employee
	err := r.q.QueryRow(ctx, query, value).Scan(
		&e.ID, &e.PublicUserID, &e.EmployeeNumber, &e.HireDate,
		&e.DepartmentID, &e.PositionID, &e.Status, &e.Email, &e.Phone, &e.Address,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee by %s: %w", column, err)
	}
	return &e, nil
}

// List devuelve empleados con paginación.
func (r *EmployeeRepo) List(ctx context.Context, limit, offset int) ([]*entity.Employee, error) {
	query := fmt.Sprintf(`
		SELECT id, public_user_id, COALESCE(employee_number, ''), hire_date,
		       department_id, position_id, status,
		       COALESCE(email, ''), COALESCE(phone, ''), COALESCE(address, '')
		FROM %s ORDER BY hire_date DESC LIMIT $1 OFFSET $2`, r.table("employees"))
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.ID, &e.PublicUserID, &e.EmployeeNumber, &e.HireDate,
			&e.DepartmentID, &e.PositionID, &e.Status, &e.Email, &e.Phone, &e.Address); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado del empleado (active, inactive, on_leave, terminated).
func (r *EmployeeRepo) UpdateStatus(ctx context.Context, id, status string) error {
	query := fmt.Sprintf(`UPDATE %s SET status = $2 WHERE id = $1`, r.table("employees"))
	cmd, err := r.q.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("update employee status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
