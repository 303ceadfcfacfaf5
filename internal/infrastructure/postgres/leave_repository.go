package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Talento-api/internal/domain"
	"github.com/jhoicas/Talento-api/internal/domain/entity"
	"github.com/jhoicas/Talento-api/internal/domain/repository"
)

var _ repository.LeaveTypeRepository = (*LeaveTypeRepo)(nil)

// LeaveTypeRepo acceso a la tabla leave_types de un tenant.
type LeaveTypeRepo struct {
	scoped
}

// Create persiste un tipo de ausencia.
func (r *LeaveTypeRepo) Create(ctx context.Context, t *entity.LeaveType) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, name, description)
		VALUES ($1, $2, $3)`, r.table("leave_types"))
	_, err := r.q.Exec(ctx, query, t.ID, t.Name, t.Description)
	if err != nil {
		return fmt.Errorf("insert leave type: %w", err)
	}
	return nil
}

// List devuelve el catálogo de tipos de ausencia del tenant.
func (r *LeaveTypeRepo) List(ctx context.Context) ([]*entity.LeaveType, error) {
	query := fmt.Sprintf(`
		SELECT id, name, COALESCE(description, '')
		FROM %s ORDER BY name`, r.table("leave_types"))
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list leave types: %w", err)
	}
	defer rows.Close()

	var list []*entity.LeaveType
	for rows.Next() {
		var t entity.LeaveType
		if err := rows.Scan(&t.ID, &t.Name, &t.Description); err != nil {
			return nil, fmt.Errorf("scan leave type: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

var _ repository.LeaveAllocationRepository = (*LeaveAllocationRepo)(nil)

// LeaveAllocationRepo acceso a la tabla leave_allocations de un tenant.
type LeaveAllocationRepo struct {
	scoped
}

// Create persiste una asignación de días.
func (r *LeaveAllocationRepo) Create(ctx context.Context, a *entity.LeaveAllocation) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, employee_id, leave_type_id, total_days, allocated_on)
		VALUES ($1, $2, $3, $4, $5)`, r.table("leave_allocations"))
	_, err := r.q.Exec(ctx, query, a.ID, a.EmployeeID, a.LeaveTypeID, a.TotalDays, a.AllocatedOn)
	if err != nil {
		return fmt.Errorf("insert leave allocation: %w", err)
	}
	return nil
}

// ListByEmployee asignaciones de un empleado.
func (r *LeaveAllocationRepo) ListByEmployee(ctx context.Context, employeeID string) ([]*entity.LeaveAllocation, error) {
	query := fmt.Sprintf(`
		SELECT id, employee_id, leave_type_id, total_days, allocated_on
		FROM %s WHERE employee_id = $1 ORDER BY allocated_on DESC`, r.table("leave_allocations"))
	rows, err := r.q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list leave allocations: %w", err)
	}
	defer rows.Close()

	var list []*entity.LeaveAllocation
	for rows.Next() {
		var a entity.LeaveAllocation
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.LeaveTypeID, &a.TotalDays, &a.AllocatedOn); err != nil {
			return nil, fmt.Errorf("scan leave allocation: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

var _ repository.LeaveRequestRepository = (*LeaveRequestRepo)(nil)

// LeaveRequestRepo acceso a la tabla leave_requests de un tenant.
type LeaveRequestRepo struct {
	scoped
}

// Create persiste una solicitud de ausencia.
func (r *LeaveRequestRepo) Create(ctx context.Context, lr *entity.LeaveRequest) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, employee_id, leave_type_id, start_date, end_date, reason, status, requested_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`, r.table("leave_requests"))
	_, err := r.q.Exec(ctx, query,
		lr.ID, lr.EmployeeID, lr.LeaveTypeID, lr.StartDate, lr.EndDate,
		lr.Reason, lr.Status, lr.RequestedAt,
	)
	if err != nil {
		return fmt.Errorf("insert leave request: %w", err)
	}
	return nil
}

// List devuelve solicitudes con paginación, más reciente primero.
func (r *LeaveRequestRepo) List(ctx context.Context, limit, offset int) ([]*entity.LeaveRequest, error) {
	query := fmt.Sprintf(`
		SELECT id, employee_id, leave_type_id, start_date, end_date, COALESCE(reason, ''), status, requested_at
		FROM %s ORDER BY requested_at DESC LIMIT $1 OFFSET $2`, r.table("leave_requests"))
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list leave requests: %w", err)
	}
	defer rows.Close()

	var list []*entity.LeaveRequest
	for rows.Next() {
		var lr entity.LeaveRequest
		if err := rows.Scan(&lr.ID, &lr.EmployeeID, &lr.LeaveTypeID, &lr.StartDate, &lr.EndDate,
			&lr.Reason, &lr.Status, &lr.RequestedAt); err != nil {
			return nil, fmt.Errorf("scan leave request: %w", err)
		}
		list = append(list, &lr)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado de una solicitud (approved, rejected, canceled).
func (r *LeaveRequestRepo) UpdateStatus(ctx context.Context, id, status string) error {
	query := fmt.Sprintf(`UPDATE %s SET status = $2 WHERE id = $1`, r.table("leave_requests"))
	cmd, err := r.q.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("update leave request status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
