package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Talento-api/internal/domain"
	"github.com/jhoicas/Talento-api/internal/domain/entity"
	"github.com/jhoicas/Talento-api/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo acceso a la tabla documents de un tenant.
type DocumentRepo struct {
	scoped
}

// Create persiste la referencia a un documento.
func (r *DocumentRepo) Create(ctx context.Context, d *entity.Document) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, employee_id, title, file_url, uploaded_at)
		VALUES ($1, $2, $3, $4, $5)`, r.table("documents"))
	_, err := r.q.Exec(ctx, query, d.ID, d.EmployeeID, d.Title, d.FileURL, d.UploadedAt)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

// ListByEmployee documentos de un empleado, más reciente primero.
func (r *DocumentRepo) ListByEmployee(ctx context.Context, employeeID string) ([]*entity.Document, error) {
	query := fmt.Sprintf(`
		SELECT id, employee_id, COALESCE(title, ''), file_url, uploaded_at
		FROM %s WHERE employee_id = $1 ORDER BY uploaded_at DESC`, r.table("documents"))
	rows, err := r.q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var list []*entity.Document
	for rows.Next() {
		var d entity.Document
		if err := rows.Scan(&d.ID, &d.EmployeeID, &d.Title, &d.FileURL, &d.UploadedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo acceso a la tabla notifications de un tenant.
type NotificationRepo struct {
	scoped
}

// Create persiste una notificación.
func (r *NotificationRepo) Create(ctx context.Context, n *entity.Notification) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, employee_id, message, read, created_at)
		VALUES ($1, $2, $3, $4, $5)`, r.table("notifications"))
	_, err := r.q.Exec(ctx, query, n.ID, n.EmployeeID, n.Message, n.Read, n.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// ListByEmployee notificaciones de un empleado, más reciente primero.
func (r *NotificationRepo) ListByEmployee(ctx context.Context, employeeID string) ([]*entity.Notification, error) {
	query := fmt.Sprintf(`
		SELECT id, employee_id, message, read, created_at
		FROM %s WHERE employee_id = $1 ORDER BY created_at DESC`, r.table("notifications"))
	rows, err := r.q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var list []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		if err := rows.Scan(&n.ID, &n.EmployeeID, &n.Message, &n.Read, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

// MarkRead marca una notificación como leída.
func (r *NotificationRepo) MarkRead(ctx context.Context, id string) error {
	query := fmt.Sprintf(`UPDATE %s SET read = true WHERE id = $1`, r.table("notifications"))
	cmd, err := r.q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ repository.TerminationRepository = (*TerminationRepo)(nil)

// TerminationRepo acceso a la tabla terminations de un tenant.
type TerminationRepo struct {
	scoped
}

// Create persiste la terminación de un empleado.
func (r *TerminationRepo) Create(ctx context.Context, t *entity.Termination) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, employee_id, reason, termination_date, final_pay)
		VALUES ($1, $2, $3, $4, $5)`, r.table("terminations"))
	_, err := r.q.Exec(ctx, query, t.ID, t.EmployeeID, t.Reason, t.TerminationDate, t.FinalPay)
	if err != nil {
		return fmt.Errorf("insert termination: %w", err)
	}
	return nil
}

// GetByEmployee devuelve (nil, nil) si el empleado no tiene terminación.
func (r *TerminationRepo) GetByEmployee(ctx context.Context, employeeID string) (*entity.Termination, error) {
	query := fmt.Sprintf(`
		SELECT id, employee_id, reason, termination_date, final_pay
		FROM %s WHERE employee_id = $1`, r.table("terminations"))
	var t entity.Termination
	err := r.q.QueryRow(ctx, query, employeeID).Scan(
		&t.ID, &t.EmployeeID, &t.Reason, &t.TerminationDate, &t.FinalPay,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get termination: %w", err)
	}
	return &t, nil
}
