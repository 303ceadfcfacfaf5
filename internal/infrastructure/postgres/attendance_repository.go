package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Talento-api/internal/domain/entity"
	"github.com/jhoicas/Talento-api/internal/domain/repository"
)

var _ repository.AttendanceRepository = (*AttendanceRepo)(nil)

// AttendanceRepo acceso a la tabla attendance de un tenant.
type AttendanceRepo struct {
	scoped
}

// Create persiste un registro de asistencia.
func (r *AttendanceRepo) Create(ctx context.Context, a *entity.AttendanceRecord) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, employee_id, date, clock_in, clock_out, status)
		VALUES ($1, $2, $3, $4, $5, $6)`, r.table("attendance"))
	_, err := r.q.Exec(ctx, query, a.ID, a.EmployeeID, a.Date, a.ClockIn, a.ClockOut, a.Status)
	if err != nil {
		return fmt.Errorf("insert attendance: %w", err)
	}
	return nil
}

// ListByEmployee asistencia de un empleado, día más reciente primero.
func (r *AttendanceRepo) ListByEmployee(ctx context.Context, employeeID string) ([]*entity.AttendanceRecord, error) {
	query := fmt.Sprintf(`
		SELECT id, employee_id, date, clock_in, clock_out, status
		FROM %s WHERE employee_id = $1 ORDER BY date DESC`, r.table("attendance"))
	rows, err := r.q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	defer rows.Close()

	var list []*entity.AttendanceRecord
	for rows.Next() {
		var a entity.AttendanceRecord
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.Date, &a.ClockIn, &a.ClockOut, &a.Status); err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

var _ repository.PerformanceReviewRepository = (*PerformanceReviewRepo)(nil)

// PerformanceReviewRepo acceso a la tabla performance_reviews de un tenant.
type PerformanceReviewRepo struct {
	scoped
}

// Create persiste una evaluación de desempeño.
func (r *PerformanceReviewRepo) Create(ctx context.Context, pr *entity.PerformanceReview) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, employee_id, reviewer_id, review_date, score, comments)
		VALUES ($1, $2, $3, $4, $5, $6)`, r.table("performance_reviews"))
	_, err := r.q.Exec(ctx, query, pr.ID, pr.EmployeeID, pr.ReviewerID, pr.ReviewDate, pr.Score, pr.Comments)
	if err != nil {
		return fmt.Errorf("insert performance review: %w", err)
	}
	return nil
}

// ListByEmployee evaluaciones de un empleado, más reciente primero.
func (r *PerformanceReviewRepo) ListByEmployee(ctx context.Context, employeeID string) ([]*entity.PerformanceReview, error) {
	query := fmt.Sprintf(`
		SELECT id, employee_id, reviewer_id, review_date, score, COALESCE(comments, '')
		FROM %s WHERE employee_id = $1 ORDER BY review_date DESC`, r.table("performance_reviews"))
	rows, err := r.q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list performance reviews: %w", err)
	}
	defer rows.Close()

	var list []*entity.PerformanceReview
	for rows.Next() {
		var pr entity.PerformanceReview
		if err := rows.Scan(&pr.ID, &pr.EmployeeID, &pr.ReviewerID, &pr.ReviewDate, &pr.Score, &pr.Comments); err != nil {
			return nil, fmt.Errorf("scan performance review: %w", err)
		}
		list = append(list, &pr)
	}
	return list, rows.Err()
}
