package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Talento-api/internal/domain/entity"
	"github.com/jhoicas/Talento-api/internal/domain/repository"
)

var _ repository.TrainingSessionRepository = (*TrainingSessionRepo)(nil)

// TrainingSessionRepo acceso a la tabla training_sessions de un tenant.
type TrainingSessionRepo struct {
	scoped
}

// Create persiste una sesión de capacitación.
func (r *TrainingSessionRepo) Create(ctx context.Context, s *entity.TrainingSession) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, title, description, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5)`, r.table("training_sessions"))
	_, err := r.q.Exec(ctx, query, s.ID, s.Title, s.Description, s.StartDate, s.EndDate)
	if err != nil {
		return fmt.Errorf("insert training session: %w", err)
	}
	return nil
}

// List devuelve sesiones con paginación, inicio más reciente primero.
func (r *TrainingSessionRepo) List(ctx context.Context, limit, offset int) ([]*entity.TrainingSession, error) {
	query := fmt.Sprintf(`
		SELECT id, title, COALESCE(description, ''), start_date, end_date
		FROM %s ORDER BY start_date DESC LIMIT $1 OFFSET $2`, r.table("training_sessions"))
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list training sessions: %w", err)
	}
	defer rows.Close()

	var list []*entity.TrainingSession
	for rows.Next() {
		var s entity.TrainingSession
		if err := rows.Scan(&s.ID, &s.Title, &s.Description, &s.StartDate, &s.EndDate); err != nil {
			return nil, fmt.Errorf("scan training session: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

var _ repository.EmployeeTrainingRepository = (*EmployeeTrainingRepo)(nil)

// EmployeeTrainingRepo acceso a la tabla employee_trainings de un tenant.
type EmployeeTrainingRepo struct {
	scoped
}

// Create inscribe a un empleado en una sesión.
func (r *EmployeeTrainingRepo) Create(ctx context.Context, et *entity.EmployeeTraining) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, employee_id, session_id, attended)
		VALUES ($1, $2, $3, $4)`, r.table("employee_trainings"))
	_, err := r.q.Exec(ctx, query, et.ID, et.EmployeeID, et.SessionID, et.Attended)
	if err != nil {
		return fmt.Errorf("insert employee training: %w", err)
	}
	return nil
}

// ListByEmployee inscripciones de un empleado.
func (r *EmployeeTrainingRepo) ListByEmployee(ctx context.Context, employeeID string) ([]*entity.EmployeeTraining, error) {
	query := fmt.Sprintf(`
		SELECT id, employee_id, session_id, attended
		FROM %s WHERE employee_id = $1`, r.table("employee_trainings"))
	rows, err := r.q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list employee trainings: %w", err)
	}
	defer rows.Close()

	var list []*entity.EmployeeTraining
	for rows.Next() {
		var et entity.EmployeeTraining
		if err := rows.Scan(&et.ID, &et.EmployeeID, &et.SessionID, &et.Attended); err != nil {
			return nil, fmt.Errorf("scan employee training: %w", err)
		}
		list = append(list, &et)
	}
	return list, rows.Err()
}
