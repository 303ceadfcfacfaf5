package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Talento-api/internal/domain"
	"github.com/jhoicas/Talento-api/internal/domain/entity"
	"github.com/jhoicas/Talento-api/internal/domain/repository"
)

var _ repository.SalaryRepository = (*SalaryRepo)(nil)

// SalaryRepo acceso a la tabla salary_history de un tenant.
type SalaryRepo struct {
	scoped
}

// Create persiste una entrada del historial salarial.
func (r *SalaryRepo) Create(ctx context.Context, s *entity.SalaryRecord) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, employee_id, amount, currency, effective_date)
		VALUES ($1, $2, $3, $4, $5)`, r.table("salary_history"))
	_, err := r.q.Exec(ctx, query, s.ID, s.EmployeeID, s.Amount, s.Currency, s.EffectiveDate)
	if err != nil {
		return fmt.Errorf("insert salary record: %w", err)
	}
	return nil
}

// ListByEmployee historial salarial de un empleado, más reciente primero.
func (r *SalaryRepo) ListByEmployee(ctx context.Context, employeeID string) ([]*entity.SalaryRecord, error) {
	query := fmt.Sprintf(`
		SELECT id, employee_id, amount, currency, effective_date
		FROM %s WHERE employee_id = $1 ORDER BY effective_date DESC`, r.table("salary_history"))
	rows, err := r.q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list salary history: %w", err)
	}
	defer rows.Close()

	var list []*entity.SalaryRecord
	for rows.Next() {
		var s entity.SalaryRecord
		if err := rows.Scan(&s.ID, &s.EmployeeID, &s.Amount, &s.Currency, &s.EffectiveDate); err != nil {
			return nil, fmt.Errorf("scan salary record: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

var _ repository.PayslipRepository = (*PayslipRepo)(nil)

// PayslipRepo acceso a la tabla payslips de un tenant.
type PayslipRepo struct {
	scoped
}

// Create persiste un payslip.
func (r *PayslipRepo) Create(ctx context.Context, p *entity.Payslip) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, employee_id, period_start, period_end, gross_pay, deductions, net_pay, payment_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`, r.table("payslips"))
	_, err := r.q.Exec(ctx, query,
		p.ID, p.EmployeeID, p.PeriodStart, p.PeriodEnd,
		p.GrossPay, p.Deductions, p.NetPay, p.PaymentDate,
	)
	if err != nil {
		return fmt.Errorf("insert payslip: %w", err)
	}
	return nil
}

// GetByID obtiene un payslip; (nil, nil) si no existe.
func (r *PayslipRepo) GetByID(ctx context.Context, id string) (*entity.Payslip, error) {
	query := fmt.Sprintf(`
		SELECT id, employee_id, period_start, period_end, gross_pay, deductions, net_pay, payment_date
		FROM %s WHERE id = $1`, r.table("payslips"))
	var p entity.Payslip
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.EmployeeID, &p.PeriodStart, &p.PeriodEnd,
		&p.GrossPay, &p.Deductions, &p.NetPay, &p.PaymentDate,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payslip: %w", err)
	}
	return &p, nil
}

// List devuelve payslips con paginación, periodo más reciente primero.
func (r *PayslipRepo) List(ctx context.Context, limit, offset int) ([]*entity.Payslip, error) {
	query := fmt.Sprintf(`
		SELECT id, employee_id, period_start, period_end, gross_pay, deductions, net_pay, payment_date
		FROM %s ORDER BY period_start DESC LIMIT $1 OFFSET $2`, r.table("payslips"))
	return r.queryList(ctx, query, limit, offset)
}

// ListByEmployee payslips de un empleado.
func (r *PayslipRepo) ListByEmployee(ctx context.Context, employeeID string) ([]*entity.Payslip, error) {
	query := fmt.Sprintf(`
		SELECT id, employee_id, period_start, period_end, gross_pay, deductions, net_pay, payment_date
		FROM %s WHERE employee_id = $1 ORDER BY period_start DESC`, r.table("payslips"))
	return r.queryList(ctx, query, employeeID)
}

func (r *PayslipRepo) queryList(ctx context.Context, query string, args ...any) ([]*entity.Payslip, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list payslips: %w", err)
	}
	defer rows.Close()

	var list []*entity.Payslip
	for rows.Next() {
		var p entity.Payslip
		if err := rows.Scan(&p.ID, &p.EmployeeID, &p.PeriodStart, &p.PeriodEnd,
			&p.GrossPay, &p.Deductions, &p.NetPay, &p.PaymentDate); err != nil {
			return nil, fmt.Errorf("scan payslip: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

var _ repository.OvertimeRepository = (*OvertimeRepo)(nil)

// OvertimeRepo acceso a la tabla overtime de un tenant.
type OvertimeRepo struct {
	scoped
}

// Create persiste un registro de horas extra.
func (r *OvertimeRepo) Create(ctx context.Context, o *entity.Overtime) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, employee_id, date, hours, rate_multiplier, approved)
		VALUES ($1, $2, $3, $4, $5, $6)`, r.table("overtime"))
	_, err := r.q.Exec(ctx, query,
		o.ID, o.EmployeeID, o.Date, o.Hours, o.RateMultiplier, o.Approved,
	)
	if err != nil {
		return fmt.Errorf("insert overtime: %w", err)
	}
	return nil
}

// List devuelve registros de horas extra con paginación.
func (r *OvertimeRepo) List(ctx context.Context, limit, offset int) ([]*entity.Overtime, error) {
	query := fmt.Sprintf(`
		SELECT id, employee_id, date, hours, rate_multiplier, approved
		FROM %s ORDER BY date DESC LIMIT $1 OFFSET $2`, r.table("overtime"))
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list overtime: %w", err)
	}
	defer rows.Close()

	var list []*entity.Overtime
	for rows.Next() {
		var o entity.Overtime
		if err := rows.Scan(&o.ID, &o.EmployeeID, &o.Date, &o.Hours, &o.RateMultiplier, &o.Approved); err != nil {
			return nil, fmt.Errorf("scan overtime: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// Approve marca un registro de horas extra como aprobado.
func (r *OvertimeRepo) Approve(ctx context.Context, id string) error {
	query := fmt.Sprintf(`UPDATE %s SET approved = true WHERE id = $1`, r.table("overtime"))
	cmd, err := r.q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("approve overtime: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
