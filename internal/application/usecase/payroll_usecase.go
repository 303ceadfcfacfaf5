package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Talento-api/internal/application/dto"
	"github.com/jhoicas/Talento-api/internal/domain"
	"github.com/jhoicas/Talento-api/internal/domain/entity"
	"github.com/jhoicas/Talento-api/internal/domain/repository"
)

// defaultOvertimeRate multiplicador aplicado cuando la petición no trae uno.
var defaultOvertimeRate = decimal.NewFromFloat(1.5)

// PayrollUseCase reglas de negocio de nómina: payslips y horas extra.
// Los montos se manejan siempre como decimal, nunca float.
type PayrollUseCase struct{}

// NewPayrollUseCase construye el caso de uso.
func NewPayrollUseCase() *PayrollUseCase {
	return &PayrollUseCase{}
}

// CreatePayslip registra un payslip. NetPay se calcula aquí: gross - deductions.
// El empleado debe existir en el tenant.
func (uc *PayrollUseCase) CreatePayslip(ctx context.Context, h repository.TenantHandle, in dto.CreatePayslipRequest) (*dto.PayslipResponse, error) {
	if in.EmployeeID == "" || in.PeriodStart.IsZero() || in.PeriodEnd.IsZero() {
		return nil, domain.ErrValidation
	}
	if in.PeriodEnd.Before(in.PeriodStart) {
		return nil, fmt.Errorf("%w: period_end anterior a period_start", domain.ErrValidation)
	}

	gross, err := decimal.NewFromString(in.GrossPay)
	if err != nil || gross.IsNegative() {
		return nil, fmt.Errorf("%w: gross_pay inválido", domain.ErrValidation)
	}
	deductions := decimal.Zero
	if in.Deductions != "" {
		deductions, err = decimal.NewFromString(in.Deductions)
		if err != nil || deductions.IsNegative() {
			return nil, fmt.Errorf("%w: deductions inválido", domain.ErrValidation)
		}
	}
	if deductions.GreaterThan(gross) {
		return nil, fmt.Errorf("%w: deductions mayor que gross_pay", domain.ErrValidation)
	}

	emp, err := h.Employees().GetByID(ctx, in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}

	p := &entity.Payslip{
		ID:          uuid.NewString(),
		EmployeeID:  in.EmployeeID,
		PeriodStart: in.PeriodStart,
		PeriodEnd:   in.PeriodEnd,
		GrossPay:    gross,
		Deductions:  deductions,
		NetPay:      gross.Sub(deductions),
		PaymentDate: in.PaymentDate,
	}
	if err := h.Payslips().Create(ctx, p); err != nil {
		return nil, err
	}
	return payslipToResponse(p), nil
}

// GetPayslip obtiene un payslip; (nil, nil) si no existe.
func (uc *PayrollUseCase) GetPayslip(ctx context.Context, h repository.TenantHandle, id string) (*dto.PayslipResponse, error) {
	p, err := h.Payslips().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return payslipToResponse(p), nil
}

// ListPayslips lista payslips con paginación.
func (uc *PayrollUseCase) ListPayslips(ctx context.Context, h repository.TenantHandle, limit, offset int) ([]dto.PayslipResponse, error) {
	list, err := h.Payslips().List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PayslipResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *payslipToResponse(p))
	}
	return items, nil
}

// CreateOvertime registra horas extra de un empleado.
func (uc *PayrollUseCase) CreateOvertime(ctx context.Context, h repository.TenantHandle, in dto.CreateOvertimeRequest) (*dto.OvertimeResponse, error) {
	if in.EmployeeID == "" || in.Date.IsZero() {
		return nil, domain.ErrValidation
	}
	hours, err := decimal.NewFromString(in.Hours)
	if err != nil || !hours.IsPositive() {
		return nil, fmt.Errorf("%w: hours inválido", domain.ErrValidation)
	}
	rate := defaultOvertimeRate
	if in.RateMultiplier != "" {
		rate, err = decimal.NewFromString(in.RateMultiplier)
		if err != nil || !rate.IsPositive() {
			return nil, fmt.Errorf("%w: rate_multiplier inválido", domain.ErrValidation)
		}
	}

	o := &entity.Overtime{
		ID:             uuid.NewString(),
		EmployeeID:     in.EmployeeID,
		Date:           in.Date,
		Hours:          hours,
		RateMultiplier: rate,
		Approved:       false,
	}
	if err := h.Overtime().Create(ctx, o); err != nil {
		return nil, err
	}
	return overtimeToResponse(o), nil
}

// ListOvertime lista registros de horas extra con paginación.
func (uc *PayrollUseCase) ListOvertime(ctx context.Context, h repository.TenantHandle, limit, offset int) ([]dto.OvertimeResponse, error) {
	list, err := h.Overtime().List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OvertimeResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *overtimeToResponse(o))
	}
	return items, nil
}

// ApproveOvertime marca un registro como aprobado.
func (uc *PayrollUseCase) ApproveOvertime(ctx context.Context, h repository.TenantHandle, id string) error {
	return h.Overtime().Approve(ctx, id)
}

func payslipToResponse(p *entity.Payslip) *dto.PayslipResponse {
	return &dto.PayslipResponse{
		ID:          p.ID,
		EmployeeID:  p.EmployeeID,
		PeriodStart: p.PeriodStart,
		PeriodEnd:   p.PeriodEnd,
		GrossPay:    p.GrossPay.String(),
		Deductions:  p.Deductions.String(),
		NetPay:      p.NetPay.String(),
		PaymentDate: p.PaymentDate,
	}
}

func overtimeToResponse(o *entity.Overtime) *dto.OvertimeResponse {
	return &dto.OvertimeResponse{
		ID:             o.ID,
		EmployeeID:     o.EmployeeID,
		Date:           o.Date,
		Hours:          o.Hours.String(),
		RateMultiplier: o.RateMultiplier.String(),
		Approved:       o.Approved,
	}
}
