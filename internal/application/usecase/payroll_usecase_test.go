package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Talento-api/internal/application/dto"
	"github.com/jhoicas/Talento-api/internal/application/usecase"
	"github.com/jhoicas/Talento-api/internal/domain"
	"github.com/jhoicas/Talento-api/internal/domain/entity"
	"github.com/jhoicas/Talento-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes del handle de tenant
// ──────────────────────────────────────────────────────────────────────────────

type memEmployees struct{ byID map[string]*entity.Employee }

func (m *memEmployees) Create(_ context.Context, e *entity.Employee) error {
	m.byID[e.ID] = e
	return nil
}
func (m *memEmployees) GetByID(_ context.Context, id string) (*entity.Employee, error) {
	return m.byID[id], nil
}
func (m *memEmployees) GetByNumber(_ context.Context, _ string) (*entity.Employee, error) {
	return nil, nil
}
func (m *memEmployees) List(_ context.Context, _, _ int) ([]*entity.Employee, error) {
	return nil, nil
}
func (m *memEmployees) UpdateStatus(_ context.Context, id, status string) error {
	e, ok := m.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	e.Status = status
	return nil
}

type memPayslips struct{ created []*entity.Payslip }

func (m *memPayslips) Create(_ context.Context, p *entity.Payslip) error {
	m.created = append(m.created, p)
	return nil
}
func (m *memPayslips) GetByID(_ context.Context, id string) (*entity.Payslip, error) {
	for _, p := range m.created {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}
func (m *memPayslips) List(_ context.Context, _, _ int) ([]*entity.Payslip, error) {
	return m.created, nil
}
func (m *memPayslips) ListByEmployee(_ context.Context, _ string) ([]*entity.Payslip, error) {
	return m.created, nil
}

type memOvertime struct{ created []*entity.Overtime }

func (m *memOvertime) Create(_ context.Context, o *entity.Overtime) error {
	m.created = append(m.created, o)
	return nil
}
func (m *memOvertime) List(_ context.Context, _, _ int) ([]*entity.Overtime, error) {
	return m.created, nil
}
func (m *memOvertime) Approve(_ context.Context, id string) error {
	for _, o := range m.created {
		if o.ID == id {
			o.Approved = true
			return nil
		}
	}
	return domain.ErrNotFound
}

// payrollHandle satisface repository.TenantHandle exponiendo solo lo que usa
// el caso de uso de nómina.
type payrollHandle struct {
	employees *memEmployees
	payslips  *memPayslips
	overtime  *memOvertime
}

func newPayrollHandle() *payrollHandle {
	return &payrollHandle{
		employees: &memEmployees{byID: map[string]*entity.Employee{}},
		payslips:  &memPayslips{},
		overtime:  &memOvertime{},
	}
}

func (h *payrollHandle) TenantID() string { return "acme" }
func (h *payrollHandle) Schema() string   { return "talento_acme" }

func (h *payrollHandle) Employees() repository.EmployeeRepository { return h.employees }
func (h *payrollHandle) Payslips() repository.PayslipRepository   { return h.payslips }
func (h *payrollHandle) Overtime() repository.OvertimeRepository  { return h.overtime }

func (h *payrollHandle) Departments() repository.DepartmentRepository               { return nil }
func (h *payrollHandle) Positions() repository.PositionRepository                   { return nil }
func (h *payrollHandle) SalaryHistory() repository.SalaryRepository                 { return nil }
func (h *payrollHandle) LeaveTypes() repository.LeaveTypeRepository                 { return nil }
func (h *payrollHandle) LeaveAllocations() repository.LeaveAllocationRepository     { return nil }
func (h *payrollHandle) LeaveRequests() repository.LeaveRequestRepository           { return nil }
func (h *payrollHandle) Attendance() repository.AttendanceRepository                { return nil }
func (h *payrollHandle) PerformanceReviews() repository.PerformanceReviewRepository { return nil }
func (h *payrollHandle) Documents() repository.DocumentRepository                   { return nil }
func (h *payrollHandle) TrainingSessions() repository.TrainingSessionRepository     { return nil }
func (h *payrollHandle) EmployeeTrainings() repository.EmployeeTrainingRepository   { return nil }
func (h *payrollHandle) Notifications() repository.NotificationRepository           { return nil }
func (h *payrollHandle) Terminations() repository.TerminationRepository             { return nil }

func payslipRequest(employeeID string) dto.CreatePayslipRequest {
	return dto.CreatePayslipRequest{
		EmployeeID:  employeeID,
		PeriodStart: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		GrossPay:    "2500.00",
		Deductions:  "312.50",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Payslips
// ──────────────────────────────────────────────────────────────────────────────

func TestCreatePayslip_CalculaNetoConDecimales(t *testing.T) {
	h := newPayrollHandle()
	h.employees.byID["emp-1"] = &entity.Employee{ID: "emp-1"}
	uc := usecase.NewPayrollUseCase()

	out, err := uc.CreatePayslip(context.Background(), h, payslipRequest("emp-1"))
	require.NoError(t, err)

	assert.Equal(t, "2187.5", out.NetPay, "neto = bruto - deducciones, sin redondeo flotante")
	require.Len(t, h.payslips.created, 1)
	assert.True(t, h.payslips.created[0].NetPay.Equal(
		h.payslips.created[0].GrossPay.Sub(h.payslips.created[0].Deductions)))
}

func TestCreatePayslip_EmpleadoInexistente(t *testing.T) {
	uc := usecase.NewPayrollUseCase()
	_, err := uc.CreatePayslip(context.Background(), newPayrollHandle(), payslipRequest("fantasma"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreatePayslip_Validaciones(t *testing.T) {
	h := newPayrollHandle()
	h.employees.byID["emp-1"] = &entity.Employee{ID: "emp-1"}
	uc := usecase.NewPayrollUseCase()

	cases := []struct {
		name   string
		mutate func(*dto.CreatePayslipRequest)
	}{
		{"bruto no numérico", func(r *dto.CreatePayslipRequest) { r.GrossPay = "dos mil" }},
		{"bruto negativo", func(r *dto.CreatePayslipRequest) { r.GrossPay = "-10" }},
		{"deducciones mayores que el bruto", func(r *dto.CreatePayslipRequest) { r.Deductions = "9999" }},
		{"periodo invertido", func(r *dto.CreatePayslipRequest) {
			r.PeriodStart, r.PeriodEnd = r.PeriodEnd, r.PeriodStart
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := payslipRequest("emp-1")
			tc.mutate(&req)
			_, err := uc.CreatePayslip(context.Background(), h, req)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
	assert.Empty(t, h.payslips.created, "ninguna petición inválida debe persistir")
}

// ──────────────────────────────────────────────────────────────────────────────
// Horas extra
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateOvertime_MultiplicadorPorDefecto(t *testing.T) {
	h := newPayrollHandle()
	uc := usecase.NewPayrollUseCase()

	out, err := uc.CreateOvertime(context.Background(), h, dto.CreateOvertimeRequest{
		EmployeeID: "emp-1",
		Date:       time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		Hours:      "3.5",
	})
	require.NoError(t, err)

	assert.Equal(t, "1.5", out.RateMultiplier, "sin multiplicador explícito aplica 1.5")
	assert.False(t, out.Approved, "las horas extra nacen sin aprobar")
}

func TestApproveOvertime(t *testing.T) {
	h := newPayrollHandle()
	uc := usecase.NewPayrollUseCase()

	out, err := uc.CreateOvertime(context.Background(), h, dto.CreateOvertimeRequest{
		EmployeeID: "emp-1",
		Date:       time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		Hours:      "2",
	})
	require.NoError(t, err)

	require.NoError(t, uc.ApproveOvertime(context.Background(), h, out.ID))
	assert.True(t, h.overtime.created[0].Approved)

	assert.ErrorIs(t, uc.ApproveOvertime(context.Background(), h, "fantasma"), domain.ErrNotFound)
}
