package postgres

import (
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Talento-api/internal/domain/repository"
)

// Asegura que TenantHandle implementa repository.TenantHandle.
var _ repository.TenantHandle = (*TenantHandle)(nil)

// TenantHandle conjunto de repositorios ligados al schema de un tenant. El
// schema es privado y se fija una sola vez en el resolver: no hay forma de que
// un handle del tenant A dirija una query al schema del tenant B. Ninguna
// operación fija search_path ni retiene conexiones; cada query toma una
// conexión del pool compartido y califica sus tablas.
type TenantHandle struct {
	tenantID string
	schema   string
	q        Querier
}

func newTenantHandle(q Querier, tenantID, schema string) *TenantHandle {
	return &TenantHandle{tenantID: tenantID, schema: schema, q: q}
}

// TenantID identificador del tenant al que está ligado el handle.
func (h *TenantHandle) TenantID() string { return h.tenantID }

// Schema nombre del schema físico del tenant.
func (h *TenantHandle) Schema() string { return h.schema }

func (h *TenantHandle) scoped() scoped { return scoped{q: h.q, schema: h.schema} }

// Accesores de tablas: cada uno devuelve un repositorio ya ligado al schema.

func (h *TenantHandle) Departments() repository.DepartmentRepository {
	return &DepartmentRepo{h.scoped()}
}

func (h *TenantHandle) Positions() repository.PositionRepository {
	return &PositionRepo{h.scoped()}
}

func (h *TenantHandle) Employees() repository.EmployeeRepository {
	return &EmployeeRepo{h.scoped()}
}

func (h *TenantHandle) SalaryHistory() repository.SalaryRepository {
	return &SalaryRepo{h.scoped()}
}

func (h *TenantHandle) Payslips() repository.PayslipRepository {
	return &PayslipRepo{h.scoped()}
}

func (h *TenantHandle) Overtime() repository.OvertimeRepository {
	return &OvertimeRepo{h.scoped()}
}

func (h *TenantHandle) LeaveTypes() repository.LeaveTypeRepository {
	return &LeaveTypeRepo{h.scoped()}
}

func (h *TenantHandle) LeaveAllocations() repository.LeaveAllocationRepository {
	return &LeaveAllocationRepo{h.scoped()}
}

func (h *TenantHandle) LeaveRequests() repository.LeaveRequestRepository {
	return &LeaveRequestRepo{h.scoped()}
}

func (h *TenantHandle) Attendance() repository.AttendanceRepository {
	return &AttendanceRepo{h.scoped()}
}

func (h *TenantHandle) PerformanceReviews() repository.PerformanceReviewRepository {
	return &PerformanceReviewRepo{h.scoped()}
}

func (h *TenantHandle) Documents() repository.DocumentRepository {
	return &DocumentRepo{h.scoped()}
}

func (h *TenantHandle) TrainingSessions() repository.TrainingSessionRepository {
	return &TrainingSessionRepo{h.scoped()}
}

func (h *TenantHandle) EmployeeTrainings() repository.EmployeeTrainingRepository {
	return &EmployeeTrainingRepo{h.scoped()}
}

func (h *TenantHandle) Notifications() repository.NotificationRepository {
	return &NotificationRepo{h.scoped()}
}

func (h *TenantHandle) Terminations() repository.TerminationRepository {
	return &TerminationRepo{h.scoped()}
}

// scoped base de los repositorios tenant-scoped: querier compartido + schema
// validado. table devuelve el nombre calificado y entrecomillado.
type scoped struct {
	q      Querier
	schema string
}

func (s scoped) table(name string) string {
	return pgx.Identifier{s.schema, name}.Sanitize()
}
