package repository

import "context"

// TenantHandle expone los accesores de tablas ya ligados al schema de un
// tenant. El código de negocio nunca construye nombres calificados por schema:
// obtiene el handle por el resolver y opera sobre sus repositorios. Un handle
// del tenant A es estructuralmente incapaz de tocar las tablas del tenant B
// (el schema es un campo privado de la implementación, fijado al resolver).
type TenantHandle interface {
	TenantID() string
	Schema() string

	Departments() DepartmentRepository
	Positions() PositionRepository
	Employees() EmployeeRepository
	SalaryHistory() SalaryRepository
	Payslips() PayslipRepository
	Overtime() OvertimeRepository
	LeaveTypes() LeaveTypeRepository
	LeaveAllocations() LeaveAllocationRepository
	LeaveRequests() LeaveRequestRepository
	Attendance() AttendanceRepository
	PerformanceReviews() PerformanceReviewRepository
	Documents() DocumentRepository
	TrainingSessions() TrainingSessionRepository
	EmployeeTrainings() EmployeeTrainingRepository
	Notifications() NotificationRepository
	Terminations() TerminationRepository
}

// TenantResolver mapea un identificador de tenant a su handle. Falla cerrado:
// identificador vacío -> ErrValidation; tenant inexistente, no activo o sin
// schema aprovisionado -> ErrTenantNotFound. Nunca cae a un schema por defecto.
//
// Invalidate descarta el mapeo cacheado de un tenant; debe llamarse tras
// cualquier cambio de estado que lo saque de circulación (suspensión, soft
// delete) para que la siguiente resolución relea el catálogo.
type TenantResolver interface {
	Resolve(ctx context.Context, tenantID string) (TenantHandle, error)
	Invalidate(tenantID string)
}
