package repository

import (
	"context"

	"github.com/jhoicas/Talento-api/internal/domain/entity"
)

// Puertos de las tablas dentro del schema de un tenant. Se obtienen siempre a
// través de un TenantHandle; las implementaciones llevan el schema ligado.

// DepartmentRepository acceso a la tabla departments del tenant.
type DepartmentRepository interface {
	Create(ctx context.Context, d *entity.Department) error
	GetByID(ctx context.Context, id string) (*entity.Department, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Department, error)
}

// PositionRepository acceso a la tabla positions del tenant.
type PositionRepository interface {
	Create(ctx context.Context, p *entity.Position) error
	List(ctx context.Context, limit, offset int) ([]*entity.Position, error)
}

// EmployeeRepository acceso a la tabla employees del tenant.
type EmployeeRepository interface {
	Create(ctx context.Context, e *entity.Employee) error
	GetByID(ctx context.Context, id string) (*entity.Employee, error)
	// GetByNumber devuelve (nil, nil) si el número de empleado no existe.
	GetByNumber(ctx context.Context, number string) (*entity.Employee, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Employee, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

// SalaryRepository acceso a la tabla salary_history del tenant.
type SalaryRepository interface {
	Create(ctx context.Context, s *entity.SalaryRecord) error
	ListByEmployee(ctx context.Context, employeeID string) ([]*entity.SalaryRecord, error)
}

// PayslipRepository acceso a la tabla payslips del tenant.
type PayslipRepository interface {
	Create(ctx context.Context, p *entity.Payslip) error
	GetByID(ctx context.Context, id string) (*entity.Payslip, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Payslip, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]*entity.Payslip, error)
}

// OvertimeRepository acceso a la tabla overtime del tenant.
type OvertimeRepository interface {
	Create(ctx context.Context, o *entity.Overtime) error
	List(ctx context.Context, limit, offset int) ([]*entity.Overtime, error)
	Approve(ctx context.Context, id string) error
}

// LeaveTypeRepository acceso a la tabla leave_types del tenant.
type LeaveTypeRepository interface {
	Create(ctx context.Context, t *entity.LeaveType) error
	List(ctx context.Context) ([]*entity.LeaveType, error)
}

// LeaveAllocationRepository acceso a la tabla leave_allocations del tenant.
type LeaveAllocationRepository interface {
	Create(ctx context.Context, a *entity.LeaveAllocation) error
	ListByEmployee(ctx context.Context, employeeID string) ([]*entity.LeaveAllocation, error)
}

// LeaveRequestRepository acceso a la tabla leave_requests del tenant.
type LeaveRequestRepository interface {
	Create(ctx context.Context, r *entity.LeaveRequest) error
	List(ctx context.Context, limit, offset int) ([]*entity.LeaveRequest, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

// AttendanceRepository acceso a la tabla attendance del tenant.
type AttendanceRepository interface {
	Create(ctx context.Context, a *entity.AttendanceRecord) error
	ListByEmployee(ctx context.Context, employeeID string) ([]*entity.AttendanceRecord, error)
}

// PerformanceReviewRepository acceso a la tabla performance_reviews del tenant.
type PerformanceReviewRepository interface {
	Create(ctx context.Context, r *entity.PerformanceReview) error
	ListByEmployee(ctx context.Context, employeeID string) ([]*entity.PerformanceReview, error)
}

// DocumentRepository acceso a la tabla documents del tenant.
type DocumentRepository interface {
	Create(ctx context.Context, d *entity.Document) error
	ListByEmployee(ctx context.Context, employeeID string) ([]*entity.Document, error)
}

// TrainingSessionRepository acceso a la tabla training_sessions del tenant.
type TrainingSessionRepository interface {
	Create(ctx context.Context, s *entity.TrainingSession) error
	List(ctx context.Context, limit, offset int) ([]*entity.TrainingSession, error)
}

// EmployeeTrainingRepository acceso a la tabla employee_trainings del tenant.
type EmployeeTrainingRepository interface {
	Create(ctx context.Context, e *entity.EmployeeTraining) error
	ListByEmployee(ctx context.Context, employeeID string) ([]*entity.EmployeeTraining, error)
}

// NotificationRepository acceso a la tabla notifications del tenant.
type NotificationRepository interface {
	Create(ctx context.Context, n *entity.Notification) error
	ListByEmployee(ctx context.Context, employeeID string) ([]*entity.Notification, error)
	MarkRead(ctx context.Context, id string) error
}

// TerminationRepository acceso a la tabla terminations del tenant.
type TerminationRepository interface {
	Create(ctx context.Context, t *entity.Termination) error
	GetByEmployee(ctx context.Context, employeeID string) (*entity.Termination, error)
}
