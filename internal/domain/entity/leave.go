package entity

import "time"

// Estados de una solicitud de ausencia.
const (
	LeaveStatusPending  = "pending"
	LeaveStatusApproved = "approved"
	LeaveStatusRejected = "rejected"
	LeaveStatusCanceled = "canceled"
)

// LeaveType catálogo de tipos de ausencia del tenant (vacaciones, enfermedad...).
type LeaveType struct {
	ID          string
	Name        string
	Description string
}

// LeaveAllocation días asignados a un empleado por tipo de ausencia.
type LeaveAllocation struct {
	ID          string
	EmployeeID  string
	LeaveTypeID string
	TotalDays   int
	AllocatedOn time.Time
}

// LeaveRequest solicitud de ausencia de un empleado.
type LeaveRequest struct {
	ID          string
	EmployeeID  string
	LeaveTypeID string
	StartDate   time.Time
	EndDate     time.Time
	Reason      string
	Status      string // pending, approved, rejected, canceled
	RequestedAt time.Time
}
