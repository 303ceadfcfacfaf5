package entity

import "time"

// Estados de un empleado.
const (
	EmployeeStatusActive     = "active"
	EmployeeStatusInactive   = "inactive"
	EmployeeStatusOnLeave    = "on_leave"
	EmployeeStatusTerminated = "terminated"
)

// Employee pertenece al schema de un tenant. PublicUserID referencia al usuario
// del catálogo compartido (FK cross-schema hacia public.users); todas las demás
// tablas del tenant cuelgan de esta vía employee_id.
type Employee struct {
	ID             string
	PublicUserID   *string // nil mientras el empleado no tenga cuenta
	EmployeeNumber string  // único dentro del tenant
	HireDate       time.Time
	DepartmentID   *string
	PositionID     *string
	Status         string
	Email          string
	Phone          string
	Address        string
}
