package dto

import "time"

// CreateDepartmentRequest entrada para crear un departamento.
type CreateDepartmentRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description"`
}

// DepartmentResponse salida de un departamento.
type DepartmentResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CreateEmployeeRequest entrada para dar de alta un empleado.
type CreateEmployeeRequest struct {
	EmployeeNumber string    `json:"employee_number" validate:"required,min=1,max=50"`
	HireDate       time.Time `json:"hire_date" validate:"required"`
	DepartmentID   *string   `json:"department_id"`
	PositionID     *string   `json:"position_id"`
	Email          string    `json:"email" validate:"omitempty,email"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
}

// EmployeeResponse salida de un empleado.
type EmployeeResponse struct {
	ID             string    `json:"id"`
	EmployeeNumber string    `json:"employee_number"`
	HireDate       time.Time `json:"hire_date"`
	DepartmentID   *string   `json:"department_id,omitempty"`
	PositionID     *string   `json:"position_id,omitempty"`
	Status         string    `json:"status"`
	Email          string    `json:"email,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	Address        string    `json:"address,omitempty"`
}

// EmployeeListResponse lista paginada de empleados.
type EmployeeListResponse struct {
	Items []EmployeeResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// CreatePayslipRequest entrada para registrar un payslip. Los montos van como
// string decimal para no perder precisión en JSON.
type CreatePayslipRequest struct {
	EmployeeID  string     `json:"employee_id" validate:"required"`
	PeriodStart time.Time  `json:"period_start" validate:"required"`
	PeriodEnd   time.Time  `json:"period_end" validate:"required"`
	GrossPay    string     `json:"gross_pay" validate:"required"`
	Deductions  string     `json:"deductions"`
	PaymentDate *time.Time `json:"payment_date"`
}

// PayslipResponse salida de un payslip.
type PayslipResponse struct {
	ID          string     `json:"id"`
	EmployeeID  string     `json:"employee_id"`
	PeriodStart time.Time  `json:"period_start"`
	PeriodEnd   time.Time  `json:"period_end"`
	GrossPay    string     `json:"gross_pay"`
	Deductions  string     `json:"deductions"`
	NetPay      string     `json:"net_pay"`
	PaymentDate *time.Time `json:"payment_date,omitempty"`
}

// CreateOvertimeRequest entrada para registrar horas extra.
type CreateOvertimeRequest struct {
	EmployeeID     string    `json:"employee_id" validate:"required"`
	Date           time.Time `json:"date" validate:"required"`
	Hours          string    `json:"hours" validate:"required"`
	RateMultiplier string    `json:"rate_multiplier"`
}

// OvertimeResponse salida de un registro de horas extra.
type OvertimeResponse struct {
	ID             string    `json:"id"`
	EmployeeID     string    `json:"employee_id"`
	Date           time.Time `json:"date"`
	Hours          string    `json:"hours"`
	RateMultiplier string    `json:"rate_multiplier"`
	Approved       bool      `json:"approved"`
}

// CreateLeaveRequestRequest entrada para solicitar una ausencia.
type CreateLeaveRequestRequest struct {
	EmployeeID  string    `json:"employee_id" validate:"required"`
	LeaveTypeID string    `json:"leave_type_id" validate:"required"`
	StartDate   time.Time `json:"start_date" validate:"required"`
	EndDate     time.Time `json:"end_date" validate:"required"`
	Reason      string    `json:"reason"`
}

// LeaveRequestResponse salida de una solicitud de ausencia.
type LeaveRequestResponse struct {
	ID          string    `json:"id"`
	EmployeeID  string    `json:"employee_id"`
	LeaveTypeID string    `json:"leave_type_id"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Reason      string    `json:"reason,omitempty"`
	Status      string    `json:"status"`
	RequestedAt time.Time `json:"requested_at"`
}
