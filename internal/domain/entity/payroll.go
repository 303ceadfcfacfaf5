package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryRecord entrada del historial salarial de un empleado.
type SalaryRecord struct {
	ID            string
	EmployeeID    string
	Amount        decimal.Decimal
	Currency      string // ISO 4217, default USD
	EffectiveDate time.Time
}

// Payslip comprobante de nómina por periodo.
type Payslip struct {
	ID          string
	EmployeeID  string
	PeriodStart time.Time
	PeriodEnd   time.Time
	GrossPay    decimal.Decimal
	Deductions  decimal.Decimal
	NetPay      decimal.Decimal
	PaymentDate *time.Time
}

// Overtime horas extra registradas en un día.
type Overtime struct {
	ID             string
	EmployeeID     string
	Date           time.Time
	Hours          decimal.Decimal
	RateMultiplier decimal.Decimal // default 1.5
	Approved       bool
}
