package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Document archivo asociado a un empleado (contratos, certificados...).
type Document struct {
	ID         string
	EmployeeID string
	Title      string
	FileURL    string
	UploadedAt time.Time
}

// Notification aviso dirigido a un empleado.
type Notification struct {
	ID         string
	EmployeeID string
	Message    string
	Read       bool
	CreatedAt  time.Time
}

// Termination cierre de la relación laboral de un empleado.
type Termination struct {
	ID              string
	EmployeeID      string
	Reason          string
	TerminationDate time.Time
	FinalPay        *decimal.Decimal
}
