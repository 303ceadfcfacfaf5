package entity

import "time"

// TrainingSession sesión de capacitación ofrecida dentro del tenant.
type TrainingSession struct {
	ID          string
	Title       string
	Description string
	StartDate   time.Time
	EndDate     time.Time
}

// EmployeeTraining inscripción de un empleado en una sesión.
type EmployeeTraining struct {
	ID         string
	EmployeeID string
	SessionID  string
	Attended   bool
}
