package entity

import "time"

// Estados de asistencia diaria.
const (
	AttendanceStatusPresent = "present"
	AttendanceStatusAbsent  = "absent"
	AttendanceStatusLate    = "late"
	AttendanceStatusHalfDay = "half_day"
)

// AttendanceRecord registro de asistencia de un día.
type AttendanceRecord struct {
	ID         string
	EmployeeID string
	Date       time.Time
	ClockIn    *time.Time
	ClockOut   *time.Time
	Status     string
}

// PerformanceReview evaluación de desempeño. ReviewerID referencia a
// public.users (el revisor es un usuario del catálogo, no necesariamente un
// empleado del tenant).
type PerformanceReview struct {
	ID         string
	EmployeeID string
	ReviewerID *string
	ReviewDate time.Time
	Score      int // 1..10
	Comments   string
}
