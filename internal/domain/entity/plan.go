package entity

import "time"

// DefaultPlanName plan asignado por defecto en el onboarding.
const DefaultPlanName = "Basic"

// Estados de una suscripción (CHECK de la tabla subscriptions).
const (
	SubscriptionStatusActive   = "active"
	SubscriptionStatusPastDue  = "past_due"
	SubscriptionStatusCanceled = "canceled"
	SubscriptionStatusTrialing = "trialing"
)

// Estados de un pago (CHECK de la tabla payments).
const (
	PaymentStatusPaid    = "paid"
	PaymentStatusPending = "pending"
	PaymentStatusFailed  = "failed"
)

// Plan oferta comercial con precio mensual y anual (en centavos).
type Plan struct {
	ID           string
	Name         string
	PriceMonthly int
	PriceYearly  int
	Features     string // JSON serializado como texto
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Subscription vincula un tenant con un plan durante una ventana de tiempo.
// Invariante: un tenant tiene a lo sumo una suscripción en estado active o
// trialing a la vez.
type Subscription struct {
	ID        string
	TenantID  string
	PlanID    string
	Status    string // active, past_due, canceled, trialing
	StartDate time.Time
	EndDate   time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Payment registra un cobro asociado a una suscripción.
type Payment struct {
	ID             string
	SubscriptionID string
	Amount         int // centavos
	Status         string
	PaidAt         *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
