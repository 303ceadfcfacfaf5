package entity

import "time"

// Estados de un tenant (deben coincidir con el CHECK de la tabla tenants).
const (
	TenantStatusActive    = "active"
	TenantStatusInactive  = "inactive"
	TenantStatusSuspended = "suspended"
)

// Tenant representa una organización cliente del sistema. Cada tenant tiene su
// propio schema PostgreSQL (campo Schema, derivado del ID, único e inmutable).
type Tenant struct {
	ID        string
	Name      string
	Schema    string // talento_<id con guiones como "_">; nunca se regenera
	Status    string // active, inactive, suspended
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // soft delete; el schema físico nunca se elimina
}
