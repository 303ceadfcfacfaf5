package entity

import "time"

// Roles válidos dentro de un tenant (tabla tenant_users).
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

// User representa un usuario global del catálogo. Un usuario puede pertenecer a
// cero o más tenants vía Membership; el email es único a nivel de sistema.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

// Membership vincula un usuario con un tenant y su rol. Composite-unique por
// (UserID, TenantID): a lo sumo una fila por par.
type Membership struct {
	ID        string
	UserID    string
	TenantID  string
	Role      string // admin, manager, employee
	CreatedAt time.Time
	UpdatedAt time.Time
}
