package dto

import "time"

// OnboardTenantRequest entrada del alta de un tenant con su usuario admin.
// TenantID es opcional: si falta, el alta genera un UUID; si viene, debe
// cumplir la allow-list de identificadores de schema.
type OnboardTenantRequest struct {
	TenantID      string `json:"tenant_id" validate:"omitempty,min=1,max=48"`
	Name          string `json:"name" validate:"required,min=1,max=200"`
	AdminEmail    string `json:"admin_email" validate:"required,email"`
	AdminName     string `json:"admin_name" validate:"required,min=1,max=200"`
	AdminPassword string `json:"admin_password" validate:"required,min=8"`
	PlanName      string `json:"plan_name" validate:"omitempty,min=1,max=100"`
}

// OnboardTenantResponse salida del alta de un tenant.
type OnboardTenantResponse struct {
	TenantID     string    `json:"tenant_id"`
	Name         string    `json:"name"`
	Schema       string    `json:"schema"`
	Status       string    `json:"status"`
	AdminUserID  string    `json:"admin_user_id"`
	Plan         string    `json:"plan"`
	Subscription string    `json:"subscription_status"`
	CreatedAt    time.Time `json:"created_at"`
}

// TenantResponse salida de un tenant del catálogo.
type TenantResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Schema    string    `json:"schema"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TenantListResponse lista paginada de tenants.
type TenantListResponse struct {
	Items []TenantResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
