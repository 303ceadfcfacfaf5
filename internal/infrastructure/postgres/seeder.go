package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Talento-api/internal/domain/entity"
	"github.com/jhoicas/Talento-api/internal/domain/repository"
)

// Datos mínimos que todo tenant recién aprovisionado recibe.
var defaultLeaveTypes = []struct {
	name        string
	description string
}{
	{"Vacation", "Annual paid vacation"},
	{"Sick Leave", "Paid sick leave"},
	{"Unpaid Leave", "Leave without pay"},
}

// BaselineSeeder inserta los datos iniciales de un tenant: el departamento
// General y el catálogo de tipos de ausencia.
type BaselineSeeder struct{}

// NewBaselineSeeder un seeder sin estado.
func NewBaselineSeeder() *BaselineSeeder {
	return &BaselineSeeder{}
}

// SeedBaseline es idempotente a nivel de onboarding: solo se invoca una vez
// por tenant, inmediatamente después de aprovisionar el schema.
func (s *BaselineSeeder) SeedBaseline(ctx context.Context, h repository.TenantHandle) error {
	dept := &entity.Department{
		ID:          uuid.NewString(),
		Name:        "General",
		Description: "Default department",
	}
	if err := h.Departments().Create(ctx, dept); err != nil {
		return fmt.Errorf("seed department: %w", err)
	}

	for _, lt := range defaultLeaveTypes {
		t := &entity.LeaveType{
			ID:          uuid.NewString(),
			Name:        lt.name,
			Description: lt.description,
		}
		if err := h.LeaveTypes().Create(ctx, t); err != nil {
			return fmt.Errorf("seed leave type %q: %w", lt.name, err)
		}
	}
	return nil
}

// SeedDemoEmployee crea un empleado de ejemplo ligado al departamento General.
// Lo usa únicamente el comando de seed para entornos de desarrollo.
func (s *BaselineSeeder) SeedDemoEmployee(ctx context.Context, h repository.TenantHandle) (*entity.Employee, error) {
	depts, err := h.Departments().List(ctx, 1, 0)
	if err != nil {
		return nil, err
	}
	var deptID *string
	if len(depts) > 0 {
		deptID = &depts[0].ID
	}

	emp := &entity.Employee{
		ID:             uuid.NewString(),
		EmployeeNumber: "EMP-0001",
		Email:          "ana.garcia@example.com",
		DepartmentID:   deptID,
		HireDate:       time.Now().UTC(),
		Status:         entity.EmployeeStatusActive,
	}
	if err := h.Employees().Create(ctx, emp); err != nil {
		return nil, fmt.Errorf("seed employee: %w", err)
	}
	return emp, nil
}
