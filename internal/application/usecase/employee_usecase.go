package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/Talento-api/internal/application/dto"
	"github.com/jhoicas/Talento-api/internal/domain"
	"github.com/jhoicas/Talento-api/internal/domain/entity"
	"github.com/jhoicas/Talento-api/internal/domain/repository"
)

// EmployeeUseCase reglas de negocio de empleados.
type EmployeeUseCase struct{}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase() *EmployeeUseCase {
	return &EmployeeUseCase{}
}

// Create da de alta un empleado. Devuelve domain.ErrDuplicate si el número de
// empleado ya existe en el tenant.
func (uc *EmployeeUseCase) Create(ctx context.Context, h repository.TenantHandle, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if strings.TrimSpace(in.EmployeeNumber) == "" || in.HireDate.IsZero() {
		return nil, domain.ErrValidation
	}
	e := &entity.Employee{
		ID:             uuid.NewString(),
		EmployeeNumber: strings.TrimSpace(in.EmployeeNumber),
		HireDate:       in.HireDate,
		DepartmentID:   in.DepartmentID,
		PositionID:     in.PositionID,
		Status:         entity.EmployeeStatusActive,
		Email:          in.Email,
		Phone:          in.Phone,
		Address:        in.Address,
	}
	if err := h.Employees().Create(ctx, e); err != nil {
		return nil, err
	}
	return employeeToResponse(e), nil
}

// GetByID obtiene un empleado; (nil, nil) si no existe.
func (uc *EmployeeUseCase) GetByID(ctx context.Context, h repository.TenantHandle, id string) (*dto.EmployeeResponse, error) {
	e, err := h.Employees().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	return employeeToResponse(e), nil
}

// List lista empleados con paginación.
func (uc *EmployeeUseCase) List(ctx context.Context, h repository.TenantHandle, limit, offset int) (*dto.EmployeeListResponse, error) {
	list, err := h.Employees().List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *employeeToResponse(e))
	}
	return &dto.EmployeeListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// UpdateStatus cambia el estado de un empleado (active, inactive, on_leave, terminated).
func (uc *EmployeeUseCase) UpdateStatus(ctx context.Context, h repository.TenantHandle, id, status string) error {
	switch status {
	case entity.EmployeeStatusActive, entity.EmployeeStatusInactive,
		entity.EmployeeStatusOnLeave, entity.EmployeeStatusTerminated:
	default:
		return domain.ErrValidation
	}
	return h.Employees().UpdateStatus(ctx, id, status)
}

func employeeToResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:             e.ID,
		EmployeeNumber: e.EmployeeNumber,
		HireDate:       e.HireDate,
		DepartmentID:   e.DepartmentID,
		PositionID:     e.PositionID,
		Status:         e.Status,
		Email:          e.Email,
		Phone:          e.Phone,
		Address:        e.Address,
	}
}
