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

// DepartmentUseCase reglas de negocio de departamentos. Sin estado: el handle
// del tenant llega por petición, nunca se retiene entre llamadas.
type DepartmentUseCase struct{}

// NewDepartmentUseCase construye el caso de uso.
func NewDepartmentUseCase() *DepartmentUseCase {
	return &DepartmentUseCase{}
}

// Create crea un departamento en el schema del tenant.
func (uc *DepartmentUseCase) Create(ctx context.Context, h repository.TenantHandle, in dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrValidation
	}
	d := &entity.Department{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
	}
	if err := h.Departments().Create(ctx, d); err != nil {
		return nil, err
	}
	return departmentToResponse(d), nil
}

// GetByID obtiene un departamento; (nil, nil) si no existe.
func (uc *DepartmentUseCase) GetByID(ctx context.Context, h repository.TenantHandle, id string) (*dto.DepartmentResponse, error) {
	d, err := h.Departments().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, nil
	}
	return departmentToResponse(d), nil
}

// List lista departamentos con paginación.
func (uc *DepartmentUseCase) List(ctx context.Context, h repository.TenantHandle, limit, offset int) ([]dto.DepartmentResponse, error) {
	list, err := h.Departments().List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DepartmentResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *departmentToResponse(d))
	}
	return items, nil
}

func departmentToResponse(d *entity.Department) *dto.DepartmentResponse {
	return &dto.DepartmentResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
	}
}
