package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Talento-api/internal/application/dto"
	"github.com/jhoicas/Talento-api/internal/domain"
	"github.com/jhoicas/Talento-api/internal/domain/entity"
	"github.com/jhoicas/Talento-api/internal/domain/repository"
)

// LeaveUseCase reglas de negocio de ausencias.
type LeaveUseCase struct{}

// NewLeaveUseCase construye el caso de uso.
func NewLeaveUseCase() *LeaveUseCase {
	return &LeaveUseCase{}
}

// CreateRequest registra una solicitud de ausencia en estado pending.
func (uc *LeaveUseCase) CreateRequest(ctx context.Context, h repository.TenantHandle, in dto.CreateLeaveRequestRequest) (*dto.LeaveRequestResponse, error) {
	if in.EmployeeID == "" || in.LeaveTypeID == "" || in.StartDate.IsZero() || in.EndDate.IsZero() {
		return nil, domain.ErrValidation
	}
	if in.EndDate.Before(in.StartDate) {
		return nil, fmt.Errorf("%w: end_date anterior a start_date", domain.ErrValidation)
	}

	lr := &entity.LeaveRequest{
		ID:          uuid.NewString(),
		EmployeeID:  in.EmployeeID,
		LeaveTypeID: in.LeaveTypeID,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Reason:      in.Reason,
		Status:      entity.LeaveStatusPending,
		RequestedAt: time.Now().UTC(),
	}
	if err := h.LeaveRequests().Create(ctx, lr); err != nil {
		return nil, err
	}
	return leaveRequestToResponse(lr), nil
}

// ListRequests lista solicitudes con paginación.
func (uc *LeaveUseCase) ListRequests(ctx context.Context, h repository.TenantHandle, limit, offset int) ([]dto.LeaveRequestResponse, error) {
	list, err := h.LeaveRequests().List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LeaveRequestResponse, 0, len(list))
	for _, lr := range list {
		items = append(items, *leaveRequestToResponse(lr))
	}
	return items, nil
}

// UpdateRequestStatus transiciona una solicitud (approved, rejected, canceled).
func (uc *LeaveUseCase) UpdateRequestStatus(ctx context.Context, h repository.TenantHandle, id, status string) error {
	switch status {
	case entity.LeaveStatusApproved, entity.LeaveStatusRejected, entity.LeaveStatusCanceled:
	default:
		return domain.ErrValidation
	}
	return h.LeaveRequests().UpdateStatus(ctx, id, status)
}

// ListTypes catálogo de tipos de ausencia del tenant.
func (uc *LeaveUseCase) ListTypes(ctx context.Context, h repository.TenantHandle) ([]*entity.LeaveType, error) {
	return h.LeaveTypes().List(ctx)
}

func leaveRequestToResponse(lr *entity.LeaveRequest) *dto.LeaveRequestResponse {
	return &dto.LeaveRequestResponse{
		ID:          lr.ID,
		EmployeeID:  lr.EmployeeID,
		LeaveTypeID: lr.LeaveTypeID,
		StartDate:   lr.StartDate,
		EndDate:     lr.EndDate,
		Reason:      lr.Reason,
		Status:      lr.Status,
		RequestedAt: lr.RequestedAt,
	}
}
