package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Talento-api/internal/application/dto"
	"github.com/jhoicas/Talento-api/internal/application/usecase"
	"github.com/jhoicas/Talento-api/internal/domain"
)

// LeaveHandler maneja las peticiones HTTP de ausencias.
type LeaveHandler struct {
	uc *usecase.LeaveUseCase
}

// NewLeaveHandler construye el handler inyectando el caso de uso.
func NewLeaveHandler(uc *usecase.LeaveUseCase) *LeaveHandler {
	return &LeaveHandler{uc: uc}
}

// CreateRequest godoc
// @Summary      Solicitar ausencia
// @Tags         leave
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID  header  string  true  "Identificador del tenant"
// @Param        body  body  dto.CreateLeaveRequestRequest  true  "Datos de la solicitud"
// @Success      201   {object}  dto.LeaveRequestResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/hr/leave-requests [post]
func (h *LeaveHandler) CreateRequest(c *fiber.Ctx) error {
	var in dto.CreateLeaveRequestRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateRequest(c.UserContext(), GetTenantHandle(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListRequests godoc
// @Summary      Listar solicitudes de ausencia
// @Tags         leave
// @Produce      json
// @Param        X-Tenant-ID  header  string  true  "Identificador del tenant"
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.LeaveRequestResponse
// @Router       /api/hr/leave-requests [get]
func (h *LeaveHandler) ListRequests(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.ListRequests(c.UserContext(), GetTenantHandle(c), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UpdateRequestStatus godoc
// @Summary      Aprobar, rechazar o cancelar una solicitud
// @Tags         leave
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID  header  string  true  "Identificador del tenant"
// @Param        id   path  string  true  "ID de la solicitud"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/hr/leave-requests/{id}/status [put]
func (h *LeaveHandler) UpdateRequestStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	var in struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	err := h.uc.UpdateRequestStatus(c.UserContext(), GetTenantHandle(c), id, in.Status)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status inválido"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "solicitud no encontrada"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListTypes godoc
// @Summary      Listar tipos de ausencia
// @Tags         leave
// @Produce      json
// @Param        X-Tenant-ID  header  string  true  "Identificador del tenant"
// @Success      200  {array}  entity.LeaveType
// @Router       /api/hr/leave-types [get]
func (h *LeaveHandler) ListTypes(c *fiber.Ctx) error {
	out, err := h.uc.ListTypes(c.UserContext(), GetTenantHandle(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
