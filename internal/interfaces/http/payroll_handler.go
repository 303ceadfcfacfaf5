package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Talento-api/internal/application/dto"
	"github.com/jhoicas/Talento-api/internal/application/usecase"
	"github.com/jhoicas/Talento-api/internal/domain"
)

// PayrollHandler maneja las peticiones HTTP de nómina: payslips y horas extra.
type PayrollHandler struct {
	uc *usecase.PayrollUseCase
}

// NewPayrollHandler construye el handler inyectando el caso de uso.
func NewPayrollHandler(uc *usecase.PayrollUseCase) *PayrollHandler {
	return &PayrollHandler{uc: uc}
}

// CreatePayslip godoc
// @Summary      Registrar payslip
// @Tags         payroll
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID  header  string  true  "Identificador del tenant"
// @Param        body  body  dto.CreatePayslipRequest  true  "Datos del payslip"
// @Success      201   {object}  dto.PayslipResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/hr/payslips [post]
func (h *PayrollHandler) CreatePayslip(c *fiber.Ctx) error {
	var in dto.CreatePayslipRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreatePayslip(c.UserContext(), GetTenantHandle(c), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "EMPLOYEE_NOT_FOUND", Message: "empleado no encontrado"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetPayslip godoc
// @Summary      Obtener payslip por ID
// @Tags         payroll
// @Produce      json
// @Param        X-Tenant-ID  header  string  true  "Identificador del tenant"
// @Param        id   path  string  true  "ID del payslip"
// @Success      200  {object}  dto.PayslipResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/hr/payslips/{id} [get]
func (h *PayrollHandler) GetPayslip(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetPayslip(c.UserContext(), GetTenantHandle(c), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "payslip no encontrado"})
	}
	return c.JSON(out)
}

// ListPayslips godoc
// @Summary      Listar payslips
// @Tags         payroll
// @Produce      json
// @Param        X-Tenant-ID  header  string  true  "Identificador del tenant"
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.PayslipResponse
// @Router       /api/hr/payslips [get]
func (h *PayrollHandler) ListPayslips(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.ListPayslips(c.UserContext(), GetTenantHandle(c), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// CreateOvertime godoc
// @Summary      Registrar horas extra
// @Tags         payroll
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID  header  string  true  "Identificador del tenant"
// @Param        body  body  dto.CreateOvertimeRequest  true  "Datos de las horas extra"
// @Success      201   {object}  dto.OvertimeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/hr/overtime [post]
func (h *PayrollHandler) CreateOvertime(c *fiber.Ctx) error {
	var in dto.CreateOvertimeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateOvertime(c.UserContext(), GetTenantHandle(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListOvertime godoc
// @Summary      Listar horas extra
// @Tags         payroll
// @Produce      json
// @Param        X-Tenant-ID  header  string  true  "Identificador del tenant"
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.OvertimeResponse
// @Router       /api/hr/overtime [get]
func (h *PayrollHandler) ListOvertime(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.ListOvertime(c.UserContext(), GetTenantHandle(c), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ApproveOvertime godoc
// @Summary      Aprobar horas extra
// @Tags         payroll
// @Produce      json
// @Param        X-Tenant-ID  header  string  true  "Identificador del tenant"
// @Param        id   path  string  true  "ID del registro"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/hr/overtime/{id}/approve [put]
func (h *PayrollHandler) ApproveOvertime(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.ApproveOvertime(c.UserContext(), GetTenantHandle(c), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
