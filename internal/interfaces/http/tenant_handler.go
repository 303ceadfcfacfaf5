package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Talento-api/internal/application/dto"
	"github.com/jhoicas/Talento-api/internal/application/onboarding"
	"github.com/jhoicas/Talento-api/internal/domain"
)

// TenantHandler maneja las peticiones HTTP del catálogo de tenants.
type TenantHandler struct {
	uc *onboarding.UseCase
}

// NewTenantHandler construye el handler inyectando el caso de uso.
func NewTenantHandler(uc *onboarding.UseCase) *TenantHandler {
	return &TenantHandler{uc: uc}
}

// Onboard godoc
// @Summary      Dar de alta un tenant (catálogo + schema + admin)
// @Tags         tenants
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OnboardTenantRequest  true  "Datos del tenant y su admin"
// @Success      201   {object}  dto.OnboardTenantResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/tenants [post]
func (h *TenantHandler) Onboard(c *fiber.Ctx) error {
	var in dto.OnboardTenantRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	out, err := h.uc.Onboard(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrPlanNotFound):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "PLAN_NOT_FOUND", Message: err.Error()})
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email del admin ya está registrado"})
		case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "TENANT_EXISTS", Message: "tenant con ese identificador ya existe"})
		case errors.Is(err, domain.ErrPartialOnboarding):
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PARTIAL_ONBOARDING", Message: "catálogo confirmado pero el schema no pudo aprovisionarse; el tenant queda suspendido hasta su reconciliación"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar tenants
// @Tags         tenants
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.TenantListResponse
// @Router       /api/tenants [get]
func (h *TenantHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	out, err := h.uc.ListTenants(c.UserContext(), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
