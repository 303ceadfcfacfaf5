package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Talento-api/internal/application/dto"
	"github.com/jhoicas/Talento-api/internal/domain"
	"github.com/jhoicas/Talento-api/internal/domain/repository"
	"github.com/jhoicas/Talento-api/pkg/metrics"
)

// HeaderTenantID header que identifica al tenant en cada petición tenant-scoped.
const HeaderTenantID = "X-Tenant-ID"

// LocalTenantHandle key de Locals con el handle resuelto.
const LocalTenantHandle = "tenant_handle"

// TenantMiddleware resuelve el header X-Tenant-ID a un TenantHandle y lo deja
// en c.Locals. Falla cerrado: sin header no se toca el storage (400); tenant
// inexistente, no activo o sin schema responde 404 sin distinguir el motivo.
func TenantMiddleware(resolver repository.TenantResolver, m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tenantID := c.Get(HeaderTenantID)
		if tenantID == "" {
			m.TenantContextMissing.Inc()
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "TENANT_REQUIRED", Message: "header X-Tenant-ID requerido"})
		}

		handle, err := resolver.Resolve(c.UserContext(), tenantID)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrValidation):
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "TENANT_INVALID", Message: "identificador de tenant inválido"})
			case errors.Is(err, domain.ErrTenantNotFound):
				m.TenantNotFound.Inc()
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "TENANT_NOT_FOUND", Message: "tenant no encontrado"})
			default:
				return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error resolviendo tenant"})
			}
		}

		c.Locals(LocalTenantHandle, handle)
		return c.Next()
	}
}

// GetTenantHandle devuelve el handle del contexto (después del TenantMiddleware).
func GetTenantHandle(c *fiber.Ctx) repository.TenantHandle {
	v := c.Locals(LocalTenantHandle)
	if v == nil {
		return nil
	}
	h, _ := v.(repository.TenantHandle)
	return h
}
