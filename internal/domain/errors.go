package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrTenantNotFound     = errors.New("tenant no encontrado o sin schema aprovisionado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrPlanNotFound       = errors.New("plan no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrValidation         = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")

	// ErrProvisioningFailed indica que un statement DDL del aprovisionamiento falló.
	ErrProvisioningFailed = errors.New("fallo al aprovisionar el schema del tenant")

	// ErrPartialOnboarding indica catálogo confirmado pero schema no aprovisionado
	// tras agotar el reintento; el tenant queda suspendido a la espera de reconciliación.
	ErrPartialOnboarding = errors.New("onboarding parcial: catálogo confirmado sin schema aprovisionado")
)
