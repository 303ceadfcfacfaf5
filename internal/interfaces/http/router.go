package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Talento-api/internal/application/auth"
	"github.com/jhoicas/Talento-api/internal/application/onboarding"
	"github.com/jhoicas/Talento-api/internal/application/usecase"
	"github.com/jhoicas/Talento-api/internal/domain/repository"
	"github.com/jhoicas/Talento-api/pkg/metrics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	OnboardingUC *onboarding.UseCase
	AuthUC       *auth.UseCase
	DepartmentUC *usecase.DepartmentUseCase
	EmployeeUC   *usecase.EmployeeUseCase
	PayrollUC    *usecase.PayrollUseCase
	LeaveUC      *usecase.LeaveUseCase
	Resolver     repository.TenantResolver
	Metrics      *metrics.Metrics
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Tenants: el alta es pública (es el punto de entrada de un cliente nuevo);
	// el listado requiere token.
	tenants := api.Group("/tenants")
	tenantHandler := NewTenantHandler(deps.OnboardingUC)
	tenants.Post("/", tenantHandler.Onboard)
	tenants.Get("/", AuthMiddleware(deps.JWTSecret), tenantHandler.List)

	// Rutas tenant-scoped: Bearer Token + resolución del tenant por header.
	// El orden importa: primero auth, después resolver (sin token no se toca
	// el catálogo).
	hr := api.Group("/hr",
		AuthMiddleware(deps.JWTSecret),
		TenantMiddleware(deps.Resolver, deps.Metrics),
	)

	departments := hr.Group("/departments")
	departmentHandler := NewDepartmentHandler(deps.DepartmentUC)
	departments.Post("/", departmentHandler.Create)
	departments.Get("/", departmentHandler.List)
	departments.Get("/:id", departmentHandler.GetByID)

	employees := hr.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id/status", employeeHandler.UpdateStatus)

	payrollHandler := NewPayrollHandler(deps.PayrollUC)
	payslips := hr.Group("/payslips")
	payslips.Post("/", payrollHandler.CreatePayslip)
	payslips.Get("/", payrollHandler.ListPayslips)
	payslips.Get("/:id", payrollHandler.GetPayslip)

	overtime := hr.Group("/overtime")
	overtime.Post("/", payrollHandler.CreateOvertime)
	overtime.Get("/", payrollHandler.ListOvertime)
	overtime.Put("/:id/approve", RequireRole("admin", "manager"), payrollHandler.ApproveOvertime)

	leaveHandler := NewLeaveHandler(deps.LeaveUC)
	leaveRequests := hr.Group("/leave-requests")
	leaveRequests.Post("/", leaveHandler.CreateRequest)
	leaveRequests.Get("/", leaveHandler.ListRequests)
	leaveRequests.Put("/:id/status", RequireRole("admin", "manager"), leaveHandler.UpdateRequestStatus)
	hr.Get("/leave-types", leaveHandler.ListTypes)
}
