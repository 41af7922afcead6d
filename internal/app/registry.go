package app

import (
	"database/sql"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"go-payroll/internal/absence"
	"go-payroll/internal/adjustment"
	"go-payroll/internal/employee"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/organization"
	"go-payroll/internal/payperiod"
	"go-payroll/internal/payroll"
	"go-payroll/internal/rateconfig"
	"go-payroll/internal/rbac"
	"go-payroll/internal/rbac/infra"
	"go-payroll/internal/severance"
	"go-payroll/internal/summary"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	adjustmentRepo := adjustment.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	organizationRepo := organization.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	payPeriodRepo := payperiod.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	rateRepo := rateconfig.NewRepository(gormDB)
	severanceRepo := severance.NewRepository(gormDB)
	summaryRepo := summary.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(filepath.Join("internal", "rbac", "infra", "model.conf"))
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)

	// --- Services ---
	absenceService := absence.NewService(employeeRepo)
	rateService := rateconfig.NewService(db, rateRepo)
	adjustmentService := adjustment.NewService(db, adjustmentRepo, rateService)
	employeeService := employee.NewService(db, employeeRepo)
	organizationService := organization.NewService(db, organizationRepo)
	payPeriodService := payperiod.NewService(db, payPeriodRepo)
	payrollService := payroll.NewServiceWithOutbox(db, payrollRepo, rateService, outboxRepo)
	severanceService := severance.NewServiceWithOutbox(db, severanceRepo, rateService, outboxRepo)
	summaryService := summary.NewService(summaryRepo)

	// --- Handlers ---
	absenceHandler := absence.NewHandler(absenceService)
	adjustmentHandler := adjustment.NewHandler(adjustmentService)
	employeeHandler := employee.NewHandler(employeeService)
	organizationHandler := organization.NewHandler(organizationService)
	payPeriodHandler := payperiod.NewHandler(payPeriodService)
	payrollHandler := payroll.NewHandlerWithRedis(payrollService, rdb)
	rateHandler := rateconfig.NewHandler(rateService)
	rbacHandler := rbac.NewHandler(rbacService)
	severanceHandler := severance.NewHandler(severanceService)
	summaryHandler := summary.NewHandler(summaryService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		absence.RegisterRoutes(api, absenceHandler, rbacService)
		adjustment.RegisterRoutes(api, adjustmentHandler, rbacService)
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		organization.RegisterRoutes(api, organizationHandler, rbacService)
		payperiod.RegisterRoutes(api, payPeriodHandler, rbacService)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, rdb)
		rateconfig.RegisterRoutes(api, rateHandler, rbacService)
		severance.RegisterRoutes(api, severanceHandler, rbacService)
		summary.RegisterRoutes(api, summaryHandler, rbacService)
	}

	rbac.RegisterRoutes(router, rbacHandler)

	return nil
}
