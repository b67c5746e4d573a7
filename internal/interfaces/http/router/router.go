package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/skolair/backend/internal/infrastructure/auth"
	"github.com/skolair/backend/internal/infrastructure/config"
	"github.com/skolair/backend/internal/infrastructure/logger"
	"github.com/skolair/backend/internal/infrastructure/persistence"
	"github.com/skolair/backend/internal/interfaces/http/handler"
	"github.com/skolair/backend/internal/interfaces/http/middleware"
)

// Handlers bundles every resource handler the router mounts
type Handlers struct {
	FeeCatalog  *handler.FeeCatalogHandler
	Installment *handler.InstallmentHandler
	Payment     *handler.PaymentHandler
	Balance     *handler.BalanceHandler
	School      *handler.SchoolHandler
}

// Dependencies holds everything New needs to assemble the engine
type Dependencies struct {
	Config     *config.Config
	Logger     *zap.Logger
	Database   *persistence.Database
	JWTService *auth.JWTService
	Handlers   Handlers
}

// New assembles the gin engine with middleware and all API routes.
// Mutating routes require the admin or bursar role; teachers get read access.
func New(deps Dependencies) *gin.Engine {
	if deps.Config.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()
	if len(deps.Config.HTTP.TrustedProxies) > 0 {
		_ = engine.SetTrustedProxies(deps.Config.HTTP.TrustedProxies)
	}

	engine.Use(logger.Recovery(deps.Logger))
	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(deps.Logger))
	engine.Use(middleware.CORS(middleware.CORSConfig{
		AllowOrigins: deps.Config.HTTP.CORSAllowOrigins,
		AllowMethods: deps.Config.HTTP.CORSAllowMethods,
		AllowHeaders: deps.Config.HTTP.CORSAllowHeaders,
	}))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/ready", func(c *gin.Context) {
		if err := deps.Database.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	engine.Use(middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService: deps.JWTService,
		SkipPaths:  []string{"/health", "/ready"},
		Logger:     deps.Logger,
	}))

	staff := middleware.RequireRole(auth.RoleAdmin, auth.RoleBursar)
	adminOnly := middleware.RequireRole(auth.RoleAdmin)

	v1 := engine.Group("/api/v1")
	{
		h := deps.Handlers

		feeTypes := v1.Group("/fee-types")
		{
			feeTypes.POST("", adminOnly, h.FeeCatalog.CreateFeeType)
			feeTypes.GET("", h.FeeCatalog.ListFeeTypes)
			feeTypes.GET("/:id", h.FeeCatalog.GetFeeType)
			feeTypes.PUT("/:id", adminOnly, h.FeeCatalog.UpdateFeeType)
			feeTypes.DELETE("/:id", adminOnly, h.FeeCatalog.DeactivateFeeType)
		}

		pricings := v1.Group("/pricings")
		{
			pricings.POST("", adminOnly, h.FeeCatalog.CreatePricing)
			pricings.GET("", h.FeeCatalog.ListPricings)
			pricings.GET("/:id", h.FeeCatalog.GetPricing)
			pricings.DELETE("/:id", adminOnly, h.FeeCatalog.DeactivatePricing)
			pricings.POST("/:id/installments", adminOnly, h.Installment.AddInstallments)
			pricings.GET("/:id/installments", h.Installment.ListInstallments)
		}

		installments := v1.Group("/installments")
		{
			installments.PUT("/:id", adminOnly, h.Installment.UpdateInstallment)
			installments.DELETE("/:id", adminOnly, h.Installment.DeleteInstallment)
		}

		payments := v1.Group("/payments")
		{
			payments.POST("", staff, h.Payment.CreatePayment)
			payments.GET("", h.Payment.ListPayments)
			payments.GET("/:id", h.Payment.GetPayment)
			payments.PUT("/:id", staff, h.Payment.UpdatePayment)
			payments.POST("/:id/cancel", staff, h.Payment.CancelPayment)
			payments.GET("/:id/amendments", h.Payment.ListAmendments)
		}

		years := v1.Group("/years")
		{
			years.POST("", adminOnly, h.School.CreateAcademicYear)
			years.GET("", h.School.ListAcademicYears)
		}

		classes := v1.Group("/classes")
		{
			classes.POST("", adminOnly, h.School.CreateClass)
			classes.GET("", h.School.ListClasses)
		}

		students := v1.Group("/students")
		{
			students.POST("", staff, h.School.CreateStudent)
			students.GET("", h.School.ListStudents)
			students.GET("/:id", h.School.GetStudent)
			students.GET("/:id/enrollments", h.School.ListEnrollments)
			students.GET("/:id/balances", h.Balance.GetStudentYearBalance)
			students.GET("/:id/balances/:pricingId", h.Balance.GetStudentPricingBalance)
		}

		enrollments := v1.Group("/enrollments")
		{
			enrollments.POST("", staff, h.School.EnrollStudent)
			enrollments.POST("/:id/withdraw", staff, h.School.WithdrawEnrollment)
		}
	}

	return engine
}
