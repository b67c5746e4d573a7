package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	appfees "github.com/skolair/backend/internal/application/fees"
	appschool "github.com/skolair/backend/internal/application/school"
	"github.com/skolair/backend/internal/infrastructure/auth"
	"github.com/skolair/backend/internal/infrastructure/config"
	"github.com/skolair/backend/internal/infrastructure/logger"
	"github.com/skolair/backend/internal/infrastructure/persistence"
	"github.com/skolair/backend/internal/interfaces/http/handler"
	"github.com/skolair/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting Skolair Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Repositories
	feeTypeRepo := persistence.NewGormFeeTypeRepository(db.DB)
	pricingRepo := persistence.NewGormPricingRepository(db.DB)
	installmentRepo := persistence.NewGormInstallmentRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)
	yearRepo := persistence.NewGormAcademicYearRepository(db.DB)
	classRepo := persistence.NewGormSchoolClassRepository(db.DB)
	studentRepo := persistence.NewGormStudentRepository(db.DB)
	enrollmentRepo := persistence.NewGormEnrollmentRepository(db.DB)

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	catalogService := appfees.NewCatalogService(feeTypeRepo, pricingRepo, yearRepo, classRepo)
	installmentService := appfees.NewInstallmentService(pricingRepo, installmentRepo)
	paymentService := appfees.NewPaymentService(paymentRepo, pricingRepo, yearRepo, enrollmentRepo, log)
	balanceService := appfees.NewBalanceService(paymentRepo, pricingRepo, feeTypeRepo, enrollmentRepo)
	schoolService := appschool.NewSchoolService(yearRepo, classRepo, studentRepo, enrollmentRepo)

	engine := router.New(router.Dependencies{
		Config:     cfg,
		Logger:     log,
		Database:   db,
		JWTService: jwtService,
		Handlers: router.Handlers{
			FeeCatalog:  handler.NewFeeCatalogHandler(catalogService),
			Installment: handler.NewInstallmentHandler(installmentService),
			Payment:     handler.NewPaymentHandler(paymentService),
			Balance:     handler.NewBalanceHandler(balanceService),
			School:      handler.NewSchoolHandler(schoolService),
		},
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
