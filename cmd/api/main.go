package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/siteledger-backend-go/internal/config"
	appHTTP "github.com/cmlabs-hris/siteledger-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/siteledger-backend-go/internal/pkg/cron"
	"github.com/cmlabs-hris/siteledger-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/siteledger-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/siteledger-backend-go/internal/pkg/logger"
	"github.com/cmlabs-hris/siteledger-backend-go/internal/pkg/storage"
	"github.com/cmlabs-hris/siteledger-backend-go/internal/repository/postgresql"
	payPeriodService "github.com/cmlabs-hris/siteledger-backend-go/internal/service/payperiod"
	payrollService "github.com/cmlabs-hris/siteledger-backend-go/internal/service/payroll"
	projectService "github.com/cmlabs-hris/siteledger-backend-go/internal/service/project"
)

var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	logg := logger.New(logger.Options{
		App:     "siteledger-api",
		Version: version,
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
	})
	slog.SetDefault(logg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: time.Hour,
	})
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	payPeriodRepo := postgresql.NewPayPeriodRepository(db)
	staffRepo := postgresql.NewStaffRepository(db)
	assignmentRepo := postgresql.NewTaskAssignmentRepository(db)
	reimbursementRepo := postgresql.NewReimbursementRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	expenseRepo := postgresql.NewExpenseRepository(db)
	incomeRepo := postgresql.NewIncomeRepository(db)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		slog.Error("Failed to initialize local storage", "error", err)
		os.Exit(1)
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	periodSvc := payPeriodService.NewPayPeriodService(payPeriodRepo)
	payrollSvc := payrollService.NewPayrollService(
		assignmentRepo,
		reimbursementRepo,
		staffRepo,
		periodSvc,
		fileStorage,
		cfg.Report.MaxConcurrency,
	)
	reconciliationSvc := projectService.NewReconciliationService(
		projectRepo,
		expenseRepo,
		incomeRepo,
		assignmentRepo,
		reimbursementRepo,
	)

	healthHandler := appHTTP.NewHealthHandler(db)
	payPeriodHandler := appHTTP.NewPayPeriodHandler(periodSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	projectHandler := appHTTP.NewProjectHandler(reconciliationSvc)
	archiveHandler := appHTTP.NewArchiveHandler(fileStorage)

	router := appHTTP.NewRouter(
		appHTTP.RouterOptions{Logger: logg, AllowedOrigins: cfg.App.AllowedOrigins},
		JWTService,
		healthHandler,
		payPeriodHandler,
		payrollHandler,
		projectHandler,
		archiveHandler,
	)

	scheduler := cron.NewScheduler()
	if cfg.Jobs.ReconcileEnabled {
		cron.NewReconciliationJobs(projectRepo, reconciliationSvc).RegisterJobs(scheduler, cfg.Jobs.ReconcileInterval)
		scheduler.Start()
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      2 * time.Minute,
		IdleTimeout:       2 * time.Minute,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", server.Addr, "env", cfg.App.Env)
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
		}
	case <-ctx.Done():
		slog.Info("Shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
	scheduler.Stop()
}
