package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"microfin-ledger/internal/adapter/extsvc"
	httpadp "microfin-ledger/internal/adapter/http"
	"microfin-ledger/internal/adapter/middleware"
	"microfin-ledger/internal/adapter/repository/mysql"
	"microfin-ledger/internal/config"
	"microfin-ledger/internal/infrastructure/cache"
	"microfin-ledger/internal/infrastructure/db"
	"microfin-ledger/internal/infrastructure/logging"
	disbursementUC "microfin-ledger/internal/usecase/disbursement"
	loanUC "microfin-ledger/internal/usecase/loan"
	"microfin-ledger/internal/usecase/overdue"
	"microfin-ledger/internal/usecase/repayment"
	"microfin-ledger/internal/worker"
	"microfin-ledger/pkg/clock"
)

// version is overridden at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg := config.Load()
	logger := logging.NewLogger(cfg.LogLevel)
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		logger.Fatal("mysql connect failed", zap.Error(err))
	}
	rdb, err := cache.OpenRedis(cache.Options{
		Addr:     cfg.RedisAddr,
		DB:       cfg.RedisDB,
		PoolSize: cfg.RedisPoolSize,
	})
	if err != nil {
		logger.Fatal("redis connect failed", zap.Error(err))
	}

	clk := clock.System{}
	httpClient := &http.Client{Timeout: 10 * time.Second}

	loanRepo := mysql.NewLoanRepository(gdb)
	uow := mysql.NewGormUoW(gdb)
	clients := extsvc.NewClientDirectory(httpClient, cfg.ClientsBaseURL, logger)
	documents := extsvc.NewDocumentResolver(httpClient, cfg.DocumentsBaseURL, logger)

	scheduler := repayment.NewScheduler(clk)
	loans := loanUC.NewUsecase(loanRepo, uow, clients, clk)
	disbursements := disbursementUC.NewUsecase(uow, scheduler, documents, clk)
	repayments := repayment.NewUsecase(uow, scheduler, clk)
	sweeper := overdue.NewSweeper(uow, clk)

	h := httpadp.NewHandler(version)
	loanH := httpadp.NewLoanHandler(loans, logger)
	disbH := httpadp.NewDisbursementHandler(disbursements, logger)
	repayH := httpadp.NewRepaymentHandler(repayments, logger)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)

	idemp := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second, logger)
	api := e.Group("", idemp)
	api.POST("/loans", loanH.CreateLoan)
	api.GET("/loans", loanH.ListLoans)
	api.GET("/loans/:loan_id", loanH.GetLoan)
	api.PATCH("/loans/:loan_id", loanH.UpdateLoan)
	api.DELETE("/loans/:loan_id", loanH.DeleteLoan)
	api.POST("/loans/:loan_id/disbursements", disbH.Disburse)
	api.GET("/loans/:loan_id/installments", repayH.ListInstallments)
	api.GET("/disbursements/:disbursement_id", disbH.Get)
	api.POST("/disbursements/:disbursement_id/confirm", disbH.Confirm)
	api.POST("/installments/:installment_id/payments", repayH.ApplyPayment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sweep := worker.NewSweepLoop(sweeper, cfg.SweepInterval, logger)
	go sweep.Run(ctx)

	go func() {
		addr := ":" + cfg.AppPort
		logger.Info("listening", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
