package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-payroll/internal/absence"
	"go-payroll/internal/absencethreshold"
	"go-payroll/internal/department"
	"go-payroll/internal/employee"
	"go-payroll/internal/messaging/kafka/consumer"
	"go-payroll/internal/payroll"
	"go-payroll/internal/salary"
	"go-payroll/internal/servicebracket"
	"go-payroll/internal/shared/connection"

	"go.uber.org/zap"
)

// RunConsumer keeps the cached department summary report in sync with
// snapshot generation until interrupted.
func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	rdb, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	payrollService := payroll.NewService(sqlDB, payroll.NewRepository(gormDB), payroll.Providers{
		Employees:  employee.NewRepository(gormDB),
		Salaries:   salary.NewRepository(gormDB),
		Incentives: department.NewRepository(gormDB),
		Brackets:   servicebracket.NewRepository(gormDB),
		Thresholds: absencethreshold.NewRepository(gormDB),
		Absences:   absence.NewRepository(gormDB),
	}, rdb, nil)

	reportConsumer := consumer.NewReportCacheConsumer(
		kafkaBroker,
		"go-payroll-report-cache",
		payrollService,
		logger,
	)
	defer reportConsumer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := reportConsumer.Run(ctx); err != nil {
			logger.Error("report cache consumer exited", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
