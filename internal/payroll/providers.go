package payroll

import (
	"context"
	"time"

	"go-payroll/internal/absence"
	"go-payroll/internal/absencethreshold"
	"go-payroll/internal/employee"
	"go-payroll/internal/salary"
	"go-payroll/internal/servicebracket"

	"github.com/shopspring/decimal"
)

// The engine depends on narrow read interfaces rather than the feature
// repositories directly. Each is satisfied by the corresponding package's
// repository without an adapter.

type EmployeeProvider interface {
	FindByID(ctx context.Context, id string) (*employee.Employee, error)
	FindAllActive(ctx context.Context) ([]employee.Employee, error)
}

type SalaryProvider interface {
	FindCurrentOnOrBefore(ctx context.Context, employeeID string, asOf time.Time) (*salary.SalaryRecord, error)
}

type IncentiveProvider interface {
	CurrentIncentive(ctx context.Context, departmentID string) (decimal.NullDecimal, error)
}

type BracketProvider interface {
	FindActive(ctx context.Context) ([]servicebracket.ServiceBracket, error)
}

type ThresholdProvider interface {
	FindActive(ctx context.Context) ([]absencethreshold.AbsenceThreshold, error)
}

type AbsenceProvider interface {
	FindByEmployeeAndPeriod(ctx context.Context, employeeID string, year, month int) (*absence.AbsenceRecord, error)
}

// Providers bundles everything the engine reads from other features.
type Providers struct {
	Employees  EmployeeProvider
	Salaries   SalaryProvider
	Incentives IncentiveProvider
	Brackets   BracketProvider
	Thresholds ThresholdProvider
	Absences   AbsenceProvider
}
