package payroll

import (
	"time"

	"go-payroll/internal/absence"
	"go-payroll/internal/absencethreshold"
	"go-payroll/internal/servicebracket"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// PeriodEnd returns the last calendar day of (year, month). It doubles as
// the reference date for both salary resolution and years-of-service.
func PeriodEnd(year, month int) time.Time {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
}

// YearsOfService returns the number of whole years between hireDate and
// reference, floored. A hire date after the reference yields 0.
func YearsOfService(hireDate, reference time.Time) int {
	years := reference.Year() - hireDate.Year()
	if years < 0 {
		return 0
	}

	// Back off one year until the anniversary has actually passed. AddDate
	// on Feb 29 rolls to Mar 1 in non-leap years, which is the behavior we
	// want for anniversary comparison.
	for years > 0 && hireDate.AddDate(years, 0, 0).After(reference) {
		years--
	}
	if years == 0 && hireDate.After(reference) {
		return 0
	}
	return years
}

// CalcInput is the consistent view of everything one employee's calculation
// reads. It is assembled once per employee; the engine never re-reads
// configuration mid-calculation.
type CalcInput struct {
	BaseSalary    decimal.Decimal
	HireDate      time.Time
	ReferenceDate time.Time

	DepartmentIncentive decimal.NullDecimal
	Brackets            []servicebracket.ServiceBracket
	Thresholds          []absencethreshold.AbsenceThreshold

	// Absence is nil when the employee has no record for the period.
	Absence *absence.AbsenceRecord
}

type CalcResult struct {
	YearsOfService int
	AbsenceDays    *int

	DepartmentIncentivePercentage   decimal.Decimal
	DepartmentIncentiveAmount       decimal.Decimal
	ServiceYearsIncentivePercentage decimal.Decimal
	ServiceYearsIncentiveAmount     decimal.Decimal
	AttendanceAdjustmentPercentage  decimal.Decimal
	AttendanceAdjustmentAmount      decimal.Decimal
	GrossSalary                     decimal.Decimal
}

// Compute derives one employee's gross pay from an already-loaded input.
// It is pure: all I/O happens before it runs.
//
// Gross salary is deliberately unclamped. A large negative attendance
// adjustment may drive it below the base salary.
func Compute(in CalcInput) CalcResult {
	res := CalcResult{
		YearsOfService: YearsOfService(in.HireDate, in.ReferenceDate),
	}

	if in.DepartmentIncentive.Valid {
		res.DepartmentIncentivePercentage = in.DepartmentIncentive.Decimal
	}
	res.DepartmentIncentiveAmount = percentOf(in.BaseSalary, res.DepartmentIncentivePercentage)

	if bracket := servicebracket.Match(in.Brackets, res.YearsOfService); bracket != nil {
		res.ServiceYearsIncentivePercentage = bracket.IncentivePercentage
	}
	res.ServiceYearsIncentiveAmount = percentOf(in.BaseSalary, res.ServiceYearsIncentivePercentage)

	if in.Absence != nil {
		days := in.Absence.AbsenceDays
		res.AbsenceDays = &days

		if in.Absence.AdjustmentPercentage.Valid {
			// A per-record override wins over the configured thresholds.
			res.AttendanceAdjustmentPercentage = in.Absence.AdjustmentPercentage.Decimal
		} else if th := absencethreshold.Match(in.Thresholds, days); th != nil {
			res.AttendanceAdjustmentPercentage = th.AdjustmentPercentage
		}
	}
	res.AttendanceAdjustmentAmount = percentOf(in.BaseSalary, res.AttendanceAdjustmentPercentage)

	res.GrossSalary = in.BaseSalary.
		Add(res.DepartmentIncentiveAmount).
		Add(res.ServiceYearsIncentiveAmount).
		Add(res.AttendanceAdjustmentAmount)

	return res
}

func percentOf(base, percentage decimal.Decimal) decimal.Decimal {
	if percentage.IsZero() {
		return decimal.Zero
	}
	return base.Mul(percentage).Div(hundred)
}
