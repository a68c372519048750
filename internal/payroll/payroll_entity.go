package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayrollSnapshot is the audit record of one employee's computed gross pay
// for one calendar month. It stores both the amounts and the percentages
// they were derived from, so a past payroll run can be reproduced even after
// the configuration changes. Snapshots are written only by the calculation
// engine and replaced wholesale on regeneration, never edited.
type PayrollSnapshot struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	EmployeeID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_payroll_period" json:"employee_id"`
	DepartmentID uuid.UUID `gorm:"type:uuid;not null;index" json:"department_id"`
	Year         int       `gorm:"not null;uniqueIndex:uq_payroll_period" json:"year"`
	Month        int       `gorm:"not null;uniqueIndex:uq_payroll_period" json:"month"`

	BaseSalary decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"base_salary"`

	DepartmentIncentivePercentage   decimal.Decimal `gorm:"type:numeric(5,2);not null" json:"department_incentive_percentage"`
	DepartmentIncentiveAmount       decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"department_incentive_amount"`
	ServiceYearsIncentivePercentage decimal.Decimal `gorm:"type:numeric(5,2);not null" json:"service_years_incentive_percentage"`
	ServiceYearsIncentiveAmount     decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"service_years_incentive_amount"`
	AttendanceAdjustmentPercentage  decimal.Decimal `gorm:"type:numeric(5,2);not null" json:"attendance_adjustment_percentage"`
	AttendanceAdjustmentAmount      decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"attendance_adjustment_amount"`

	GrossSalary    decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"gross_salary"`
	AbsenceDays    *int            `json:"absence_days"`
	YearsOfService int             `gorm:"not null" json:"years_of_service"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	EmployeeName   string `gorm:"->;-:migration" json:"employee_name,omitempty"`
	DepartmentName string `gorm:"->;-:migration" json:"department_name,omitempty"`
}

func (PayrollSnapshot) TableName() string {
	return "payroll_snapshots"
}
