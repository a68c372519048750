package absence

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AbsenceRecord captures how many days an employee was absent in one
// calendar month. AdjustmentPercentage, when set, overrides the configured
// threshold for that employee and period.
type AbsenceRecord struct {
	ID                   uuid.UUID           `gorm:"type:uuid;primaryKey" json:"id"`
	EmployeeID           uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex:uq_absence_period" json:"employee_id"`
	Year                 int                 `gorm:"not null;uniqueIndex:uq_absence_period" json:"year"`
	Month                int                 `gorm:"not null;uniqueIndex:uq_absence_period" json:"month"`
	AbsenceDays          int                 `gorm:"not null" json:"absence_days"`
	AdjustmentPercentage decimal.NullDecimal `gorm:"type:numeric(5,2)" json:"adjustment_percentage"`
	CreatedAt            time.Time           `json:"created_at"`
	UpdatedAt            time.Time           `json:"updated_at"`

	EmployeeName string `gorm:"->;-:migration" json:"employee_name,omitempty"`
}

func (AbsenceRecord) TableName() string {
	return "absence_records"
}
