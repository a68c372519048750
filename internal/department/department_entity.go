package department

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Department struct {
	ID                  uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Name                string              `gorm:"size:255;not null;uniqueIndex:uq_department_name"`
	IncentivePercentage decimal.NullDecimal `gorm:"type:numeric(5,2)"`
	IncentiveSetDate    *time.Time          `gorm:"type:date"`
	CreatedAt           time.Time           `gorm:"autoCreateTime"`
	UpdatedAt           time.Time           `gorm:"autoUpdateTime"`
	DeletedAt           *time.Time
}

func (Department) TableName() string {
	return "departments"
}

// IncentiveHistory is the append-only log of incentive percentages a
// department previously held. A row records the value being displaced and
// the date it became effective; the live value sits on the department row.
// Rows are inserted in the same transaction that moves the current value
// and are never updated or deleted.
type IncentiveHistory struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	DepartmentID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Percentage    decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	EffectiveDate time.Time       `gorm:"type:date;not null"`
	CreatedAt     time.Time       `gorm:"autoCreateTime"`
}

func (IncentiveHistory) TableName() string {
	return "department_incentive_histories"
}
