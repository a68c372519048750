package absencethreshold

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AbsenceThreshold maps a monthly absence-days range to a signed attendance
// adjustment percentage. Positive values reward low absence, negative values
// penalize high absence. Active thresholds must not overlap; MaxDays nil
// means the range is open-ended.
type AbsenceThreshold struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name                 string          `gorm:"not null;uniqueIndex:uq_absence_threshold_name" json:"name"`
	MinDays              int             `gorm:"not null" json:"min_days"`
	MaxDays              *int            `json:"max_days"`
	AdjustmentPercentage decimal.Decimal `gorm:"type:numeric(5,2);not null" json:"adjustment_percentage"`
	IsActive             bool            `gorm:"not null;default:true" json:"is_active"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
	DeletedAt            *time.Time      `gorm:"index" json:"-"`
}

func (AbsenceThreshold) TableName() string {
	return "absence_thresholds"
}
