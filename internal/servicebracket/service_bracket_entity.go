package servicebracket

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ServiceBracket maps a completed-years-of-service range to a seniority
// incentive percentage. Active brackets must not overlap; MaxYears nil means
// the bracket is open-ended.
type ServiceBracket struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name                string          `gorm:"not null;uniqueIndex:uq_service_bracket_name" json:"name"`
	MinYears            int             `gorm:"not null" json:"min_years"`
	MaxYears            *int            `json:"max_years"`
	IncentivePercentage decimal.Decimal `gorm:"type:numeric(5,2);not null" json:"incentive_percentage"`
	IsActive            bool            `gorm:"not null;default:true" json:"is_active"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
	DeletedAt           *time.Time      `gorm:"index" json:"-"`
}

func (ServiceBracket) TableName() string {
	return "service_brackets"
}
