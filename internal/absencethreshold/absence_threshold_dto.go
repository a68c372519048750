package absencethreshold

type CreateAbsenceThresholdRequest struct {
	Name                 string `json:"name" binding:"required"`
	MinDays              int    `json:"min_days" binding:"min=0"`
	MaxDays              *int   `json:"max_days"`
	AdjustmentPercentage string `json:"adjustment_percentage" binding:"required"`
	IsActive             *bool  `json:"is_active"`
}

type UpdateAbsenceThresholdRequest struct {
	Name                 string `json:"name" binding:"required"`
	MinDays              int    `json:"min_days" binding:"min=0"`
	MaxDays              *int   `json:"max_days"`
	AdjustmentPercentage string `json:"adjustment_percentage" binding:"required"`
	IsActive             *bool  `json:"is_active"`
}

type AbsenceThresholdResponse struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	MinDays              int    `json:"min_days"`
	MaxDays              *int   `json:"max_days"`
	AdjustmentPercentage string `json:"adjustment_percentage"`
	IsActive             bool   `json:"is_active"`
	CreatedAt            string `json:"created_at"`
	UpdatedAt            string `json:"updated_at"`
}
