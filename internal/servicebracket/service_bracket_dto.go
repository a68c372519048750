package servicebracket

type CreateServiceBracketRequest struct {
	Name                string `json:"name" binding:"required"`
	MinYears            int    `json:"min_years" binding:"min=0"`
	MaxYears            *int   `json:"max_years"`
	IncentivePercentage string `json:"incentive_percentage" binding:"required"`
	IsActive            *bool  `json:"is_active"`
}

type UpdateServiceBracketRequest struct {
	Name                string `json:"name" binding:"required"`
	MinYears            int    `json:"min_years" binding:"min=0"`
	MaxYears            *int   `json:"max_years"`
	IncentivePercentage string `json:"incentive_percentage" binding:"required"`
	IsActive            *bool  `json:"is_active"`
}

type ServiceBracketResponse struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	MinYears            int    `json:"min_years"`
	MaxYears            *int   `json:"max_years"`
	IncentivePercentage string `json:"incentive_percentage"`
	IsActive            bool   `json:"is_active"`
	CreatedAt           string `json:"created_at"`
	UpdatedAt           string `json:"updated_at"`
}
