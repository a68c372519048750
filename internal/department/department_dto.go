package department

type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

type UpdateDepartmentRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

type UpdateIncentiveRequest struct {
	// Percentage of base salary, e.g. "5" or "5.25". Parsed as decimal.
	Percentage string `json:"percentage" binding:"required"`
}

type DepartmentResponse struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	IncentivePercentage *string `json:"incentive_percentage,omitempty"`
	IncentiveSetDate    *string `json:"incentive_set_date,omitempty"`
	CreatedAt           string  `json:"created_at"`
	UpdatedAt           string  `json:"updated_at"`
}

type IncentiveHistoryResponse struct {
	ID            string `json:"id"`
	DepartmentID  string `json:"department_id"`
	Percentage    string `json:"percentage"`
	EffectiveDate string `json:"effective_date"`
}
