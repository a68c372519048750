package payroll

type CalculateGrossPayRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Year       int    `json:"year" binding:"required,min=2000,max=2100"`
	Month      int    `json:"month" binding:"required,min=1,max=12"`
	Regenerate bool   `json:"regenerate"`
}

type SnapshotResponse struct {
	ID             string `json:"id"`
	EmployeeID     string `json:"employee_id"`
	EmployeeName   string `json:"employee_name,omitempty"`
	DepartmentID   string `json:"department_id"`
	DepartmentName string `json:"department_name,omitempty"`
	Year           int    `json:"year"`
	Month          int    `json:"month"`

	BaseSalary                      string `json:"base_salary"`
	DepartmentIncentivePercentage   string `json:"department_incentive_percentage"`
	DepartmentIncentiveAmount       string `json:"department_incentive_amount"`
	ServiceYearsIncentivePercentage string `json:"service_years_incentive_percentage"`
	ServiceYearsIncentiveAmount     string `json:"service_years_incentive_amount"`
	AttendanceAdjustmentPercentage  string `json:"attendance_adjustment_percentage"`
	AttendanceAdjustmentAmount      string `json:"attendance_adjustment_amount"`
	GrossSalary                     string `json:"gross_salary"`

	AbsenceDays    *int `json:"absence_days"`
	YearsOfService int  `json:"years_of_service"`
}

// SkippedEmployee reports one employee the batch could not compute, with the
// reason, so a failed employee is surfaced instead of silently dropped.
type SkippedEmployee struct {
	EmployeeID     string `json:"employee_id"`
	EmployeeNumber string `json:"employee_number"`
	Reason         string `json:"reason"`
}

type GenerationResultResponse struct {
	Year           int               `json:"year"`
	Month          int               `json:"month"`
	SnapshotCount  int               `json:"snapshot_count"`
	Skipped        []SkippedEmployee `json:"skipped"`
}

type DepartmentSummaryRow struct {
	DepartmentID     string `json:"department_id"`
	DepartmentName   string `json:"department_name"`
	EmployeeCount    int    `json:"employee_count"`
	TotalBaseSalary  string `json:"total_base_salary"`
	TotalGrossSalary string `json:"total_gross_salary"`
}

type DepartmentSummaryResponse struct {
	Year        int                    `json:"year"`
	Month       int                    `json:"month"`
	Departments []DepartmentSummaryRow `json:"departments"`
}
