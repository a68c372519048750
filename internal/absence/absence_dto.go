package absence

type CreateAbsenceRecordRequest struct {
	EmployeeID           string  `json:"employee_id" binding:"required,uuid"`
	Year                 int     `json:"year" binding:"required,min=2000,max=2100"`
	Month                int     `json:"month" binding:"required,min=1,max=12"`
	AbsenceDays          int     `json:"absence_days" binding:"min=0,max=31"`
	AdjustmentPercentage *string `json:"adjustment_percentage"`
}

type UpdateAbsenceRecordRequest struct {
	AbsenceDays          int     `json:"absence_days" binding:"min=0,max=31"`
	AdjustmentPercentage *string `json:"adjustment_percentage"`
}

type AbsenceRecordResponse struct {
	ID                   string  `json:"id"`
	EmployeeID           string  `json:"employee_id"`
	EmployeeName         string  `json:"employee_name,omitempty"`
	Year                 int     `json:"year"`
	Month                int     `json:"month"`
	AbsenceDays          int     `json:"absence_days"`
	AdjustmentPercentage *string `json:"adjustment_percentage"`
}
