package salary

type CreateSalaryRecordRequest struct {
	EmployeeID    string  `json:"employee_id" binding:"required,uuid"`
	BaseSalary    string  `json:"base_salary" binding:"required"`
	EffectiveDate string  `json:"effective_date" binding:"required"`
	Notes         *string `json:"notes"`
}

type SalaryRecordResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  string  `json:"employee_name,omitempty"`
	BaseSalary    string  `json:"base_salary"`
	EffectiveDate string  `json:"effective_date"`
	Notes         *string `json:"notes,omitempty"`
}
