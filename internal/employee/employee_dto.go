package employee

type CreateEmployeeRequest struct {
	EmployeeNumber   string `json:"employee_number"`
	FullName         string `json:"full_name" binding:"required,max=255"`
	Email            string `json:"email" binding:"required,email"`
	DepartmentID     string `json:"department_id" binding:"required,uuid"`
	JobGradeID       string `json:"job_grade_id" binding:"required,uuid"`
	HireDate         string `json:"hire_date" binding:"required"`
	EmploymentStatus string `json:"employment_status"`
}

type UpdateEmployeeRequest struct {
	FullName         string `json:"full_name" binding:"required,max=255"`
	Email            string `json:"email" binding:"required,email"`
	DepartmentID     string `json:"department_id" binding:"required,uuid"`
	JobGradeID       string `json:"job_grade_id" binding:"required,uuid"`
	HireDate         string `json:"hire_date" binding:"required"`
	EmploymentStatus string `json:"employment_status" binding:"required,oneof=ACTIVE ON_LEAVE TERMINATED"`
}

type EmployeeResponse struct {
	ID               string `json:"id"`
	EmployeeNumber   string `json:"employee_number"`
	FullName         string `json:"full_name"`
	Email            string `json:"email"`
	DepartmentID     string `json:"department_id"`
	DepartmentName   string `json:"department_name,omitempty"`
	JobGradeID       string `json:"job_grade_id"`
	JobGradeName     string `json:"job_grade_name,omitempty"`
	HireDate         string `json:"hire_date"`
	EmploymentStatus string `json:"employment_status"`
}
