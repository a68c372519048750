package employee

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive     = "ACTIVE"
	StatusOnLeave    = "ON_LEAVE"
	StatusTerminated = "TERMINATED"
)

type Employee struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeNumber   string     `gorm:"type:varchar(20);not null;uniqueIndex:uq_employee_number"`
	FullName         string     `gorm:"size:255;not null"`
	Email            string     `gorm:"size:255;not null;uniqueIndex:uq_employee_email"`
	DepartmentID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	JobGradeID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	HireDate         time.Time  `gorm:"type:date;not null"`
	EmploymentStatus string     `gorm:"type:varchar(20);not null;default:'ACTIVE'"`
	CreatedAt        time.Time  `gorm:"autoCreateTime"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime"`
	DeletedAt        *time.Time `gorm:"index"`

	DepartmentName string `gorm:"->;-:migration"`
	JobGradeName   string `gorm:"->;-:migration"`
}

func (Employee) TableName() string {
	return "employees"
}

func ValidStatus(status string) bool {
	switch status {
	case StatusActive, StatusOnLeave, StatusTerminated:
		return true
	}
	return false
}
