package jobgrade

import (
	"time"

	"github.com/google/uuid"
)

type JobGrade struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"size:100;not null;uniqueIndex:uq_job_grade_name"`
	Description *string   `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
	DeletedAt   *time.Time
}

func (JobGrade) TableName() string {
	return "job_grades"
}
