package model

import "time"

// CourseModel mirrors the 'courses' table. BootcampID references bootcamps.id.
type CourseModel struct {
	ID                   string  `gorm:"type:uuid;primaryKey"`
	Title                string  `gorm:"type:varchar(255);not null"`
	Description          string  `gorm:"type:text;not null"`
	Weeks                string  `gorm:"type:varchar(20);not null"`
	Tuition              float64 `gorm:"not null"`
	MinimumSkill         string  `gorm:"type:varchar(20);not null"`
	ScholarshipAvailable bool    `gorm:"not null;default:false"`
	BootcampID           string  `gorm:"type:uuid;index;not null"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (CourseModel) TableName() string {
	return "courses"
}
