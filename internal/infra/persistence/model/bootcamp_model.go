package model

import (
	"time"

	"github.com/lib/pq"
)

// BootcampModel mirrors the 'bootcamps' table. The location is flattened into columns.
type BootcampModel struct {
	ID               string         `gorm:"type:uuid;primaryKey"`
	Name             string         `gorm:"type:varchar(50);uniqueIndex;not null"`
	Slug             string         `gorm:"type:text;index;not null"`
	Description      string         `gorm:"type:varchar(500);not null"`
	Website          string         `gorm:"type:varchar(255)"`
	Phone            string         `gorm:"type:varchar(20)"`
	Email            string         `gorm:"type:varchar(255)"`
	Address          string         `gorm:"type:text;not null"`
	LocationType     string         `gorm:"type:varchar(10)"`
	Longitude        *float64       `gorm:"index:idx_bootcamps_coordinates"`
	Latitude         *float64       `gorm:"index:idx_bootcamps_coordinates"`
	FormattedAddress string         `gorm:"type:text"`
	Street           string         `gorm:"type:varchar(255)"`
	City             string         `gorm:"type:varchar(100)"`
	State            string         `gorm:"type:varchar(100)"`
	Zipcode          string         `gorm:"type:varchar(20)"`
	Country          string         `gorm:"type:varchar(100)"`
	Careers          pq.StringArray `gorm:"type:text[];not null"`
	AverageRating    *float64
	AverageCost      *float64
	Photo            string `gorm:"type:varchar(255);not null;default:'no-image.jpg'"`
	Housing          bool   `gorm:"not null;default:false"`
	JobAssistance    bool   `gorm:"not null;default:false"`
	JobGuarantee     bool   `gorm:"not null;default:false"`
	AcceptGi         bool   `gorm:"not null;default:false"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Courses []CourseModel `gorm:"foreignKey:BootcampID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (BootcampModel) TableName() string {
	return "bootcamps"
}
