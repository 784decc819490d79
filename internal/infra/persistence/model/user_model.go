package model

import "time"

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID                  string `gorm:"type:uuid;primaryKey"`
	Username            string `gorm:"type:varchar(100);uniqueIndex;not null"`
	Email               string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password            string `gorm:"type:varchar(255);not null"`
	Role                string `gorm:"type:varchar(20);not null;default:'user'"`
	ResetPasswordToken  string `gorm:"type:varchar(255)"`
	ResetPasswordExpire *time.Time
	CreatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// All lists every model the schema migration manages, parents first.
func All() []any {
	return []any{&UserModel{}, &BootcampModel{}, &CourseModel{}}
}
