package model

import "time"

// swagger:model User
type User struct {
	UUIDBase
	Name  string `gorm:"size:100" json:"name"`
	Email string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	// Empty for accounts created by non-credential flows.
	Password  string    `gorm:"size:100" json:"-"`
	LastLogin time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"lastLogin"`
}

func (User) TableName() string {
	return "users"
}
