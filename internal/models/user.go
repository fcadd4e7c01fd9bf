package models

import "time"

// User represents a registered account.
type User struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Fio         string    `json:"fio" gorm:"type:varchar(255)"`
	Email       string    `json:"email" gorm:"uniqueIndex;type:varchar(255)"`
	Password    string    `json:"-" gorm:"type:varchar(255)"` // bcrypt hash, never serialized
	IsStaff     bool      `json:"is_staff"`
	IsSuperuser bool      `json:"is_superuser"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
