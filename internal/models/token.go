package models

import "time"

// Token is an opaque bearer credential. One active token per user: it is
// created on signup or first login, reused by later logins, and deleted
// on logout.
type Token struct {
	Key       string    `json:"-" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"user_id" gorm:"uniqueIndex;type:varchar(36)"`
	User      User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"created_at"`
}
