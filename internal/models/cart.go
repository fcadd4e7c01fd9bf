package models

import "time"

// Cart is the per-user staging area for a future order. The unique index
// on UserID enforces at most one cart per user; the join table gives the
// product collection set semantics.
type Cart struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"user_id" gorm:"uniqueIndex;type:varchar(36)"`
	User      User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Products  []Product `json:"products" gorm:"many2many:cart_products"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
