package models

import "time"

// Product represents a catalog item. Price is stored in the minor
// currency unit, so no floating point anywhere in the money path.
type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string    `json:"name" gorm:"type:varchar(100)"`
	Description string    `json:"description"`
	Img         string    `json:"img" gorm:"type:varchar(200)"`
	Price       int64     `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
