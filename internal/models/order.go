package models

import "time"

// Order is a placed order: the product references copied out of the cart
// at checkout plus the total frozen at that moment. OrderPrice is never
// recomputed from the products, so later catalog price changes do not
// affect past orders.
type Order struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID     string    `json:"user_id" gorm:"index;type:varchar(36)"`
	User       User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Products   []Product `json:"products" gorm:"many2many:order_products"`
	OrderPrice int64     `json:"order_price"`
	CreatedAt  time.Time `json:"created_at"`
}
