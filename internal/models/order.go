package models

import (
	"time"

	"gorm.io/gorm"
)

// Order belongs to one customer and is billed to one address.
type Order struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	CustomerID       uint      `gorm:"index;not null" json:"customer_id"`
	Customer         *Customer `gorm:"foreignKey:CustomerID" json:"-"`
	BillingAddressID uint      `gorm:"index;not null" json:"billing_address_id"`
	BillingAddress   Address   `gorm:"foreignKey:BillingAddressID" json:"billing_address"`
	Timestamp        time.Time `gorm:"index;not null" json:"timestamp"`
	InStore          bool      `gorm:"index;not null;default:false" json:"in_store"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// BeforeCreate stamps orders created without a timestamp with the current UTC time.
func (o *Order) BeforeCreate(_ *gorm.DB) error {
	if o.Timestamp.IsZero() {
		o.Timestamp = time.Now().UTC()
	}
	return nil
}

// OrderItem is one line of an order, shipped to its own address.
type OrderItem struct {
	ID                uint    `gorm:"primaryKey" json:"id"`
	OrderID           uint    `gorm:"index;not null" json:"order_id"`
	ItemName          string  `gorm:"size:255" json:"item_name"`
	ShippingAddressID uint    `gorm:"index;not null" json:"shipping_address_id"`
	ShippingAddress   Address `gorm:"foreignKey:ShippingAddressID" json:"shipping_address"`
}

// All returns every persisted model in dependency order, for AutoMigrate.
func All() []any {
	return []any{&Customer{}, &Address{}, &Order{}, &OrderItem{}}
}

// TableNames lists the tables All maps to.
var TableNames = []string{"customers", "addresses", "orders", "order_items"}
