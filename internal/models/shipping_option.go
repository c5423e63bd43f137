package models

import "time"

// ShippingOption is a flat delivery option record with no relationships.
type ShippingOption struct {
	ID           int       `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Price        float64   `db:"price" json:"price"`
	DeliveryTime string    `db:"delivery_time" json:"deliveryTime"`
	IsActive     bool      `db:"is_active" json:"isActive"`
	CreatedAt    time.Time `db:"created_at" json:"-"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}
