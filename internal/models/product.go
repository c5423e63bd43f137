package models

import "time"

// Product represents a catalog product. Barcode is nullable; products sold
// only through variants may not carry one.
type Product struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Barcode   *string   `db:"barcode" json:"barcode,omitempty"`
	Price     float64   `db:"price" json:"price"`
	IsActive  bool      `db:"is_active" json:"isActive"`
	CreatedAt time.Time `db:"created_at" json:"-"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`

	Variants []ProductVariant `db:"-" json:"variants"`
}

// ProductVariant is a purchasable configuration of a product carrying its own SKU.
type ProductVariant struct {
	ID        int       `db:"id" json:"id"`
	ProductID int       `db:"product_id" json:"productId"`
	SKU       string    `db:"sku" json:"sku"`
	Name      string    `db:"name" json:"name"`
	Price     float64   `db:"price" json:"price"`
	CreatedAt time.Time `db:"created_at" json:"-"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// LookupResult is a product resolved from a scanned code. MatchedVariant is
// set only when resolution fell through to the variant SKU tier.
type LookupResult struct {
	Product
	MatchedVariant *ProductVariant `json:"matchedVariant,omitempty"`
}
