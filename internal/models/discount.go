package models

import "time"

// DiscountType enumerates the supported discount types.
type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

// Discount represents a price reduction rule, time-bounded and usage-capped,
// scoped to a set of products and variants via join tables.
type Discount struct {
	ID          int          `db:"id" json:"id"`
	Code        string       `db:"code" json:"code"`
	Description string       `db:"description" json:"description"`
	Type        DiscountType `db:"type" json:"type"`
	Value       float64      `db:"value" json:"value"`
	UsageLimit  int          `db:"usage_limit" json:"usageLimit"`
	StartsAt    time.Time    `db:"starts_at" json:"startsAt"`
	EndsAt      *time.Time   `db:"ends_at" json:"endsAt,omitempty"`
	IsActive    bool         `db:"is_active" json:"isActive"`
	MinSubtotal float64      `db:"min_subtotal" json:"minSubtotal"`
	CreatedAt   time.Time    `db:"created_at" json:"-"`
	UpdatedAt   time.Time    `db:"updated_at" json:"updatedAt"`

	// Resolved associations (populated by the service layer, not columns).
	Products []Product        `db:"-" json:"products,omitempty"`
	Variants []ProductVariant `db:"-" json:"variants,omitempty"`
}
