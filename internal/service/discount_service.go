package service

import (
	"database/sql"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tokoprima/admin-api/internal/models"
	"github.com/tokoprima/admin-api/internal/utils"
)

// DiscountStore is the repository surface the discount service depends on.
type DiscountStore interface {
	GetAll() ([]models.Discount, error)
	GetByID(id int) (*models.Discount, error)
	GetProducts(discountID int) ([]models.Product, error)
	GetVariants(discountID int) ([]models.ProductVariant, error)
	Create(d *models.Discount, productIDs, variantIDs []int) error
	Update(d *models.Discount, productIDs, variantIDs *[]int) error
	Delete(id int) error
	DeactivateExpired() (int64, error)
}

// DiscountService implements discount management rules.
type DiscountService struct {
	discounts DiscountStore
}

// NewDiscountService constructs a DiscountService.
func NewDiscountService(discounts DiscountStore) *DiscountService {
	return &DiscountService{discounts: discounts}
}

// CreateDiscountRequest is the payload for creating a discount.
type CreateDiscountRequest struct {
	Code        string              `json:"code" binding:"required"`
	Description string              `json:"description"`
	Type        models.DiscountType `json:"type" binding:"required,oneof=percentage fixed"`
	Value       float64             `json:"value" binding:"required"`
	UsageLimit  int                 `json:"usageLimit"`
	StartsAt    string              `json:"startsAt"`
	EndsAt      string              `json:"endsAt"`
	IsActive    bool                `json:"isActive"`
	MinSubtotal float64             `json:"minSubtotal"`
	ProductIDs  []int               `json:"productIds"`
	VariantIDs  []int               `json:"variantIds"`
}

// UpdateDiscountRequest is a partial update; nil fields are left untouched.
// A non-nil ProductIDs or VariantIDs replaces the whole association set.
type UpdateDiscountRequest struct {
	Code        *string              `json:"code"`
	Description *string              `json:"description"`
	Type        *models.DiscountType `json:"type"`
	Value       *float64             `json:"value"`
	UsageLimit  *int                 `json:"usageLimit"`
	StartsAt    *string              `json:"startsAt"`
	EndsAt      *string              `json:"endsAt"`
	IsActive    *bool                `json:"isActive"`
	MinSubtotal *float64             `json:"minSubtotal"`
	ProductIDs  *[]int               `json:"productIds"`
	VariantIDs  *[]int               `json:"variantIds"`
}

// ListDiscounts returns all discounts without associations resolved.
func (s *DiscountService) ListDiscounts() ([]models.Discount, error) {
	return s.discounts.GetAll()
}

// GetDiscount returns a discount with its products and variants resolved.
func (s *DiscountService) GetDiscount(id int) (*models.Discount, error) {
	d, err := s.discounts.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrDiscountNotFound
		}
		return nil, err
	}
	return s.resolveAssociations(d)
}

// CreateDiscount validates dates and persists the discount with its
// initial association sets.
func (s *DiscountService) CreateDiscount(req *CreateDiscountRequest) (*models.Discount, error) {
	startsAt := time.Now()
	if req.StartsAt != "" {
		t, err := parseDate(req.StartsAt)
		if err != nil {
			return nil, err
		}
		startsAt = t
	}

	var endsAt *time.Time
	if req.EndsAt != "" {
		t, err := parseDate(req.EndsAt)
		if err != nil {
			return nil, err
		}
		endsAt = &t
	}

	d := &models.Discount{
		Code:        req.Code,
		Description: req.Description,
		Type:        req.Type,
		Value:       req.Value,
		UsageLimit:  req.UsageLimit,
		StartsAt:    startsAt,
		EndsAt:      endsAt,
		IsActive:    req.IsActive,
		MinSubtotal: req.MinSubtotal,
	}
	if err := s.discounts.Create(d, req.ProductIDs, req.VariantIDs); err != nil {
		return nil, err
	}

	log.Info().Int("discount_id", d.ID).Str("code", d.Code).Msg("Discount created")
	return s.resolveAssociations(d)
}

// UpdateDiscount applies the present fields verbatim. When ProductIDs or
// VariantIDs is supplied the association set is replaced, not merged; an
// empty slice clears it. An empty EndsAt string stores the end date as unset.
func (s *DiscountService) UpdateDiscount(id int, req *UpdateDiscountRequest) (*models.Discount, error) {
	d, err := s.discounts.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrDiscountNotFound
		}
		return nil, err
	}

	if req.Code != nil {
		d.Code = *req.Code
	}
	if req.Description != nil {
		d.Description = *req.Description
	}
	if req.Type != nil {
		d.Type = *req.Type
	}
	if req.Value != nil {
		d.Value = *req.Value
	}
	if req.UsageLimit != nil {
		d.UsageLimit = *req.UsageLimit
	}
	if req.StartsAt != nil {
		t, err := parseDate(*req.StartsAt)
		if err != nil {
			return nil, err
		}
		d.StartsAt = t
	}
	if req.EndsAt != nil {
		if *req.EndsAt == "" {
			d.EndsAt = nil
		} else {
			t, err := parseDate(*req.EndsAt)
			if err != nil {
				return nil, err
			}
			d.EndsAt = &t
		}
	}
	if req.IsActive != nil {
		d.IsActive = *req.IsActive
	}
	if req.MinSubtotal != nil {
		d.MinSubtotal = *req.MinSubtotal
	}

	if err := s.discounts.Update(d, req.ProductIDs, req.VariantIDs); err != nil {
		return nil, err
	}
	return s.resolveAssociations(d)
}

// DeleteDiscount removes a discount by id. Historical orders referencing the
// code are an external concern and are not touched.
func (s *DiscountService) DeleteDiscount(id int) error {
	return s.discounts.Delete(id)
}

// DeactivateExpired flips off discounts whose end date has passed.
func (s *DiscountService) DeactivateExpired() (int64, error) {
	return s.discounts.DeactivateExpired()
}

func (s *DiscountService) resolveAssociations(d *models.Discount) (*models.Discount, error) {
	products, err := s.discounts.GetProducts(d.ID)
	if err != nil {
		return nil, err
	}
	variants, err := s.discounts.GetVariants(d.ID)
	if err != nil {
		return nil, err
	}
	d.Products = products
	d.Variants = variants
	return d, nil
}

func parseDate(raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, utils.ErrInvalidDate
	}
	return t, nil
}
