package service

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokoprima/admin-api/internal/models"
	"github.com/tokoprima/admin-api/internal/utils"
)

type discountStoreStub struct {
	discounts map[int]*models.Discount

	updatedProductIDs *[]int
	updatedVariantIDs *[]int
	createdProductIDs []int
	createdVariantIDs []int
}

func newDiscountStoreStub(discounts ...*models.Discount) *discountStoreStub {
	s := &discountStoreStub{discounts: map[int]*models.Discount{}}
	for _, d := range discounts {
		s.discounts[d.ID] = d
	}
	return s
}

func (s *discountStoreStub) GetAll() ([]models.Discount, error) {
	var out []models.Discount
	for _, d := range s.discounts {
		out = append(out, *d)
	}
	return out, nil
}

func (s *discountStoreStub) GetByID(id int) (*models.Discount, error) {
	d, ok := s.discounts[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *d
	return &copied, nil
}

func (s *discountStoreStub) GetProducts(discountID int) ([]models.Product, error) {
	return nil, nil
}

func (s *discountStoreStub) GetVariants(discountID int) ([]models.ProductVariant, error) {
	return nil, nil
}

func (s *discountStoreStub) Create(d *models.Discount, productIDs, variantIDs []int) error {
	d.ID = len(s.discounts) + 1
	stored := *d
	s.discounts[d.ID] = &stored
	s.createdProductIDs = productIDs
	s.createdVariantIDs = variantIDs
	return nil
}

func (s *discountStoreStub) Update(d *models.Discount, productIDs, variantIDs *[]int) error {
	stored := *d
	s.discounts[d.ID] = &stored
	s.updatedProductIDs = productIDs
	s.updatedVariantIDs = variantIDs
	return nil
}

func (s *discountStoreStub) Delete(id int) error {
	delete(s.discounts, id)
	return nil
}

func (s *discountStoreStub) DeactivateExpired() (int64, error) {
	return 0, nil
}

func TestCreateDiscountPassesAssociations(t *testing.T) {
	store := newDiscountStoreStub()
	svc := NewDiscountService(store)

	d, err := svc.CreateDiscount(&CreateDiscountRequest{
		Code:       "LEBARAN10",
		Type:       models.DiscountTypePercentage,
		Value:      10,
		IsActive:   true,
		ProductIDs: []int{1, 2},
		VariantIDs: []int{7},
	})
	require.NoError(t, err)

	assert.Equal(t, "LEBARAN10", d.Code)
	assert.Equal(t, []int{1, 2}, store.createdProductIDs)
	assert.Equal(t, []int{7}, store.createdVariantIDs)
}

func TestCreateDiscountRejectsMalformedDate(t *testing.T) {
	svc := NewDiscountService(newDiscountStoreStub())

	_, err := svc.CreateDiscount(&CreateDiscountRequest{
		Code:   "PROMO",
		Type:   models.DiscountTypeFixed,
		Value:  5000,
		EndsAt: "31-12-2026",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidDate)
}

func TestUpdateDiscountNilAssociationsLeftUntouched(t *testing.T) {
	store := newDiscountStoreStub(&models.Discount{ID: 1, Code: "PROMO", IsActive: true})
	svc := NewDiscountService(store)

	value := 15.0
	_, err := svc.UpdateDiscount(1, &UpdateDiscountRequest{Value: &value})
	require.NoError(t, err)

	assert.Nil(t, store.updatedProductIDs)
	assert.Nil(t, store.updatedVariantIDs)
	assert.Equal(t, 15.0, store.discounts[1].Value)
}

func TestUpdateDiscountReplacesAssociations(t *testing.T) {
	store := newDiscountStoreStub(&models.Discount{ID: 1, Code: "PROMO"})
	svc := NewDiscountService(store)

	productIDs := []int{3, 4}
	variantIDs := []int{}
	_, err := svc.UpdateDiscount(1, &UpdateDiscountRequest{
		ProductIDs: &productIDs,
		VariantIDs: &variantIDs,
	})
	require.NoError(t, err)

	require.NotNil(t, store.updatedProductIDs)
	assert.Equal(t, []int{3, 4}, *store.updatedProductIDs)
	require.NotNil(t, store.updatedVariantIDs)
	assert.Empty(t, *store.updatedVariantIDs)
}

func TestUpdateDiscountClearsEndDate(t *testing.T) {
	endsAt := time.Now().Add(24 * time.Hour)
	store := newDiscountStoreStub(&models.Discount{ID: 1, Code: "PROMO", EndsAt: &endsAt})
	svc := NewDiscountService(store)

	empty := ""
	d, err := svc.UpdateDiscount(1, &UpdateDiscountRequest{EndsAt: &empty})
	require.NoError(t, err)

	assert.Nil(t, d.EndsAt)
}

func TestUpdateDiscountMalformedDate(t *testing.T) {
	store := newDiscountStoreStub(&models.Discount{ID: 1, Code: "PROMO"})
	svc := NewDiscountService(store)

	bad := "next tuesday"
	_, err := svc.UpdateDiscount(1, &UpdateDiscountRequest{StartsAt: &bad})
	assert.ErrorIs(t, err, utils.ErrInvalidDate)
}

func TestGetDiscountNotFound(t *testing.T) {
	svc := NewDiscountService(newDiscountStoreStub())

	_, err := svc.GetDiscount(99)
	assert.ErrorIs(t, err, utils.ErrDiscountNotFound)
}
