package service

import (
	"database/sql"
	"errors"

	"github.com/tokoprima/admin-api/internal/models"
	"github.com/tokoprima/admin-api/internal/utils"
)

// ShippingOptionStore is the repository surface the shipping service depends on.
type ShippingOptionStore interface {
	GetAll() ([]models.ShippingOption, error)
	GetByID(id int) (*models.ShippingOption, error)
	Create(o *models.ShippingOption) error
	Update(o *models.ShippingOption) error
	Delete(id int) error
}

// ShippingService implements shipping option management.
type ShippingService struct {
	options ShippingOptionStore
}

// NewShippingService constructs a ShippingService.
func NewShippingService(options ShippingOptionStore) *ShippingService {
	return &ShippingService{options: options}
}

// CreateShippingOptionRequest is the payload for creating a shipping option.
// Price is a pointer so that an explicit 0 passes the required check; there is
// no non-negativity rule.
type CreateShippingOptionRequest struct {
	Name         string   `json:"name" binding:"required"`
	Price        *float64 `json:"price" binding:"required"`
	DeliveryTime string   `json:"deliveryTime" binding:"required"`
	IsActive     *bool    `json:"isActive"`
}

// UpdateShippingOptionRequest is a partial update; nil fields are left untouched.
type UpdateShippingOptionRequest struct {
	Name         *string  `json:"name"`
	Price        *float64 `json:"price"`
	DeliveryTime *string  `json:"deliveryTime"`
	IsActive     *bool    `json:"isActive"`
}

// ListOptions returns all shipping options.
func (s *ShippingService) ListOptions() ([]models.ShippingOption, error) {
	return s.options.GetAll()
}

// CreateOption persists a new shipping option.
func (s *ShippingService) CreateOption(req *CreateShippingOptionRequest) (*models.ShippingOption, error) {
	o := &models.ShippingOption{
		Name:         req.Name,
		Price:        *req.Price,
		DeliveryTime: req.DeliveryTime,
		IsActive:     true,
	}
	if req.IsActive != nil {
		o.IsActive = *req.IsActive
	}
	if err := s.options.Create(o); err != nil {
		return nil, err
	}
	return o, nil
}

// UpdateOption applies the present fields.
func (s *ShippingService) UpdateOption(id int, req *UpdateShippingOptionRequest) (*models.ShippingOption, error) {
	o, err := s.options.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrShippingOptionNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		o.Name = *req.Name
	}
	if req.Price != nil {
		o.Price = *req.Price
	}
	if req.DeliveryTime != nil {
		o.DeliveryTime = *req.DeliveryTime
	}
	if req.IsActive != nil {
		o.IsActive = *req.IsActive
	}

	if err := s.options.Update(o); err != nil {
		return nil, err
	}
	return o, nil
}

// DeleteOption removes a shipping option by id.
func (s *ShippingService) DeleteOption(id int) error {
	return s.options.Delete(id)
}
