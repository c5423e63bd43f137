package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/tokoprima/admin-api/internal/models"
)

// ShippingOptionRepository handles data access for shipping options.
type ShippingOptionRepository struct {
	db *sqlx.DB
}

// NewShippingOptionRepository creates a new ShippingOptionRepository.
func NewShippingOptionRepository(db *sqlx.DB) *ShippingOptionRepository {
	return &ShippingOptionRepository{db: db}
}

// GetAll returns all shipping options ordered by price.
func (r *ShippingOptionRepository) GetAll() ([]models.ShippingOption, error) {
	var options []models.ShippingOption
	if err := r.db.Select(&options, `SELECT * FROM shipping_options ORDER BY price, name`); err != nil {
		return nil, err
	}
	return options, nil
}

// GetByID returns a single shipping option by id.
func (r *ShippingOptionRepository) GetByID(id int) (*models.ShippingOption, error) {
	var o models.ShippingOption
	if err := r.db.Get(&o, `SELECT * FROM shipping_options WHERE id = $1`, id); err != nil {
		return nil, err
	}
	return &o, nil
}

// Create inserts a new shipping option.
func (r *ShippingOptionRepository) Create(o *models.ShippingOption) error {
	query := `
		INSERT INTO shipping_options (name, price, delivery_time, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowx(query, o.Name, o.Price, o.DeliveryTime, o.IsActive).
		Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
}

// Update updates an existing shipping option.
func (r *ShippingOptionRepository) Update(o *models.ShippingOption) error {
	query := `
		UPDATE shipping_options
		SET name = $1, price = $2, delivery_time = $3, is_active = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at
	`
	return r.db.QueryRowx(query, o.Name, o.Price, o.DeliveryTime, o.IsActive, o.ID).
		Scan(&o.UpdatedAt)
}

// Delete deletes a shipping option by ID.
func (r *ShippingOptionRepository) Delete(id int) error {
	_, err := r.db.Exec(`DELETE FROM shipping_options WHERE id = $1`, id)
	return err
}
