package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/tokoprima/admin-api/internal/models"
)

// DiscountRepository handles data access for discounts and their
// product/variant associations.
type DiscountRepository struct {
	db *sqlx.DB
}

// NewDiscountRepository creates a new DiscountRepository.
func NewDiscountRepository(db *sqlx.DB) *DiscountRepository {
	return &DiscountRepository{db: db}
}

// GetAll returns all discounts ordered by code.
func (r *DiscountRepository) GetAll() ([]models.Discount, error) {
	const q = `SELECT * FROM discounts ORDER BY code`
	var discounts []models.Discount
	if err := r.db.Select(&discounts, q); err != nil {
		return nil, err
	}
	return discounts, nil
}

// GetByID returns a single discount by id without associations resolved.
func (r *DiscountRepository) GetByID(id int) (*models.Discount, error) {
	var d models.Discount
	if err := r.db.Get(&d, `SELECT * FROM discounts WHERE id = $1`, id); err != nil {
		return nil, err
	}
	return &d, nil
}

// GetProducts returns the products associated with a discount.
func (r *DiscountRepository) GetProducts(discountID int) ([]models.Product, error) {
	const q = `
		SELECT p.* FROM products p
		JOIN discount_products dp ON dp.product_id = p.id
		WHERE dp.discount_id = $1
		ORDER BY p.name`

	var products []models.Product
	if err := r.db.Select(&products, q, discountID); err != nil {
		return nil, err
	}
	return products, nil
}

// GetVariants returns the variants associated with a discount.
func (r *DiscountRepository) GetVariants(discountID int) ([]models.ProductVariant, error) {
	const q = `
		SELECT v.* FROM product_variants v
		JOIN discount_variants dv ON dv.variant_id = v.id
		WHERE dv.discount_id = $1
		ORDER BY v.sku`

	var variants []models.ProductVariant
	if err := r.db.Select(&variants, q, discountID); err != nil {
		return nil, err
	}
	return variants, nil
}

// Create inserts a discount together with its initial association sets.
func (r *DiscountRepository) Create(d *models.Discount, productIDs, variantIDs []int) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO discounts (code, description, type, value, usage_limit, starts_at, ends_at, is_active, min_subtotal)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`
	if err := tx.QueryRowx(query,
		d.Code, d.Description, d.Type, d.Value, d.UsageLimit,
		d.StartsAt, d.EndsAt, d.IsActive, d.MinSubtotal,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return err
	}

	if err := insertAssociations(tx, `INSERT INTO discount_products (discount_id, product_id) VALUES ($1, $2)`, d.ID, productIDs); err != nil {
		return err
	}
	if err := insertAssociations(tx, `INSERT INTO discount_variants (discount_id, variant_id) VALUES ($1, $2)`, d.ID, variantIDs); err != nil {
		return err
	}

	return tx.Commit()
}

// Update applies the discount fields and, when productIDs or variantIDs is
// non-nil, replaces the corresponding association set with exactly those ids.
// A nil slice pointer leaves the set untouched; field update and replacement
// run in one transaction.
func (r *DiscountRepository) Update(d *models.Discount, productIDs, variantIDs *[]int) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		UPDATE discounts
		SET code = $1, description = $2, type = $3, value = $4, usage_limit = $5,
		    starts_at = $6, ends_at = $7, is_active = $8, min_subtotal = $9, updated_at = NOW()
		WHERE id = $10
		RETURNING updated_at
	`
	if err := tx.QueryRowx(query,
		d.Code, d.Description, d.Type, d.Value, d.UsageLimit,
		d.StartsAt, d.EndsAt, d.IsActive, d.MinSubtotal, d.ID,
	).Scan(&d.UpdatedAt); err != nil {
		return err
	}

	if productIDs != nil {
		if _, err := tx.Exec(`DELETE FROM discount_products WHERE discount_id = $1`, d.ID); err != nil {
			return err
		}
		if err := insertAssociations(tx, `INSERT INTO discount_products (discount_id, product_id) VALUES ($1, $2)`, d.ID, *productIDs); err != nil {
			return err
		}
	}

	if variantIDs != nil {
		if _, err := tx.Exec(`DELETE FROM discount_variants WHERE discount_id = $1`, d.ID); err != nil {
			return err
		}
		if err := insertAssociations(tx, `INSERT INTO discount_variants (discount_id, variant_id) VALUES ($1, $2)`, d.ID, *variantIDs); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Delete deletes a discount by ID. Join rows go with it via ON DELETE CASCADE.
func (r *DiscountRepository) Delete(id int) error {
	_, err := r.db.Exec(`DELETE FROM discounts WHERE id = $1`, id)
	return err
}

// DeactivateExpired flips is_active off for discounts whose end date passed.
// Returns the number of rows affected.
func (r *DiscountRepository) DeactivateExpired() (int64, error) {
	res, err := r.db.Exec(`
		UPDATE discounts
		SET is_active = false, updated_at = NOW()
		WHERE is_active = true AND ends_at IS NOT NULL AND ends_at < NOW()
	`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func insertAssociations(tx *sqlx.Tx, query string, discountID int, ids []int) error {
	for _, id := range ids {
		if _, err := tx.Exec(query, discountID, id); err != nil {
			return err
		}
	}
	return nil
}
