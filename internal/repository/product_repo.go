package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/tokoprima/admin-api/internal/models"
)

// ProductRepository handles data access for products and their variants.
type ProductRepository struct {
	db *sqlx.DB
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// GetAll returns all products with their variants attached.
func (r *ProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Select(&products, `SELECT * FROM products ORDER BY name`); err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return products, nil
	}

	var variants []models.ProductVariant
	if err := r.db.Select(&variants, `SELECT * FROM product_variants ORDER BY sku`); err != nil {
		return nil, err
	}

	byProduct := make(map[int][]models.ProductVariant, len(products))
	for _, v := range variants {
		byProduct[v.ProductID] = append(byProduct[v.ProductID], v)
	}
	for i := range products {
		products[i].Variants = byProduct[products[i].ID]
	}
	return products, nil
}

// GetByID returns a single product by id with all its variants.
func (r *ProductRepository) GetByID(id int) (*models.Product, error) {
	var p models.Product
	if err := r.db.Get(&p, `SELECT * FROM products WHERE id = $1`, id); err != nil {
		return nil, err
	}

	variants, err := r.GetVariants(p.ID)
	if err != nil {
		return nil, err
	}
	p.Variants = variants
	return &p, nil
}

// GetByBarcode returns the first product whose barcode matches code.
func (r *ProductRepository) GetByBarcode(code string) (*models.Product, error) {
	var p models.Product
	if err := r.db.Get(&p, `SELECT * FROM products WHERE barcode = $1 LIMIT 1`, code); err != nil {
		return nil, err
	}

	variants, err := r.GetVariants(p.ID)
	if err != nil {
		return nil, err
	}
	p.Variants = variants
	return &p, nil
}

// GetVariantBySKU returns the first variant whose SKU matches code.
func (r *ProductRepository) GetVariantBySKU(sku string) (*models.ProductVariant, error) {
	var v models.ProductVariant
	if err := r.db.Get(&v, `SELECT * FROM product_variants WHERE sku = $1 LIMIT 1`, sku); err != nil {
		return nil, err
	}
	return &v, nil
}

// GetVariants returns all variants of a product ordered by SKU.
func (r *ProductRepository) GetVariants(productID int) ([]models.ProductVariant, error) {
	var variants []models.ProductVariant
	if err := r.db.Select(&variants, `SELECT * FROM product_variants WHERE product_id = $1 ORDER BY sku`, productID); err != nil {
		return nil, err
	}
	return variants, nil
}
