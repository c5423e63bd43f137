package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/tokoprima/admin-api/internal/models"
	"github.com/tokoprima/admin-api/internal/utils"
)

// ProductStore is the repository surface the product service depends on.
type ProductStore interface {
	GetAll() ([]models.Product, error)
	GetByID(id int) (*models.Product, error)
	GetByBarcode(code string) (*models.Product, error)
	GetVariantBySKU(sku string) (*models.ProductVariant, error)
}

// LookupCache caches resolved code lookups. A nil result with nil error is a miss.
type LookupCache interface {
	GetLookup(ctx context.Context, code string) (*models.LookupResult, error)
	SetLookup(ctx context.Context, code string, result *models.LookupResult) error
}

// ProductService resolves scanned codes and serves the read-only catalog.
type ProductService struct {
	products ProductStore
	cache    LookupCache
}

// NewProductService constructs a ProductService. cache may be nil to disable caching.
func NewProductService(products ProductStore, cache LookupCache) *ProductService {
	return &ProductService{products: products, cache: cache}
}

// ListProducts returns the catalog with variants.
func (s *ProductService) ListProducts() ([]models.Product, error) {
	return s.products.GetAll()
}

// GetProduct returns a single product with its variants.
func (s *ProductService) GetProduct(id int) (*models.Product, error) {
	p, err := s.products.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

// LookupByCode resolves a scanned code to a product using a two-tier fallback:
// barcode match first, then variant SKU. A SKU hit returns the owning product
// with all variants and the matching variant annotated. The barcode tier
// always wins; only the first match within a tier is used.
func (s *ProductService) LookupByCode(ctx context.Context, code string) (*models.LookupResult, error) {
	if s.cache != nil {
		cached, err := s.cache.GetLookup(ctx, code)
		if err != nil {
			log.Warn().Err(err).Str("code", code).Msg("Lookup cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	result, err := s.resolve(code)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetLookup(ctx, code, result); err != nil {
			log.Warn().Err(err).Str("code", code).Msg("Lookup cache write failed")
		}
	}
	return result, nil
}

func (s *ProductService) resolve(code string) (*models.LookupResult, error) {
	// Tier 1: direct barcode match.
	p, err := s.products.GetByBarcode(code)
	if err == nil {
		return &models.LookupResult{Product: *p}, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	// Tier 2: variant SKU match, re-fetching the owning product.
	v, err := s.products.GetVariantBySKU(code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrProductNotFound
		}
		return nil, err
	}

	owner, err := s.products.GetByID(v.ProductID)
	if err != nil {
		return nil, err
	}
	return &models.LookupResult{Product: *owner, MatchedVariant: v}, nil
}
