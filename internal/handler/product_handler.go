package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tokoprima/admin-api/internal/service"
	"github.com/tokoprima/admin-api/internal/utils"
)

// ProductHandler handles catalog reads and scanned-code lookups.
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler constructs a ProductHandler.
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// ListProducts handles GET /v1/products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.productService.ListProducts()
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve products")
		return
	}
	utils.Success(c, 200, "Products retrieved", products)
}

// GetProduct handles GET /v1/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid product ID")
		return
	}

	product, err := h.productService.GetProduct(id)
	if err != nil {
		if errors.Is(err, utils.ErrProductNotFound) {
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve product")
		return
	}

	utils.Success(c, 200, "Product retrieved", product)
}

// LookupByCode handles GET /v1/products/lookup?code=
func (h *ProductHandler) LookupByCode(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		utils.Error(c, 400, "INVALID_REQUEST", "code query parameter is required")
		return
	}

	result, err := h.productService.LookupByCode(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, utils.ErrProductNotFound) {
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "No product matches the scanned code")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to look up product")
		return
	}

	utils.Success(c, 200, "Product resolved", result)
}
