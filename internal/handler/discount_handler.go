package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tokoprima/admin-api/internal/service"
	"github.com/tokoprima/admin-api/internal/utils"
)

// DiscountHandler handles discount CRUD HTTP endpoints.
type DiscountHandler struct {
	discountService *service.DiscountService
}

// NewDiscountHandler constructs a DiscountHandler.
func NewDiscountHandler(discountService *service.DiscountService) *DiscountHandler {
	return &DiscountHandler{discountService: discountService}
}

// ListDiscounts handles GET /v1/discounts
func (h *DiscountHandler) ListDiscounts(c *gin.Context) {
	discounts, err := h.discountService.ListDiscounts()
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve discounts")
		return
	}
	utils.Success(c, 200, "Discounts retrieved", discounts)
}

// CreateDiscount handles POST /v1/discounts
func (h *DiscountHandler) CreateDiscount(c *gin.Context) {
	var req service.CreateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	discount, err := h.discountService.CreateDiscount(&req)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidDate) {
			utils.Error(c, 400, "INVALID_DATE", "Dates must be RFC 3339 formatted")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to create discount")
		return
	}

	utils.Success(c, 200, "Discount created successfully", discount)
}

// GetDiscount handles GET /v1/discounts/:id
func (h *DiscountHandler) GetDiscount(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid discount ID")
		return
	}

	discount, err := h.discountService.GetDiscount(id)
	if err != nil {
		if errors.Is(err, utils.ErrDiscountNotFound) {
			utils.Error(c, 404, "DISCOUNT_NOT_FOUND", "Discount not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve discount")
		return
	}

	utils.Success(c, 200, "Discount retrieved", discount)
}

// UpdateDiscount handles PATCH /v1/discounts/:id
func (h *DiscountHandler) UpdateDiscount(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid discount ID")
		return
	}

	var req service.UpdateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	discount, err := h.discountService.UpdateDiscount(id, &req)
	if err != nil {
		if errors.Is(err, utils.ErrDiscountNotFound) {
			utils.Error(c, 404, "DISCOUNT_NOT_FOUND", "Discount not found")
			return
		}
		if errors.Is(err, utils.ErrInvalidDate) {
			utils.Error(c, 400, "INVALID_DATE", "Dates must be RFC 3339 formatted")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to update discount")
		return
	}

	utils.Success(c, 200, "Discount updated successfully", discount)
}

// DeleteDiscount handles DELETE /v1/discounts/:id
func (h *DiscountHandler) DeleteDiscount(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid discount ID")
		return
	}

	if err := h.discountService.DeleteDiscount(id); err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to delete discount")
		return
	}

	utils.Success(c, 200, "Discount deleted successfully", nil)
}
