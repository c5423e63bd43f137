package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tokoprima/admin-api/internal/service"
	"github.com/tokoprima/admin-api/internal/utils"
)

// ShippingHandler handles shipping option CRUD HTTP endpoints.
type ShippingHandler struct {
	shippingService *service.ShippingService
}

// NewShippingHandler constructs a ShippingHandler.
func NewShippingHandler(shippingService *service.ShippingService) *ShippingHandler {
	return &ShippingHandler{shippingService: shippingService}
}

// ListOptions handles GET /v1/shipping-options
func (h *ShippingHandler) ListOptions(c *gin.Context) {
	options, err := h.shippingService.ListOptions()
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve shipping options")
		return
	}
	utils.Success(c, 200, "Shipping options retrieved", options)
}

// CreateOption handles POST /v1/shipping-options
func (h *ShippingHandler) CreateOption(c *gin.Context) {
	var req service.CreateShippingOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "name, price, and deliveryTime are required")
		return
	}

	option, err := h.shippingService.CreateOption(&req)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to create shipping option")
		return
	}

	utils.Success(c, 200, "Shipping option created successfully", option)
}

// UpdateOption handles PATCH /v1/shipping-options/:id
func (h *ShippingHandler) UpdateOption(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid shipping option ID")
		return
	}

	var req service.UpdateShippingOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	option, err := h.shippingService.UpdateOption(id, &req)
	if err != nil {
		if errors.Is(err, utils.ErrShippingOptionNotFound) {
			utils.Error(c, 404, "SHIPPING_OPTION_NOT_FOUND", "Shipping option not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to update shipping option")
		return
	}

	utils.Success(c, 200, "Shipping option updated successfully", option)
}

// DeleteOption handles DELETE /v1/shipping-options/:id
func (h *ShippingHandler) DeleteOption(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid shipping option ID")
		return
	}

	if err := h.shippingService.DeleteOption(id); err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to delete shipping option")
		return
	}

	utils.Success(c, 200, "Shipping option deleted successfully", nil)
}
