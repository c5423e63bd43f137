package handler

import (
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/tokoprima/admin-api/internal/utils"
	"github.com/tokoprima/admin-api/pkg/paystack"
)

// WebhookHandler handles incoming webhooks from the payment gateway.
type WebhookHandler struct {
	secretKey string
}

// NewWebhookHandler constructs a WebhookHandler. secretKey is the Paystack
// account secret used to sign webhook bodies.
func NewWebhookHandler(secretKey string) *WebhookHandler {
	return &WebhookHandler{secretKey: secretKey}
}

// HandlePaystackCallback handles POST /webhook/paystack
func (h *WebhookHandler) HandlePaystackCallback(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid body"})
		return
	}

	// Paystack signs the raw body with HMAC-SHA512 of the secret key.
	signature := c.GetHeader("x-paystack-signature")
	if !utils.VerifySignature(body, signature, h.secretKey) {
		log.Warn().Str("ip", c.ClientIP()).Msg("Webhook signature mismatch")
		c.JSON(401, gin.H{"error": "Invalid signature"})
		return
	}

	var event paystack.Event
	if err := json.Unmarshal(body, &event); err != nil {
		c.JSON(400, gin.H{"error": "Invalid JSON"})
		return
	}

	switch event.Event {
	case "charge.success":
		log.Info().
			Str("reference", event.Data.Reference).
			Int64("amount", event.Data.Amount).
			Str("channel", event.Data.Channel).
			Msg("Charge confirmed by gateway")
	default:
		log.Debug().Str("event", event.Event).Msg("Ignoring webhook event")
	}

	c.JSON(200, gin.H{"received": true})
}
