package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tokoprima/admin-api/internal/service"
)

// DiscountExpiryWorker periodically deactivates discounts whose end date passed.
type DiscountExpiryWorker struct {
	discountService *service.DiscountService
	interval        time.Duration
}

// NewDiscountExpiryWorker constructs a DiscountExpiryWorker.
func NewDiscountExpiryWorker(discountService *service.DiscountService, interval time.Duration) *DiscountExpiryWorker {
	return &DiscountExpiryWorker{
		discountService: discountService,
		interval:        interval,
	}
}

// Start begins the periodic expiry loop until context is canceled.
func (w *DiscountExpiryWorker) Start(ctx context.Context) {
	log.Info().Dur("interval", w.interval).Msg("Starting discount expiry worker")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.run()
		case <-ctx.Done():
			log.Info().Msg("Discount expiry worker stopped")
			return
		}
	}
}

func (w *DiscountExpiryWorker) run() {
	n, err := w.discountService.DeactivateExpired()
	if err != nil {
		log.Error().Err(err).Msg("Failed to deactivate expired discounts")
		return
	}
	if n > 0 {
		log.Info().Int64("count", n).Msg("Deactivated expired discounts")
	}
}
