package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/tokoprima/admin-api/internal/utils"
	"github.com/tokoprima/admin-api/pkg/paystack"
)

// PaymentGateway is the outbound surface the payment service depends on.
type PaymentGateway interface {
	VerifyTransaction(ctx context.Context, reference string) (*paystack.VerifyResponse, error)
}

// PaymentService relays verification requests to the payment gateway. It is
// a pass-through translator: no retry, no idempotency key, no persistence of
// the verification result.
type PaymentService struct {
	gateway PaymentGateway
}

// NewPaymentService constructs a PaymentService.
func NewPaymentService(gateway PaymentGateway) *PaymentService {
	return &PaymentService{gateway: gateway}
}

// VerifyPayment checks a transaction reference with the gateway. Success
// requires both an API-level success and the transaction status reported as
// "success"; any other combination collapses into ErrVerificationFailed.
func (s *PaymentService) VerifyPayment(ctx context.Context, reference string) (*paystack.VerifyData, error) {
	resp, err := s.gateway.VerifyTransaction(ctx, reference)
	if err != nil {
		log.Error().Err(err).Str("reference", reference).Msg("Gateway verification call failed")
		return nil, err
	}

	if !resp.Status || resp.Data.Status != "success" {
		log.Info().
			Str("reference", reference).
			Bool("api_status", resp.Status).
			Str("transaction_status", resp.Data.Status).
			Msg("Payment verification rejected")
		return nil, utils.ErrVerificationFailed
	}

	return &resp.Data, nil
}
