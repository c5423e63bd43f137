package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokoprima/admin-api/internal/utils"
	"github.com/tokoprima/admin-api/pkg/paystack"
)

type gatewayStub struct {
	resp *paystack.VerifyResponse
	err  error

	lastReference string
}

func (g *gatewayStub) VerifyTransaction(ctx context.Context, reference string) (*paystack.VerifyResponse, error) {
	g.lastReference = reference
	return g.resp, g.err
}

func TestVerifyPaymentSuccess(t *testing.T) {
	gateway := &gatewayStub{resp: &paystack.VerifyResponse{
		Status:  true,
		Message: "Verification successful",
		Data: paystack.VerifyData{
			Status:    "success",
			Reference: "ref-123",
			Amount:    150000,
			Currency:  "NGN",
		},
	}}
	svc := NewPaymentService(gateway)

	data, err := svc.VerifyPayment(context.Background(), "ref-123")
	require.NoError(t, err)

	assert.Equal(t, "ref-123", gateway.lastReference)
	assert.Equal(t, "success", data.Status)
	assert.Equal(t, int64(150000), data.Amount)
}

func TestVerifyPaymentInnerStatusFailed(t *testing.T) {
	gateway := &gatewayStub{resp: &paystack.VerifyResponse{
		Status: true,
		Data:   paystack.VerifyData{Status: "failed", Reference: "ref-123"},
	}}
	svc := NewPaymentService(gateway)

	_, err := svc.VerifyPayment(context.Background(), "ref-123")
	assert.ErrorIs(t, err, utils.ErrVerificationFailed)
}

func TestVerifyPaymentAPIFailure(t *testing.T) {
	gateway := &gatewayStub{resp: &paystack.VerifyResponse{
		Status:  false,
		Message: "Transaction reference not found",
	}}
	svc := NewPaymentService(gateway)

	_, err := svc.VerifyPayment(context.Background(), "missing-ref")
	assert.ErrorIs(t, err, utils.ErrVerificationFailed)
}

func TestVerifyPaymentTransportError(t *testing.T) {
	cause := errors.New("connection refused")
	svc := NewPaymentService(&gatewayStub{err: cause})

	_, err := svc.VerifyPayment(context.Background(), "ref-123")
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, utils.ErrVerificationFailed)
}
