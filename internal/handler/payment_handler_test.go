package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokoprima/admin-api/internal/service"
	"github.com/tokoprima/admin-api/pkg/paystack"
)

type gatewayStub struct {
	resp *paystack.VerifyResponse
	err  error
}

func (g *gatewayStub) VerifyTransaction(ctx context.Context, reference string) (*paystack.VerifyResponse, error) {
	return g.resp, g.err
}

func newPaymentRouter(gateway *gatewayStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewPaymentHandler(service.NewPaymentService(gateway))

	r := gin.New()
	r.POST("/v1/payments/verify", h.VerifyPayment)
	return r
}

func postVerify(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/payments/verify", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestVerifyPaymentMissingReference(t *testing.T) {
	r := newPaymentRouter(&gatewayStub{})

	w := postVerify(r, `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST", errorCode(t, w.Body.Bytes()))
}

func TestVerifyPaymentRejected(t *testing.T) {
	r := newPaymentRouter(&gatewayStub{resp: &paystack.VerifyResponse{
		Status: true,
		Data:   paystack.VerifyData{Status: "abandoned", Reference: "ref-9"},
	}})

	w := postVerify(r, `{"reference": "ref-9"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VERIFICATION_FAILED", errorCode(t, w.Body.Bytes()))
}

func TestVerifyPaymentGatewayDown(t *testing.T) {
	r := newPaymentRouter(&gatewayStub{err: errors.New("connection refused")})

	w := postVerify(r, `{"reference": "ref-9"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestVerifyPaymentOK(t *testing.T) {
	r := newPaymentRouter(&gatewayStub{resp: &paystack.VerifyResponse{
		Status: true,
		Data: paystack.VerifyData{
			Status:    "success",
			Reference: "ref-9",
			Amount:    250000,
			Currency:  "NGN",
		},
	}})

	w := postVerify(r, `{"reference": "ref-9"}`)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Success bool                `json:"success"`
		Data    paystack.VerifyData `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "ref-9", resp.Data.Reference)
	assert.Equal(t, int64(250000), resp.Data.Amount)
}
