package paystack

// VerifyResponse is the envelope returned by the transaction verify endpoint.
// Status reflects whether the API call itself succeeded; the transaction
// outcome lives in Data.Status.
type VerifyResponse struct {
	Status  bool       `json:"status"`
	Message string     `json:"message"`
	Data    VerifyData `json:"data"`

	// HTTPStatus is the transport status code of the response, filled by the client.
	HTTPStatus int `json:"-"`
}

// VerifyData describes a single transaction as reported by the gateway.
type VerifyData struct {
	ID              int64  `json:"id"`
	Status          string `json:"status"` // "success", "failed", "abandoned", ...
	Reference       string `json:"reference"`
	Amount          int64  `json:"amount"` // minor units
	Currency        string `json:"currency"`
	GatewayResponse string `json:"gateway_response"`
	Channel         string `json:"channel"`
	PaidAt          string `json:"paid_at"`
	CreatedAt       string `json:"created_at"`
}

// Event is the payload Paystack delivers to webhook endpoints.
type Event struct {
	Event string     `json:"event"`
	Data  VerifyData `json:"data"`
}
