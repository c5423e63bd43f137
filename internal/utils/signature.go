package utils

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
)

// GenerateSignature creates an HMAC-SHA512 signature over payload.
// Paystack signs webhook bodies with the account secret key using SHA512.
func GenerateSignature(payload []byte, secret string) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature validates an HMAC-SHA512 signature in constant time.
func VerifySignature(payload []byte, signature, secret string) bool {
	expected := GenerateSignature(payload, secret)
	return hmac.Equal([]byte(signature), []byte(expected))
}
