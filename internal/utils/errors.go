package utils

import "errors"

// Common application errors used across services.
var (
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailTaken             = errors.New("email already exists")
	ErrDiscountNotFound       = errors.New("discount not found")
	ErrProductNotFound        = errors.New("product not found")
	ErrShippingOptionNotFound = errors.New("shipping option not found")
	ErrVerificationFailed     = errors.New("payment verification failed")
	ErrInvalidDate            = errors.New("invalid date format")
)
