package service

import "errors"

var (
	ErrProductNotFound    = errors.New("no product found")
	ErrInvalidVariant     = errors.New("variant is missing or malformed")
	ErrEmailTaken         = errors.New("email is already present")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrOrderNotFound      = errors.New("no order matches the gateway order id")
	ErrAmountMismatch     = errors.New("captured amount does not match the order")
	ErrOrderFailed        = errors.New("order already failed")
)
