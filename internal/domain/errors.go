package domain

import "errors"

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrVariationNotFound  = errors.New("variation not found")
	ErrNoStoreConfigured  = errors.New("no commerce store configured")
	ErrInvalidBookingType = errors.New("invalid booking type")
	ErrInvalidID          = errors.New("invalid id")
)
