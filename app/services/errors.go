package services

import "errors"

// Sentinel errors returned by services. Controllers map these to HTTP
// status codes; anything else is a 500.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrInactiveGemstone   = errors.New("gemstone is not available")
	ErrDeleteBlocked      = errors.New("resource is referenced and cannot be deleted")
	ErrNotVerifiedBuyer   = errors.New("only verified buyers can review this gemstone")
	ErrUnknownExport      = errors.New("unknown export type")
)
