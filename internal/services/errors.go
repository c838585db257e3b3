package services

import "errors"

// Sentinel errors handlers map onto HTTP statuses.
var (
	ErrNotFound           = errors.New("resource not found or access denied")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnitOccupied       = errors.New("unit already has an active lease")
	ErrInvalidTransition  = errors.New("status transition not allowed")
	ErrPropertyHasUnits   = errors.New("property still has units")
	ErrLeaseNotActive     = errors.New("lease is not active")
	ErrAlreadyPaid        = errors.New("payment already recorded")
)
