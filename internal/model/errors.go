package model

import "errors"

// Common errors used across the application
var (
	// Input errors
	ErrInvalidName   = errors.New("player name must not be empty")
	ErrInvalidAmount = errors.New("amount must be a finite number of at least zero")

	// Ledger errors
	ErrPlayerNotFound    = errors.New("player not found")
	ErrResetNotConfirmed = errors.New("session reset was not confirmed")

	// Storage errors
	ErrKeyNotFound = errors.New("key not found")
)
