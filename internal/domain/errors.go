package domain

import "errors"

// Sentinel errors for the domain layer.
var (
	ErrWidgetState = errors.New("widget state unavailable")
)
