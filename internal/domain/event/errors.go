package event

import "errors"

var (
	ErrEventNotFound     = errors.New("event not found")
	ErrInvalidEventName  = errors.New("event name cannot be empty")
	ErrInvalidDateRange  = errors.New("event end date cannot precede start date")
	ErrEventAccessDenied = errors.New("event access denied")
)
