package drivers

import "errors"

var (
	ErrDriverNotFound = errors.New("Driver not found")
	ErrNameRequired   = errors.New("Driver name is required")
	ErrCNHTaken       = errors.New("CNH number already registered")
	ErrInvalidStatus  = errors.New("Invalid driver status")
)
