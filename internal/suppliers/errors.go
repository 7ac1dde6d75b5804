package suppliers

import "errors"

var (
	ErrSupplierNotFound = errors.New("Supplier not found")
	ErrNameRequired     = errors.New("Supplier name is required")
	ErrCNPJTaken        = errors.New("CNPJ already registered")
)
