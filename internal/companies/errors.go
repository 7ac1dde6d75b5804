package companies

import "errors"

var (
	ErrCompanyNotFound = errors.New("Company not found")
	ErrNameRequired    = errors.New("Company name is required")
	ErrCNPJTaken       = errors.New("CNPJ already registered")
)
