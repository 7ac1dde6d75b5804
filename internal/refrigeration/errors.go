package refrigeration

import "errors"

var (
	ErrUnitNotFound      = errors.New("Refrigeration unit not found")
	ErrIdentifierTaken   = errors.New("Identifier already registered")
	ErrIdentifierMissing = errors.New("Identifier is required")
	ErrInvalidStatus     = errors.New("Invalid status")
	ErrStatusViaSale     = errors.New("Sold status can only be set through a sale")
	ErrUnitSold          = errors.New("Refrigeration unit is sold")
	ErrUnitLinked        = errors.New("Refrigeration unit is linked to a vehicle; unlink it first")
	ErrVehicleNotFound   = errors.New("Vehicle not found")
	ErrVehicleHasUnit    = errors.New("Vehicle already has a refrigeration unit mounted")
)
