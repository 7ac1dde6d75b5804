package vehicles

import "errors"

var (
	ErrVehicleNotFound      = errors.New("Vehicle not found")
	ErrPlateRequired        = errors.New("A valid plate is required")
	ErrPlateTaken           = errors.New("Plate already registered")
	ErrInvalidVehicleType   = errors.New("Unknown vehicle type")
	ErrTypeImmutable        = errors.New("Vehicle type cannot be changed after creation")
	ErrInvalidAxles         = errors.New("Axle count must be at least 1")
	ErrInvalidStatus        = errors.New("Invalid status")
	ErrStatusViaSale        = errors.New("Sold status can only be set through a sale")
	ErrVehicleSold          = errors.New("Vehicle is sold")
	ErrNotTraction          = errors.New("Vehicle cannot tow a composition")
	ErrNotTrailer           = errors.New("Vehicle is not a trailer")
	ErrSelfLink             = errors.New("Vehicle cannot be linked to itself")
	ErrTrailerNotActive     = errors.New("Trailer must be active to be linked")
	ErrTrailerAlreadyLinked = errors.New("Trailer is already linked to a composition")
	ErrTrailerNotLinked     = errors.New("Trailer is not part of this composition")
)
