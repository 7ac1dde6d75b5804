package refuelings

import "errors"

var (
	ErrRefuelingNotFound = errors.New("Refueling not found")
	ErrAssetRefRequired  = errors.New("Exactly one of vehicle_id or refrigeration_unit_id is required")
	ErrLitersRequired    = errors.New("Liters must be a positive number")
	ErrVehicleNotFound   = errors.New("Vehicle not found")
	ErrUnitNotFound      = errors.New("Refrigeration unit not found")
)
