package sales

import "errors"

var (
	ErrVehicleNotFound  = errors.New("Vehicle not found")
	ErrUnitNotFound     = errors.New("Refrigeration unit not found")
	ErrAlreadySold      = errors.New("Asset is already sold")
	ErrNotSold          = errors.New("Asset is not sold")
	ErrNoPreviousStatus = errors.New("Sale snapshot has no previous status to restore")
	ErrBuyerRequired    = errors.New("Buyer is required")
	ErrUnitLinked       = errors.New("Refrigeration unit is linked to a vehicle; unlink it first")
)
