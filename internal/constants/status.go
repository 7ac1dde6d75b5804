package constants

// Asset status enum, shared by vehicles and refrigeration units.
const (
	StatusActive      = "active"
	StatusDefective   = "defective"
	StatusMaintenance = "maintenance"
	StatusInactive    = "inactive"
	StatusSold        = "sold"
)

// ValidStatuses is the set of allowed DB enum values for asset status.
var ValidStatuses = []string{StatusActive, StatusDefective, StatusMaintenance, StatusInactive, StatusSold}

// IsValidStatus returns true if status is one of the allowed enum values.
func IsValidStatus(status string) bool {
	for _, s := range ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// NonOperational returns true for statuses that take an asset out of service.
// A tractor losing operation releases its composed trailers; a trailer losing
// operation leaves its tractor's composition.
func NonOperational(status string) bool {
	return status == StatusMaintenance || status == StatusInactive
}
