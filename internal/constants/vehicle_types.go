package constants

// Vehicle category, derived from vehicle type and never stored.
const (
	CategoryTraction = "traction"
	CategoryTrailer  = "trailer"
)

// TractionTypes are vehicle types that tow (can own a composition).
var TractionTypes = []string{
	"Truck",
	"Cavalo Mecânico",
	"Toco",
	"VUC",
	"3/4",
	"Bitruck",
}

// TrailerTypes are vehicle types that are towed (can join a composition).
var TrailerTypes = []string{
	"Baú",
	"Carreta",
	"Graneleiro",
	"Container",
	"Caçamba",
	"Baú Frigorífico",
	"Sider",
	"Prancha",
	"Tanque",
	"Cegonheiro",
	"Rodotrem",
}

// VehicleCategory classifies a vehicle type into traction or trailer.
// Returns "" for unknown types; creation must reject those.
func VehicleCategory(vehicleType string) string {
	for _, t := range TractionTypes {
		if t == vehicleType {
			return CategoryTraction
		}
	}
	for _, t := range TrailerTypes {
		if t == vehicleType {
			return CategoryTrailer
		}
	}
	return ""
}
