package constants

const (
	ViewData          = "view_data"
	ManageFleet       = "manage_fleet"
	RegisterRefueling = "register_refueling"
	SellAsset         = "sell_asset"
	ManageRegistry    = "manage_registry"
	ManageUsers       = "manage_users"
	AssignRole        = "assign_role"
	RemoveUser        = "remove_user"
)
