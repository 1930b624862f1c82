package domain

import (
	interfaces "shopadmin/internal/domain/interfaces"
	types "shopadmin/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	ShopkeeperID   = types.ShopkeeperID
	Timestamp      = types.Timestamp
	Shop           = types.Shop
	Shopkeeper     = types.Shopkeeper
	Credentials    = types.Credentials
	Phase          = types.Phase
	MutationResult = types.MutationResult
)

// Session phases.
const (
	Anonymous      = types.Anonymous
	Authenticating = types.Authenticating
	Authenticated  = types.Authenticated
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Backend       = interfaces.Backend
	KeyValueStore = interfaces.KeyValueStore
	Confirmer     = interfaces.Confirmer
	ConfirmFunc   = interfaces.ConfirmFunc
)

// CountShops sums the shops across all shopkeepers.
func CountShops(list []Shopkeeper) int { return types.CountShops(list) }
