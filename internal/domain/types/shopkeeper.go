package types

import "encoding/json"

// Shop is a storefront owned by exactly one shopkeeper.
type Shop struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Tagline   string `json:"tagline"`
	LocalArea string `json:"localArea"`
}

// Shopkeeper is one pending registration awaiting verification.
type Shopkeeper struct {
	ID        ShopkeeperID `json:"id"`
	Name      string       `json:"name"`
	Username  string       `json:"username"`
	Phone     string       `json:"phone"`
	CreatedAt Timestamp    `json:"createdAt"`
	Shops     []Shop       `json:"shops"`
}

// UnmarshalJSON decodes a shopkeeper, normalising a missing shop list to empty.
func (s *Shopkeeper) UnmarshalJSON(data []byte) error {
	type alias Shopkeeper
	var aux alias
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Shops == nil {
		aux.Shops = []Shop{}
	}
	*s = Shopkeeper(aux)
	return nil
}

// CountShops sums the shops across all shopkeepers.
func CountShops(list []Shopkeeper) int {
	n := 0
	for _, sk := range list {
		n += len(sk.Shops)
	}
	return n
}
