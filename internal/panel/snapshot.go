package panel

import "shopadmin/internal/domain"

// Snapshot is a point-in-time copy of the panel state, safe to read without
// locking.
type Snapshot struct {
	Phase         domain.Phase
	Shopkeepers   []domain.Shopkeeper
	Loading       bool
	ActionLoading bool
	Message       string

	selected map[domain.ShopkeeperID]struct{}
}

// Authenticated reports whether a session token is held.
func (s Snapshot) Authenticated() bool { return s.Phase == domain.Authenticated }

// IsSelected reports whether id is in the selection.
func (s Snapshot) IsSelected(id domain.ShopkeeperID) bool {
	_, ok := s.selected[id]
	return ok
}

// SelectedIDs returns the selection in list order.
func (s Snapshot) SelectedIDs() []domain.ShopkeeperID {
	ids := make([]domain.ShopkeeperID, 0, len(s.selected))
	for _, sk := range s.Shopkeepers {
		if s.IsSelected(sk.ID) {
			ids = append(ids, sk.ID)
		}
	}
	return ids
}

// TotalPending is the number of listed shopkeepers.
func (s Snapshot) TotalPending() int { return len(s.Shopkeepers) }

// SelectedCount is the size of the selection.
func (s Snapshot) SelectedCount() int { return len(s.selected) }

// TotalShops sums the shops of all listed shopkeepers.
func (s Snapshot) TotalShops() int { return domain.CountShops(s.Shopkeepers) }

// AllSelected reports whether the selection covers the whole list, which is
// when select-all turns into deselect-all.
func (s Snapshot) AllSelected() bool { return len(s.selected) == len(s.Shopkeepers) }
