// Package hangar manages cosmetic ships: the catalog, which ships are
// unlocked, and which one is equipped. Ships are bought with stars.
package hangar

import (
	"slices"

	"github.com/syduan2016/space-math-adventure/internal/progress"
	"github.com/syduan2016/space-math-adventure/internal/storage"
)

// Ship is one cosmetic ship in the catalog.
type Ship struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Cost int    `json:"cost"` // stars; 0 means free
}

// DefaultShip is unlocked and equipped from the start.
const DefaultShip = "explorer"

// Catalog lists every ship in display order.
var Catalog = []Ship{
	{ID: "explorer", Name: "Explorer", Cost: 0},
	{ID: "comet", Name: "Comet", Cost: 50},
	{ID: "falcon", Name: "Star Falcon", Cost: 120},
	{ID: "nebula", Name: "Nebula Rider", Cost: 250},
	{ID: "nova", Name: "Supernova", Cost: 500},
}

// Hangar owns the equipped/unlocked ship state.
type Hangar struct {
	store    *storage.Store
	progress *progress.Engine
	equipped string
	unlocked []string
}

// New loads ship state from st, seeding the default ship.
func New(st *storage.Store, prog *progress.Engine) *Hangar {
	h := &Hangar{
		store:    st,
		progress: prog,
		equipped: DefaultShip,
		unlocked: []string{DefaultShip},
	}
	var equipped string
	if st.Get(storage.KeyEquippedShip, &equipped) && equipped != "" {
		h.equipped = equipped
	}
	var unlocked []string
	if st.Get(storage.KeyUnlockedShips, &unlocked) && len(unlocked) > 0 {
		h.unlocked = unlocked
	}
	return h
}

// Equipped returns the equipped ship's ID.
func (h *Hangar) Equipped() string {
	return h.equipped
}

// Unlocked reports whether the ship with id is owned.
func (h *Hangar) Unlocked(id string) bool {
	return slices.Contains(h.unlocked, id)
}

// Find returns the catalog entry for id.
func (h *Hangar) Find(id string) (Ship, bool) {
	for _, s := range Catalog {
		if s.ID == id {
			return s, true
		}
	}
	return Ship{}, false
}

// Equip makes an owned ship the active one.
func (h *Hangar) Equip(id string) bool {
	if !h.Unlocked(id) {
		return false
	}
	h.equipped = id
	h.store.Set(storage.KeyEquippedShip, id)
	return true
}

// Buy spends stars to unlock a catalog ship. Already-owned ships and
// insufficient balances both fail without side effects.
func (h *Hangar) Buy(id string) bool {
	ship, ok := h.Find(id)
	if !ok || h.Unlocked(id) {
		return false
	}
	if !h.progress.SpendStars(ship.Cost) {
		return false
	}
	h.unlocked = append(h.unlocked, id)
	h.store.Set(storage.KeyUnlockedShips, h.unlocked)
	return true
}
