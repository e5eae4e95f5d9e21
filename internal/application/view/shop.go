package view

import (
	"time"

	"github.com/younwookim/td/internal/application/state"
	"github.com/younwookim/td/internal/application/system"
	"github.com/younwookim/td/internal/domain/entity"
)

// ShopEntry is one tower offered in the sidebar
type ShopEntry struct {
	Key         int // number key that selects it
	Type        entity.TowerType
	Name        string
	Description string
	Cost        int
	Damage      int
	Range       float64
	ShotsPerSec float64
	Color       string
	Affordable  bool
	Selected    bool
}

// Shop lists the towers in shop order with their affordability
func Shop(catalog *system.Catalog, st *state.GameState) []ShopEntry {
	types := catalog.TowerTypes()
	entries := make([]ShopEntry, 0, len(types))
	for i, t := range types {
		stats, _ := catalog.Tower(t)
		entries = append(entries, ShopEntry{
			Key:         i + 1,
			Type:        t,
			Name:        stats.Name,
			Description: stats.Description,
			Cost:        stats.Cost,
			Damage:      stats.Damage,
			Range:       stats.Range,
			ShotsPerSec: float64(time.Second) / float64(stats.FireInterval),
			Color:       stats.Color,
			Affordable:  st.Gold >= stats.Cost,
			Selected:    st.Selected == t,
		})
	}
	return entries
}

// Toggle returns the selection that clicking e should produce:
// clicking the selected entry clears the selection.
func (e ShopEntry) Toggle() entity.TowerType {
	if e.Selected {
		return entity.TowerNone
	}
	return e.Type
}

// WavesSurvived is the number of waves completed before the current one
func WavesSurvived(st *state.GameState) int {
	if st.Wave <= 1 {
		return 0
	}
	return st.Wave - 1
}
