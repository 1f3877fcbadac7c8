package frontend

import (
	"fmt"

	"github.com/Garsondee/Arena-Shooter/internal/game"
)

// PanelMode is which purchase panel is showing.
type PanelMode int

const (
	PanelNone PanelMode = iota
	PanelShop
	PanelItems
)

// shopPageSize is how many shop upgrades fit on one page.
const shopPageSize = 6

// Shop tracks the open purchase panel and the shop page.
type Shop struct {
	Mode PanelMode
	Page int
}

// Toggle opens mode, or closes it when it is already open. Opening one panel
// closes the other.
func (s *Shop) Toggle(mode PanelMode) {
	if s.Mode == mode {
		s.Mode = PanelNone
		return
	}
	s.Mode = mode
}

func (s *Shop) Close() { s.Mode = PanelNone }

// SetPage switches between the two shop pages.
func (s *Shop) SetPage(p int) {
	s.Page = max(0, min(p, (len(game.ShopUpgrades)-1)/shopPageSize))
}

// Select maps a digit key to the upgrade it buys on the current panel.
// Shop rows keep their number across pages; the item panel uses 1..9 then 0.
func (s *Shop) Select(digit int) (game.UpgradeID, bool) {
	switch s.Mode {
	case PanelShop:
		i := digit - 1
		if i < 0 || i >= len(game.ShopUpgrades) || i/shopPageSize != s.Page {
			return "", false
		}
		return game.ShopUpgrades[i], true
	case PanelItems:
		i := digit - 1
		if digit == 0 {
			i = 9
		}
		if i < 0 || i >= len(game.ItemUpgrades) {
			return "", false
		}
		return game.ItemUpgrades[i], true
	}
	return "", false
}

// Row is one drawable line of a purchase panel.
type Row struct {
	Key        string
	ID         game.UpgradeID
	Level      int
	MaxLevel   int // negative when uncapped
	Cost       int // 0 when maxed
	Affordable bool
}

func (row Row) String() string {
	lvl := fmt.Sprintf("lv %d", row.Level)
	if row.MaxLevel > 0 {
		lvl = fmt.Sprintf("lv %d/%d", row.Level, row.MaxLevel)
	}
	price := fmt.Sprintf("%d", row.Cost)
	if row.Cost == 0 {
		price = "MAX"
	}
	return fmt.Sprintf("[%s] %-13s %-9s %s", row.Key, row.ID, lvl, price)
}

// Rows lists the entries of the open panel priced for r's player.
func (s *Shop) Rows(r *game.Run) []Row {
	var ids []game.UpgradeID
	first := 0
	switch s.Mode {
	case PanelShop:
		first = s.Page * shopPageSize
		last := min(first+shopPageSize, len(game.ShopUpgrades))
		ids = game.ShopUpgrades[first:last]
	case PanelItems:
		ids = game.ItemUpgrades
	default:
		return nil
	}
	costs := r.Costs()
	levels := r.Player.Levels
	rows := make([]Row, 0, len(ids))
	for i, id := range ids {
		key := fmt.Sprintf("%d", (first+i+1)%10)
		cost := costs.Cost(id)
		rows = append(rows, Row{
			Key:        key,
			ID:         id,
			Level:      levels.Level(id),
			MaxLevel:   game.MaxLevel(id),
			Cost:       cost,
			Affordable: cost > 0 && cost <= r.Player.Coins,
		})
	}
	return rows
}
