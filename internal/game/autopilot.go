package game

import "math"

const (
	autopilotKiteRadius   = 170.0 // enemies closer than this push the pilot away
	autopilotBulletRadius = 90.0
	autopilotCenterPull   = 0.002 // weak drift back toward the arena centre
)

// Autopilot plays a run without a human: it kites away from nearby threats,
// sweeps up coins when nothing is close, and fires at the nearest enemy.
// The headless report and the scripted tests drive runs with it.
type Autopilot struct {
	KiteRadius   float64
	BulletRadius float64
}

func NewAutopilot() *Autopilot {
	return &Autopilot{KiteRadius: autopilotKiteRadius, BulletRadius: autopilotBulletRadius}
}

// Intent decides the input for the next tick.
func (a *Autopilot) Intent(r *Run) Intent {
	p := r.Player
	var in Intent

	var nearest *Enemy
	bestSq := math.Inf(1)
	var away Vec2
	for _, e := range r.Enemies {
		d := p.Pos.DistSq(e.Pos)
		if d < bestSq {
			bestSq, nearest = d, e
		}
		if reach := a.KiteRadius + e.Radius; d < reach*reach && d > 0 {
			away = away.Add(p.Pos.Sub(e.Pos).Scale(1 / d))
		}
	}
	for _, eb := range r.EnemyBullets {
		d := p.Pos.DistSq(eb.Pos)
		if d < a.BulletRadius*a.BulletRadius && d > 0 {
			away = away.Add(p.Pos.Sub(eb.Pos).Scale(1 / d))
		}
	}

	switch {
	case away.LenSq() > 0:
		in.Move = away
	case len(r.Coins) > 0:
		in.Move = nearestCoin(r.Coins, p.Pos).Sub(p.Pos)
	}
	in.Move = in.Move.Add(r.Bounds.Center().Sub(p.Pos).Scale(autopilotCenterPull * in.Move.Len()))

	if nearest != nil {
		in.Aim = nearest.Pos
		in.Fire = true
	}
	return in
}

func nearestCoin(coins []*Coin, from Vec2) Vec2 {
	best := coins[0].Pos
	bestSq := from.DistSq(best)
	for _, c := range coins[1:] {
		if d := from.DistSq(c.Pos); d < bestSq {
			best, bestSq = c.Pos, d
		}
	}
	return best
}

// Shop spends the player's coins, always buying the cheapest affordable
// upgrade, until nothing is affordable. Upgrades without a gameplay effect,
// instant heals and chests are skipped.
func (a *Autopilot) Shop(r *Run) []PurchaseResult {
	var bought []PurchaseResult
	for {
		id, ok := cheapestAffordable(r.Costs(), r.Player.Coins)
		if !ok {
			return bought
		}
		res := r.Buy(id)
		if !res.OK {
			return bought
		}
		bought = append(bought, res)
	}
}

func cheapestAffordable(costs CostTable, coins int) (UpgradeID, bool) {
	var best UpgradeID
	bestCost := 0
	for _, list := range [][]UpgradeID{ShopUpgrades, ItemUpgrades} {
		for _, id := range list {
			switch id {
			case UpCoinGain, ItemCrit, ItemHeal, ItemChest:
				continue
			}
			c := costs.Cost(id)
			if c <= 0 || c > coins {
				continue
			}
			if bestCost == 0 || c < bestCost {
				best, bestCost = id, c
			}
		}
	}
	return best, bestCost > 0
}
