package game

import "fmt"

// UpgradeID names a purchasable upgrade or item.
type UpgradeID string

// Shop tier: table-priced, capped by table length.
const (
	UpSpeed     UpgradeID = "speed"
	UpFireRate  UpgradeID = "fire_rate"
	UpPierce    UpgradeID = "pierce"
	UpSize      UpgradeID = "size"
	UpMagnet    UpgradeID = "magnet"
	UpMaxHealth UpgradeID = "max_health"
	UpDamage    UpgradeID = "damage"
	UpCoinGain  UpgradeID = "coin_gain"
)

// Item tier: base cost scaled by the item's own level.
const (
	ItemDodge       UpgradeID = "dodge"
	ItemRegen       UpgradeID = "regen"
	ItemLifesteal   UpgradeID = "lifesteal"
	ItemCrit        UpgradeID = "crit"
	ItemAOE         UpgradeID = "aoe_on_kill"
	ItemMagnetBonus UpgradeID = "magnet_bonus"
	ItemBulletSpeed UpgradeID = "bullet_speed"
	ItemArmor       UpgradeID = "armor"
	ItemHeal        UpgradeID = "heal"
	ItemChest       UpgradeID = "chest"
)

// ShopUpgrades and ItemUpgrades list the ids in menu order.
var (
	ShopUpgrades = []UpgradeID{UpSpeed, UpFireRate, UpPierce, UpSize, UpMagnet, UpMaxHealth, UpDamage, UpCoinGain}
	ItemUpgrades = []UpgradeID{ItemDodge, ItemRegen, ItemLifesteal, ItemCrit, ItemAOE, ItemMagnetBonus, ItemBulletSpeed, ItemArmor, ItemHeal, ItemChest}
)

var shopCostTables = map[UpgradeID][]int{
	UpSpeed:     {10, 20, 35, 55},
	UpFireRate:  {12, 24, 40, 60, 85},
	UpPierce:    {15, 30, 50},
	UpSize:      {12, 24, 40},
	UpMagnet:    {10, 20, 32, 48},
	UpMaxHealth: {20, 40, 70, 110, 160},
	UpDamage:    {18, 36, 60, 90, 130},
	UpCoinGain:  {14, 28, 50},
}

var itemBaseCosts = map[UpgradeID]int{
	ItemDodge:       16,
	ItemRegen:       20,
	ItemLifesteal:   28,
	ItemCrit:        24,
	ItemAOE:         30,
	ItemMagnetBonus: 12,
	ItemBulletSpeed: 14,
	ItemArmor:       22,
	ItemHeal:        18,
	ItemChest:       26,
}

const (
	speedUpgradeFactor    = 1.12
	fireRateUpgradeFactor = 1.15
	magnetUpgradeRadius   = 60.0
	magnetBonusRadius     = 20.0
	itemCostGrowth        = 0.5

	chestCoinsMin = 5
	chestCoinsMax = 12
)

// CostTable maps every upgrade id to its current price. Zero means maxed.
type CostTable map[UpgradeID]int

// Cost returns the price of id, or 0 for maxed or unknown ids.
func (c CostTable) Cost(id UpgradeID) int {
	return c[id]
}

// level returns the counter that prices id. Armor, heal and chest have none.
func (l *UpgradeLevels) level(id UpgradeID) *int {
	switch id {
	case UpSpeed:
		return &l.Speed
	case UpFireRate:
		return &l.FireRate
	case UpPierce:
		return &l.Pierce
	case UpSize:
		return &l.Size
	case UpMagnet:
		return &l.Magnet
	case UpMaxHealth:
		return &l.MaxHealth
	case UpDamage:
		return &l.BulletDamage
	case UpCoinGain:
		return &l.CoinGain
	case ItemDodge:
		return &l.Dodge
	case ItemRegen:
		return &l.Regen
	case ItemLifesteal:
		return &l.Lifesteal
	case ItemCrit:
		return &l.Crit
	case ItemAOE:
		return &l.AOEOnKill
	case ItemMagnetBonus:
		return &l.MagnetBonus
	case ItemBulletSpeed:
		return &l.BulletSpeed
	default:
		return nil
	}
}

// Level reports the purchase count for id (0 for level-less items).
func (l UpgradeLevels) Level(id UpgradeID) int {
	if p := l.level(id); p != nil {
		return *p
	}
	return 0
}

// ComputeCosts prices every upgrade for the given levels.
func ComputeCosts(levels UpgradeLevels) CostTable {
	out := make(CostTable, len(shopCostTables)+len(itemBaseCosts))
	for id, table := range shopCostTables {
		if lvl := levels.Level(id); lvl >= 0 && lvl < len(table) {
			out[id] = table[lvl]
		} else {
			out[id] = 0
		}
	}
	for id, base := range itemBaseCosts {
		out[id] = int(float64(base) * (1 + itemCostGrowth*float64(levels.Level(id))))
	}
	return out
}

// IsShopUpgrade reports whether id is priced from a capped table.
func IsShopUpgrade(id UpgradeID) bool {
	_, ok := shopCostTables[id]
	return ok
}

// MaxLevel is the table length for shop upgrades and -1 for uncapped items.
func MaxLevel(id UpgradeID) int {
	if t, ok := shopCostTables[id]; ok {
		return len(t)
	}
	return -1
}

// PurchaseResult is the outcome of a purchase attempt. A declined purchase is
// a normal result, not an error.
type PurchaseResult struct {
	OK     bool
	ID     UpgradeID
	Cost   int
	Reason string // why it was declined, or what a chest granted
}

const (
	ReasonUnknown   = "unknown upgrade"
	ReasonMaxed     = "maxed"
	ReasonNoFunds   = "insufficient currency"
	ReasonNotPlayer = "no player"
)

// Purchase attempts to buy id for p. On success currency is deducted and the
// effect applied at once. rng is only drawn for chests.
func Purchase(p *Player, id UpgradeID, rng Rand) PurchaseResult {
	if p == nil {
		return PurchaseResult{ID: id, Reason: ReasonNotPlayer}
	}
	costs := ComputeCosts(p.Levels)
	cost, known := costs[id]
	switch {
	case !known:
		return PurchaseResult{ID: id, Reason: ReasonUnknown}
	case cost <= 0:
		return PurchaseResult{ID: id, Reason: ReasonMaxed}
	case p.Coins < cost:
		return PurchaseResult{ID: id, Cost: cost, Reason: ReasonNoFunds}
	}
	p.Coins -= cost
	res := PurchaseResult{OK: true, ID: id, Cost: cost}
	res.Reason = applyUpgrade(p, id, rng)
	return res
}

// applyUpgrade performs the effect of one purchased level.
func applyUpgrade(p *Player, id UpgradeID, rng Rand) string {
	if lvl := p.Levels.level(id); lvl != nil {
		*lvl++
	}
	switch id {
	case UpSpeed:
		p.SpeedMultiplier *= speedUpgradeFactor
	case UpFireRate:
		p.FireRateMultiplier *= fireRateUpgradeFactor
	case UpMagnet:
		p.MagnetRadius += magnetUpgradeRadius
	case UpMaxHealth:
		p.MaxHealthBonus++
		p.Heal(1)
	case ItemMagnetBonus:
		p.MagnetRadius += magnetBonusRadius
	case ItemArmor:
		p.Armor++
	case ItemHeal:
		p.Heal(1)
	case ItemChest:
		return openChest(p, rng)
	}
	return ""
}

// openChest grants one random bonus and describes it.
func openChest(p *Player, rng Rand) string {
	switch rng.Intn(4) {
	case 0:
		p.Armor++
		return "armor +1"
	case 1:
		p.Heal(1)
		return "heal +1"
	case 2:
		p.Levels.BulletDamage++
		return "damage +1"
	default:
		n := chestCoinsMin + rng.Intn(chestCoinsMax-chestCoinsMin+1)
		p.Coins += n
		return fmt.Sprintf("coins +%d", n)
	}
}
