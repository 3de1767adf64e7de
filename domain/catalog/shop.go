package catalog

// Well-known shop item ids referenced by goal definitions and services.
const (
	ItemLottoTicket = "lottoticket"
	ItemEggplant    = "eggplant"
)

// ShopItem is one purchasable catalog entry. EffectID links boost items to
// the effect registry; plain items leave it empty.
type ShopItem struct {
	ID          string
	Name        string
	Description string
	CoinCost    int64
	GemCost     int64
	EffectID    string
}

// GrantsEffect reports whether buying the item activates an effect.
func (i ShopItem) GrantsEffect() bool {
	return i.EffectID != ""
}

// ShopRegistry is an immutable id-indexed catalog of shop items.
type ShopRegistry struct {
	items map[string]ShopItem
}

// NewShopRegistry builds a registry from the given items.
func NewShopRegistry(items ...ShopItem) *ShopRegistry {
	m := make(map[string]ShopItem, len(items))
	for _, item := range items {
		m[item.ID] = item
	}
	return &ShopRegistry{items: m}
}

// Get returns the item for an id.
func (r *ShopRegistry) Get(id string) (ShopItem, bool) {
	item, ok := r.items[id]
	return item, ok
}

// DefaultShopItems returns the standard shop catalog. Boost prices are in
// gems, plain items in coins.
func DefaultShopItems() []ShopItem {
	return []ShopItem{
		{
			ID:          ItemLottoTicket,
			Name:        "Lottery Ticket",
			Description: "Enter the daily lottery.",
			CoinCost:    5_000,
		},
		{
			ID:          ItemEggplant,
			Name:        "Eggplant",
			Description: "Who has the biggest eggplant?",
			CoinCost:    10_000,
		},
		{
			ID:          "luckychip",
			Name:        "Lucky Chip",
			Description: "Refund your bet if you lose",
			GemCost:     3,
			EffectID:    "luckychip",
		},
		{
			ID:          "payout2x",
			Name:        "Payout x2",
			Description: "Double payout from winning for 15 minutes",
			GemCost:     2,
			EffectID:    "payout2x",
		},
		{
			ID:          "payout5x",
			Name:        "Payout x5",
			Description: "Five times payout from winning for 10 minutes",
			GemCost:     5,
			EffectID:    "payout5x",
		},
		{
			ID:          "payout10x",
			Name:        "Payout x10",
			Description: "Ten times payout from winning for 5 minutes",
			GemCost:     10,
			EffectID:    "payout10x",
		},
		{
			ID:          "payout50x",
			Name:        "Payout x50",
			Description: "Fifty times payout from winning for 2 minutes",
			GemCost:     20,
			EffectID:    "payout50x",
		},
		{
			ID:          "payout100x",
			Name:        "Payout x100",
			Description: "One hundred times payout from winning for 1 minute",
			GemCost:     25,
			EffectID:    "payout100x",
		},
	}
}

// NewDefaultShopRegistry builds a registry holding the standard catalog.
func NewDefaultShopRegistry() *ShopRegistry {
	return NewShopRegistry(DefaultShopItems()...)
}
