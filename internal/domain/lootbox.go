package domain

// Lootbox represents a named reward container. BasePrice is derived from the
// members' expected value times PriceMarkupFactor and is never set directly.
type Lootbox struct {
	ID          int64   `json:"lootbox_id" db:"lootbox_id"`
	Name        string  `json:"name" db:"name"`
	Description string  `json:"description" db:"description"`
	BasePrice   float64 `json:"base_price" db:"base_price"`
}

// LootboxSkin is a membership edge between one lootbox and one skin.
// The (LootboxID, SkinID) pair is unique.
type LootboxSkin struct {
	LootboxID int64   `json:"lootbox_id" db:"lootbox_id"`
	SkinID    string  `json:"skin_id" db:"skin_id"`
	DropRate  float64 `json:"drop_rate" db:"drop_rate"`
}

// PriceMarkupFactor is the fixed multiplier applied to a lootbox's expected
// value to derive its sale price. Policy constant, not configurable.
const PriceMarkupFactor = 1.2

// DropRateSumEpsilon is the tolerance used when checking that assigned drop
// rates sum to 1. Tight enough to reject authoring mistakes, loose enough
// that a valid N-way float64 split passes.
const DropRateSumEpsilon = 1e-9
