package domain

// Skin represents an item definition in the catalog. Price and availability
// are managed by the store owners; the composition engine only reads them.
type Skin struct {
	ID        string  `json:"id" db:"id"`
	Name      string  `json:"name" db:"name"`
	BasePrice float64 `json:"base_price" db:"base_price"`
	Available bool    `json:"available" db:"available"`
	DropRate  float64 `json:"drop_rate,omitempty"` // Populated when the skin is returned as lootbox contents
}

// Sort orders accepted by filtered skin queries
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// IsValidOrder checks if an order string is one of the accepted sort orders
func IsValidOrder(order string) bool {
	return order == OrderAsc || order == OrderDesc
}
