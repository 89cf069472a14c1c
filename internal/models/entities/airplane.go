package entities

// Airplane is a bookable asset, read-only from this service's perspective.
type Airplane struct {
	ID         int64  `db:"id" json:"id"`
	TailNumber string `db:"tail_number" json:"code"`
	Name       string `db:"name" json:"name"`
	Color      string `db:"color" json:"color"`
}
