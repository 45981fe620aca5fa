package entities

// Equipment is a rentable catalog item.
//
// TotalQuantity is the physical fleet size. Bookings are logical
// reservations resolved at query time; they never decrement this field.
type Equipment struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	TotalQuantity int     `json:"total_quantity"`
	DailyRate     float64 `json:"daily_rate"`
}
