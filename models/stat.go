package models

// Counts backs the admin dashboard header. The revinue key is what the
// dashboard frontend reads, so the spelling stays.
type Counts struct {
	UserCount  int64   `json:"userCount"`
	MenuCount  int64   `json:"menuCount"`
	OrderCount int64   `json:"orderCount"`
	Revenue    float64 `json:"revinue"`
}

// CategoryStat is one row of the menu-stage chart.
type CategoryStat struct {
	Category string  `json:"category"`
	Count    int64   `json:"count"`
	Price    float64 `json:"price"`
}

// UserStage backs the per-user dashboard.
type UserStage struct {
	OrderCount   int64 `json:"orderCount"`
	ReviewCount  int64 `json:"reviewCount"`
	BookingCount int64 `json:"bookingCount"`
	PaymentCount int64 `json:"paymentCount"`
}
