package models

// BudgetSummary totals the activity costs of a trip.
type BudgetSummary struct {
	TripID        string       `json:"tripId"`
	Total         float64      `json:"total"`
	DailyAverage  float64      `json:"dailyAverage"`
	ActivityCount int          `json:"activityCount"`
	Stops         []StopBudget `json:"stops"`
}

// StopBudget is the cost subtotal of a single stop.
type StopBudget struct {
	StopID   string  `json:"stopId"`
	City     string  `json:"city"`
	Sequence int     `json:"sequence"`
	Total    float64 `json:"total"`
}
