package models

import "time"

// Trip is a user-owned travel plan over a date range.
type Trip struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	Name          string    `json:"name"`
	Place         string    `json:"place"`
	Description   string    `json:"description"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	CoverPhotoURL string    `json:"coverPhoto,omitempty"`
	CoverPhotoID  string    `json:"-"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	Stops         []Stop    `json:"stops"`
}

// Days returns the inclusive number of calendar days the trip spans.
func (t Trip) Days() int {
	return DaysBetween(t.StartDate, t.EndDate)
}

// Stop is an ordered segment of a trip tied to one city.
type Stop struct {
	ID         string     `json:"id"`
	TripID     string     `json:"tripId"`
	City       string     `json:"city"`
	Country    string     `json:"country"`
	StartDate  time.Time  `json:"startDate"`
	EndDate    time.Time  `json:"endDate"`
	Sequence   int        `json:"sequence"`
	Activities []Activity `json:"activities"`
}

// Activity is a leaf item under a stop.
type Activity struct {
	ID          string  `json:"id"`
	StopID      string  `json:"stopId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Time        string  `json:"time"`
	Cost        float64 `json:"cost"`
	Position    int     `json:"position"`
}

// CreateTripRequest is the payload of POST /api/trips.
type CreateTripRequest struct {
	Name        string         `json:"name"`
	Place       string         `json:"place"`
	StartDate   string         `json:"startDate"`
	EndDate     string         `json:"endDate"`
	Description string         `json:"description"`
	Itinerary   []ItineraryDay `json:"itinerary"`
	// Generate asks the server to produce the itinerary when none is supplied.
	Generate bool `json:"generate"`
}

// UpdateTripRequest patches trip fields; nil fields are left unchanged.
type UpdateTripRequest struct {
	Name        *string `json:"name,omitempty"`
	Place       *string `json:"place,omitempty"`
	Description *string `json:"description,omitempty"`
	StartDate   *string `json:"startDate,omitempty"`
	EndDate     *string `json:"endDate,omitempty"`
}

// StopInput is a stop as edited in the itinerary builder.
type StopInput struct {
	City       string          `json:"city"`
	Country    string          `json:"country"`
	StartDate  string          `json:"startDate"`
	EndDate    string          `json:"endDate"`
	Activities []ActivityInput `json:"activities"`
}

// ActivityInput is an activity as edited in the itinerary builder.
type ActivityInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Time        string  `json:"time"`
	Cost        float64 `json:"cost"`
}

// DaysBetween counts calendar days from start to end inclusive.
func DaysBetween(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours()/24) + 1
}
