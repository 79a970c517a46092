package models

import "time"

// Generation outcomes.
const (
	GenerationOK        = "ok"
	GenerationCached    = "cached"
	GenerationNoJSON    = "no_json"
	GenerationMalformed = "malformed"
	GenerationFailed    = "failed"
)

// GenerationRecord is one itinerary generation attempt, kept for debugging model output.
type GenerationRecord struct {
	ID          string    `bson:"id" json:"id"`
	UserID      string    `bson:"userId" json:"userId"`
	Destination string    `bson:"destination" json:"destination"`
	Days        int       `bson:"days" json:"days"`
	Preferences string    `bson:"preferences" json:"preferences"`
	Model       string    `bson:"model" json:"model"`
	Prompt      string    `bson:"prompt" json:"prompt"`
	RawResponse string    `bson:"rawResponse" json:"rawResponse"`
	Outcome     string    `bson:"outcome" json:"outcome"`
	Error       string    `bson:"error,omitempty" json:"error,omitempty"`
	LatencyMS   int64     `bson:"latencyMs" json:"latencyMs"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}
