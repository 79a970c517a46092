package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ItineraryDay is one day of a generated itinerary.
type ItineraryDay struct {
	Day        int                 `json:"day"`
	Activities []ItineraryActivity `json:"activities"`
}

// ItineraryActivity is an activity suggested for a day.
type ItineraryActivity struct {
	Name        string `json:"name"`
	Time        string `json:"time"`
	Cost        Cost   `json:"cost"`
	Description string `json:"description"`
}

// GenerateItineraryRequest is the payload of POST /api/ai/generate.
type GenerateItineraryRequest struct {
	Destination string `json:"destination"`
	Days        int    `json:"days"`
	Preferences string `json:"preferences"`
}

// Cost is an amount that decodes from a JSON number or a numeric string
// such as "$25" or "25.50 USD". Anything unparseable decodes to zero.
type Cost float64

func (c *Cost) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*c = Cost(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*c = 0
		return nil
	}
	*c = Cost(parseCostString(s))
	return nil
}

func parseCostString(s string) float64 {
	var b strings.Builder
	seenDigit := false
	for _, r := range s {
		switch {
		case r == '-' && !seenDigit:
			// sign before the amount, e.g. "-25" or "-$25"
			if b.Len() == 0 {
				b.WriteRune(r)
			}
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			seenDigit = true
		case r == '.' && seenDigit:
			b.WriteRune(r)
		case r == ',':
			// thousands separator
		case seenDigit:
			// stop at the first non numeric rune after the amount, e.g. "20-30"
			return parseFloatOrZero(b.String())
		}
	}
	return parseFloatOrZero(b.String())
}

func parseFloatOrZero(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "."), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
