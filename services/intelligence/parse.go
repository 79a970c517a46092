package ai

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"tripcraft/models"
)

// ExtractItinerary decodes the span from the first '[' to the last ']' of the model text.
func ExtractItinerary(text string) ([]models.ItineraryDay, error) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end == -1 || end < start {
		return nil, ErrNoItinerary
	}

	var days []models.ItineraryDay
	if err := json.Unmarshal([]byte(text[start:end+1]), &days); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedItinerary, err)
	}
	return days, nil
}

// NormalizeItinerary orders days, renumbers them from 1, keeps at most maxDays
// and cleans up activities.
func NormalizeItinerary(days []models.ItineraryDay, maxDays int) []models.ItineraryDay {
	sorted := make([]models.ItineraryDay, len(days))
	copy(sorted, days)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Day < sorted[j].Day })

	if maxDays > 0 && len(sorted) > maxDays {
		sorted = sorted[:maxDays]
	}

	out := make([]models.ItineraryDay, 0, len(sorted))
	for i, d := range sorted {
		activities := make([]models.ItineraryActivity, 0, len(d.Activities))
		for _, a := range d.Activities {
			a.Name = strings.TrimSpace(a.Name)
			if a.Name == "" {
				continue
			}
			a.Time = strings.TrimSpace(a.Time)
			a.Description = strings.TrimSpace(a.Description)
			a.Cost = sanitizeCost(a.Cost)
			activities = append(activities, a)
		}
		out = append(out, models.ItineraryDay{Day: i + 1, Activities: activities})
	}
	return out
}

func sanitizeCost(c models.Cost) models.Cost {
	v := float64(c)
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return c
}

// hasActivities reports whether at least one day kept an activity.
func hasActivities(days []models.ItineraryDay) bool {
	for _, d := range days {
		if len(d.Activities) > 0 {
			return true
		}
	}
	return false
}
