package ai

import (
	"fmt"
	"strings"
)

const itineraryPromptTemplate = `You are a travel planner. Create a %d-day itinerary for a trip to %s.
Traveller preferences: %s.

Respond with only a JSON array, one object per day, in this shape:
[
  {
    "day": 1,
    "activities": [
      {"name": "Activity name", "time": "09:00 AM", "cost": 25, "description": "One or two sentences."}
    ]
  }
]
Use numbers for "cost" in US dollars (0 when free). Include 3 to 5 activities per day.`

// BuildItineraryPrompt renders the generation prompt.
func BuildItineraryPrompt(destination string, days int, preferences string) string {
	preferences = strings.TrimSpace(preferences)
	if preferences == "" {
		preferences = "None"
	}
	return fmt.Sprintf(itineraryPromptTemplate, days, strings.TrimSpace(destination), preferences)
}
