package trip

import (
	"strconv"
	"strings"
	"time"

	"tripcraft/models"
)

// ItineraryToStops turns day i of the itinerary into stop i in the trip's place.
// Stop dates are start+i, clamped to the trip's end date.
func ItineraryToStops(days []models.ItineraryDay, place string, start, end time.Time) []models.Stop {
	stops := make([]models.Stop, 0, len(days))
	for i, d := range days {
		date := start.AddDate(0, 0, i)
		if date.After(end) {
			date = end
		}
		activities := make([]models.Activity, 0, len(d.Activities))
		for j, a := range d.Activities {
			activities = append(activities, models.Activity{
				Name:        a.Name,
				Description: a.Description,
				Time:        a.Time,
				Cost:        float64(a.Cost),
				Position:    j,
			})
		}
		stops = append(stops, models.Stop{
			City:       place,
			StartDate:  date,
			EndDate:    date,
			Sequence:   i,
			Activities: activities,
		})
	}
	return stops
}

// stopFromInput validates an edited stop against the trip's date range.
// Missing dates default to the trip range.
func stopFromInput(idx int, in models.StopInput, tripStart, tripEnd time.Time) (models.Stop, error) {
	prefix := "stops[" + strconv.Itoa(idx) + "]."

	city, err := requireText(prefix+"city", in.City)
	if err != nil {
		return models.Stop{}, err
	}

	start, end := tripStart, tripEnd
	if strings.TrimSpace(in.StartDate) != "" {
		if start, err = parseDate(prefix+"startDate", in.StartDate); err != nil {
			return models.Stop{}, err
		}
	}
	if strings.TrimSpace(in.EndDate) != "" {
		if end, err = parseDate(prefix+"endDate", in.EndDate); err != nil {
			return models.Stop{}, err
		}
	}
	if end.Before(start) {
		return models.Stop{}, invalid(prefix+"endDate", "must not be before startDate")
	}
	if start.Before(tripStart) || end.After(tripEnd) {
		return models.Stop{}, invalid(prefix+"startDate", "must lie within the trip dates")
	}

	activities := make([]models.Activity, 0, len(in.Activities))
	for j, a := range in.Activities {
		name, err := requireText(prefix+"activities["+strconv.Itoa(j)+"].name", a.Name)
		if err != nil {
			return models.Stop{}, err
		}
		if a.Cost < 0 {
			return models.Stop{}, invalid(prefix+"activities["+strconv.Itoa(j)+"].cost", "must not be negative")
		}
		activities = append(activities, models.Activity{
			Name:        name,
			Description: strings.TrimSpace(a.Description),
			Time:        strings.TrimSpace(a.Time),
			Cost:        a.Cost,
			Position:    j,
		})
	}

	return models.Stop{
		City:       city,
		Country:    strings.TrimSpace(in.Country),
		StartDate:  start,
		EndDate:    end,
		Sequence:   idx,
		Activities: activities,
	}, nil
}
