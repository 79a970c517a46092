package trip

import (
	"context"
	"math"

	"tripcraft/models"
)

// Budget sums activity costs per stop and for the whole trip.
func (s *DefaultTripService) Budget(ctx context.Context, userID, tripID string) (*models.BudgetSummary, error) {
	trip, err := s.GetTrip(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}
	return Summarize(trip), nil
}

// Summarize computes the budget of a loaded trip graph.
func Summarize(trip *models.Trip) *models.BudgetSummary {
	summary := &models.BudgetSummary{
		TripID: trip.ID,
		Stops:  make([]models.StopBudget, 0, len(trip.Stops)),
	}
	for _, stop := range trip.Stops {
		var stopTotal float64
		for _, a := range stop.Activities {
			stopTotal += a.Cost
		}
		summary.Stops = append(summary.Stops, models.StopBudget{
			StopID:   stop.ID,
			City:     stop.City,
			Sequence: stop.Sequence,
			Total:    roundCents(stopTotal),
		})
		summary.Total += stopTotal
		summary.ActivityCount += len(stop.Activities)
	}
	if days := trip.Days(); days > 0 {
		summary.DailyAverage = roundCents(summary.Total / float64(days))
	}
	summary.Total = roundCents(summary.Total)
	return summary
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
