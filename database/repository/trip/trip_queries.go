package tripRepo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"tripcraft/models"
)

const (
	tripSelect = `SELECT t.id, t.user_id, t.name, t.place, t.description, t.start_date, t.end_date,
		t.cover_photo_url, t.cover_photo_id, t.created_at, t.updated_at
		FROM trips t`
	stopSelect = `SELECT s.id, s.trip_id, s.city, s.country, s.start_date, s.end_date, s.sequence
		FROM stops s JOIN trips t ON t.id = s.trip_id`
	activitySelect = `SELECT a.id, a.stop_id, a.name, a.description, a.time, a.cost, a.position
		FROM activities a JOIN stops s ON s.id = a.stop_id JOIN trips t ON t.id = s.trip_id`
)

// GetByIDForUser loads a single trip graph owned by the user.
func (r *PostgresTripRepo) GetByIDForUser(ctx context.Context, userID, tripID string) (*models.Trip, error) {
	ctx, cancel := withTimeout(ctx, 10*time.Second)
	defer cancel()

	trips, err := r.loadGraph(ctx, `t.id = $1 AND t.user_id = $2`, tripID, userID)
	if err != nil {
		return nil, err
	}
	if len(trips) == 0 {
		return nil, ErrTripNotFound
	}
	return &trips[0], nil
}

// ListByUser loads every trip graph owned by the user, newest first.
func (r *PostgresTripRepo) ListByUser(ctx context.Context, userID string) ([]models.Trip, error) {
	ctx, cancel := withTimeout(ctx, 10*time.Second)
	defer cancel()

	return r.loadGraph(ctx, `t.user_id = $1`, userID)
}

// queryer is satisfied by *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// loadGraph runs one query per level inside a read-only snapshot and stitches the
// rows together in memory. The where clause is applied to the trips alias t at every level.
func (r *PostgresTripRepo) loadGraph(ctx context.Context, where string, args ...any) ([]models.Trip, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("begin read transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	trips, err := stitch(ctx, tx, where, args...)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit read transaction: %w", err)
	}
	return trips, nil
}

func stitch(ctx context.Context, q queryer, where string, args ...any) ([]models.Trip, error) {
	trips, err := queryTrips(ctx, q, where, args...)
	if err != nil || len(trips) == 0 {
		return trips, err
	}

	tripIdx := make(map[string]int, len(trips))
	for i := range trips {
		tripIdx[trips[i].ID] = i
	}

	stops, err := queryStops(ctx, q, where, args...)
	if err != nil {
		return nil, err
	}
	type stopRef struct{ trip, stop int }
	stopIdx := make(map[string]stopRef, len(stops))
	for _, s := range stops {
		ti, ok := tripIdx[s.TripID]
		if !ok {
			continue
		}
		trips[ti].Stops = append(trips[ti].Stops, s)
		stopIdx[s.ID] = stopRef{trip: ti, stop: len(trips[ti].Stops) - 1}
	}

	activities, err := queryActivities(ctx, q, where, args...)
	if err != nil {
		return nil, err
	}
	for _, a := range activities {
		ref, ok := stopIdx[a.StopID]
		if !ok {
			continue
		}
		stop := &trips[ref.trip].Stops[ref.stop]
		stop.Activities = append(stop.Activities, a)
	}
	return trips, nil
}

func queryTrips(ctx context.Context, q queryer, where string, args ...any) ([]models.Trip, error) {
	rows, err := q.QueryContext(ctx, tripSelect+` WHERE `+where+` ORDER BY t.created_at DESC, t.id`, args...)
	if err != nil {
		return nil, fmt.Errorf("query trips: %w", err)
	}
	defer rows.Close()

	trips := []models.Trip{}
	for rows.Next() {
		var t models.Trip
		if err := rows.Scan(&t.ID, &t.UserID, &t.Name, &t.Place, &t.Description, &t.StartDate, &t.EndDate,
			&t.CoverPhotoURL, &t.CoverPhotoID, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan trip: %w", err)
		}
		t.Stops = []models.Stop{}
		trips = append(trips, t)
	}
	return trips, rows.Err()
}

func queryStops(ctx context.Context, q queryer, where string, args ...any) ([]models.Stop, error) {
	rows, err := q.QueryContext(ctx, stopSelect+` WHERE `+where+` ORDER BY s.trip_id, s.sequence ASC`, args...)
	if err != nil {
		return nil, fmt.Errorf("query stops: %w", err)
	}
	defer rows.Close()

	var stops []models.Stop
	for rows.Next() {
		var s models.Stop
		if err := rows.Scan(&s.ID, &s.TripID, &s.City, &s.Country, &s.StartDate, &s.EndDate, &s.Sequence); err != nil {
			return nil, fmt.Errorf("scan stop: %w", err)
		}
		s.Activities = []models.Activity{}
		stops = append(stops, s)
	}
	return stops, rows.Err()
}

func queryActivities(ctx context.Context, q queryer, where string, args ...any) ([]models.Activity, error) {
	rows, err := q.QueryContext(ctx, activitySelect+` WHERE `+where+` ORDER BY a.stop_id, a.position ASC`, args...)
	if err != nil {
		return nil, fmt.Errorf("query activities: %w", err)
	}
	defer rows.Close()

	var activities []models.Activity
	for rows.Next() {
		var a models.Activity
		if err := rows.Scan(&a.ID, &a.StopID, &a.Name, &a.Description, &a.Time, &a.Cost, &a.Position); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}
