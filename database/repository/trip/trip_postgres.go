package tripRepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"tripcraft/models"

	"github.com/google/uuid"
)

// PostgresTripRepo implements TripRepository on Postgres.
type PostgresTripRepo struct {
	db *sql.DB
}

// NewPostgresTripRepo creates a new instance of TripRepository using Postgres.
func NewPostgresTripRepo(db *sql.DB) TripRepository {
	return &PostgresTripRepo{db: db}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}

// inTx runs fn inside a transaction, rolling back on error or panic.
func (r *PostgresTripRepo) inTx(ctx context.Context, fn func(tx *sql.Tx) error) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// lockTrip verifies ownership and locks the trip row for the rest of the transaction.
func lockTrip(ctx context.Context, tx *sql.Tx, userID, tripID string) error {
	var id string
	err := tx.QueryRowContext(ctx,
		`SELECT id FROM trips WHERE id = $1 AND user_id = $2 FOR UPDATE`, tripID, userID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrTripNotFound
	}
	if err != nil {
		return fmt.Errorf("lock trip %s: %w", tripID, err)
	}
	return nil
}

func touchTrip(ctx context.Context, tx *sql.Tx, tripID string) error {
	if _, err := tx.ExecContext(ctx, `UPDATE trips SET updated_at = NOW() WHERE id = $1`, tripID); err != nil {
		return fmt.Errorf("touch trip %s: %w", tripID, err)
	}
	return nil
}

// Create writes the whole trip graph atomically.
func (r *PostgresTripRepo) Create(ctx context.Context, trip *models.Trip) error {
	ctx, cancel := withTimeout(ctx, 15*time.Second)
	defer cancel()

	if trip.ID == "" {
		trip.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	trip.CreatedAt = now
	trip.UpdatedAt = now

	return r.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO trips
			(id, user_id, name, place, description, start_date, end_date, cover_photo_url, cover_photo_id, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			trip.ID, trip.UserID, trip.Name, trip.Place, trip.Description, trip.StartDate, trip.EndDate,
			trip.CoverPhotoURL, trip.CoverPhotoID, trip.CreatedAt, trip.UpdatedAt,
		); err != nil {
			return fmt.Errorf("insert trip: %w", err)
		}
		return insertStops(ctx, tx, trip.ID, 0, trip.Stops)
	})
}

// Update stores name, place, description and dates.
func (r *PostgresTripRepo) Update(ctx context.Context, trip *models.Trip) error {
	ctx, cancel := withTimeout(ctx, 10*time.Second)
	defer cancel()

	return r.inTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `UPDATE trips SET
				name = $3, place = $4, description = $5, start_date = $6, end_date = $7, updated_at = NOW()
			WHERE id = $1 AND user_id = $2
			RETURNING updated_at`,
			trip.ID, trip.UserID, trip.Name, trip.Place, trip.Description, trip.StartDate, trip.EndDate,
		)
		if err := row.Scan(&trip.UpdatedAt); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrTripNotFound
			}
			return fmt.Errorf("update trip %s: %w", trip.ID, err)
		}

		if _, err := tx.ExecContext(ctx, `UPDATE stops SET
				start_date = GREATEST(LEAST(start_date, $3::date), $2::date),
				end_date = GREATEST(LEAST(end_date, $3::date), $2::date)
			WHERE trip_id = $1`,
			trip.ID, trip.StartDate, trip.EndDate,
		); err != nil {
			return fmt.Errorf("clamp stop dates for trip %s: %w", trip.ID, err)
		}
		return nil
	})
}

// Delete removes a trip owned by the user.
func (r *PostgresTripRepo) Delete(ctx context.Context, userID, tripID string) (string, error) {
	ctx, cancel := withTimeout(ctx, 10*time.Second)
	defer cancel()

	var coverID string
	err := r.db.QueryRowContext(ctx,
		`DELETE FROM trips WHERE id = $1 AND user_id = $2 RETURNING cover_photo_id`, tripID, userID).Scan(&coverID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrTripNotFound
	}
	if err != nil {
		return "", fmt.Errorf("delete trip %s: %w", tripID, err)
	}
	return coverID, nil
}

// SetCoverPhoto stores the cover photo URL and asset id.
func (r *PostgresTripRepo) SetCoverPhoto(ctx context.Context, userID, tripID, url, assetID string) error {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `UPDATE trips SET cover_photo_url = $3, cover_photo_id = $4, updated_at = NOW()
		WHERE id = $1 AND user_id = $2`, tripID, userID, url, assetID)
	if err != nil {
		return fmt.Errorf("set cover photo for trip %s: %w", tripID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrTripNotFound
	}
	return nil
}
