package tripRepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"tripcraft/models"
)

// ReplaceStops swaps the trip's whole itinerary in one transaction.
func (r *PostgresTripRepo) ReplaceStops(ctx context.Context, userID, tripID string, stops []models.Stop) error {
	ctx, cancel := withTimeout(ctx, 15*time.Second)
	defer cancel()

	return r.inTx(ctx, func(tx *sql.Tx) error {
		if err := lockTrip(ctx, tx, userID, tripID); err != nil {
			return err
		}
		// activities go with their stops through ON DELETE CASCADE
		if _, err := tx.ExecContext(ctx, `DELETE FROM stops WHERE trip_id = $1`, tripID); err != nil {
			return fmt.Errorf("clear stops of trip %s: %w", tripID, err)
		}
		if err := insertStops(ctx, tx, tripID, 0, stops); err != nil {
			return err
		}
		return touchTrip(ctx, tx, tripID)
	})
}

// AppendStop adds a stop after the last one.
func (r *PostgresTripRepo) AppendStop(ctx context.Context, userID, tripID string, stop *models.Stop) error {
	ctx, cancel := withTimeout(ctx, 10*time.Second)
	defer cancel()

	return r.inTx(ctx, func(tx *sql.Tx) error {
		if err := lockTrip(ctx, tx, userID, tripID); err != nil {
			return err
		}
		var count int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM stops WHERE trip_id = $1`, tripID).Scan(&count); err != nil {
			return fmt.Errorf("count stops of trip %s: %w", tripID, err)
		}
		batch := []models.Stop{*stop}
		if err := insertStops(ctx, tx, tripID, count, batch); err != nil {
			return err
		}
		*stop = batch[0]
		return touchTrip(ctx, tx, tripID)
	})
}

// DeleteStop removes a stop and shifts the following stops up by one.
func (r *PostgresTripRepo) DeleteStop(ctx context.Context, userID, tripID, stopID string) error {
	ctx, cancel := withTimeout(ctx, 10*time.Second)
	defer cancel()

	return r.inTx(ctx, func(tx *sql.Tx) error {
		if err := lockTrip(ctx, tx, userID, tripID); err != nil {
			return err
		}
		var removed int
		err := tx.QueryRowContext(ctx,
			`DELETE FROM stops WHERE id = $1 AND trip_id = $2 RETURNING sequence`, stopID, tripID).Scan(&removed)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrStopNotFound
		}
		if err != nil {
			return fmt.Errorf("delete stop %s: %w", stopID, err)
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE stops SET sequence = sequence - 1 WHERE trip_id = $1 AND sequence > $2`, tripID, removed); err != nil {
			return fmt.Errorf("repack stops of trip %s: %w", tripID, err)
		}
		return touchTrip(ctx, tx, tripID)
	})
}

// ReorderStops rewrites stop sequences to follow stopIDs.
func (r *PostgresTripRepo) ReorderStops(ctx context.Context, userID, tripID string, stopIDs []string) error {
	ctx, cancel := withTimeout(ctx, 10*time.Second)
	defer cancel()

	return r.inTx(ctx, func(tx *sql.Tx) error {
		if err := lockTrip(ctx, tx, userID, tripID); err != nil {
			return err
		}
		existing, err := stopIDsOf(ctx, tx, tripID)
		if err != nil {
			return err
		}
		if !isPermutation(existing, stopIDs) {
			return ErrInvalidStopOrder
		}
		for seq, id := range stopIDs {
			if _, err := tx.ExecContext(ctx,
				`UPDATE stops SET sequence = $1 WHERE id = $2 AND trip_id = $3`, seq, id, tripID); err != nil {
				return fmt.Errorf("reorder stop %s: %w", id, err)
			}
		}
		return touchTrip(ctx, tx, tripID)
	})
}

func stopIDsOf(ctx context.Context, tx *sql.Tx, tripID string) ([]string, error) {
	rows, err := tx.QueryContext(ctx, `SELECT id FROM stops WHERE trip_id = $1`, tripID)
	if err != nil {
		return nil, fmt.Errorf("list stops of trip %s: %w", tripID, err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func isPermutation(existing, ordered []string) bool {
	if len(existing) != len(ordered) {
		return false
	}
	seen := make(map[string]bool, len(existing))
	for _, id := range existing {
		seen[id] = false
	}
	for _, id := range ordered {
		used, ok := seen[id]
		if !ok || used {
			return false
		}
		seen[id] = true
	}
	return true
}
