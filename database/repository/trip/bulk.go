package tripRepo

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"tripcraft/models"

	"github.com/google/uuid"
)

// maxBulkParams keeps a single INSERT below Postgres' 65535 bind parameter limit.
const maxBulkParams = 60000

var (
	stopInsertColumns     = []string{"id", "trip_id", "city", "country", "start_date", "end_date", "sequence"}
	activityInsertColumns = []string{"id", "stop_id", "name", "description", "time", "cost", "position"}
)

// bulkInsert writes rows with multi-row INSERT statements.
func bulkInsert(ctx context.Context, tx *sql.Tx, table string, columns []string, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}
	perStmt := maxBulkParams / len(columns)
	for start := 0; start < len(rows); start += perStmt {
		end := start + perStmt
		if end > len(rows) {
			end = len(rows)
		}
		query, args := buildInsert(table, columns, rows[start:end])
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert %s: %w", table, err)
		}
	}
	return nil
}

func buildInsert(table string, columns []string, rows [][]any) (string, []any) {
	var b strings.Builder
	args := make([]any, 0, len(rows)*len(columns))

	b.WriteString("INSERT INTO ")
	b.WriteString(table)
	b.WriteString(" (")
	b.WriteString(strings.Join(columns, ", "))
	b.WriteString(") VALUES ")
	for i, row := range rows {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('(')
		for j, v := range row {
			if j > 0 {
				b.WriteString(", ")
			}
			args = append(args, v)
			fmt.Fprintf(&b, "$%d", len(args))
		}
		b.WriteByte(')')
	}
	return b.String(), args
}

// insertStops writes stops starting at the given sequence, followed by all of their activities.
// IDs, trip ids, sequences and positions are assigned on the passed slice.
func insertStops(ctx context.Context, tx *sql.Tx, tripID string, firstSequence int, stops []models.Stop) error {
	stopRows := make([][]any, 0, len(stops))
	var activityRows [][]any

	for i := range stops {
		s := &stops[i]
		if s.ID == "" {
			s.ID = uuid.NewString()
		}
		s.TripID = tripID
		s.Sequence = firstSequence + i
		if s.Activities == nil {
			s.Activities = []models.Activity{}
		}
		stopRows = append(stopRows, []any{s.ID, s.TripID, s.City, s.Country, s.StartDate, s.EndDate, s.Sequence})

		for j := range s.Activities {
			a := &s.Activities[j]
			if a.ID == "" {
				a.ID = uuid.NewString()
			}
			a.StopID = s.ID
			a.Position = j
			activityRows = append(activityRows, []any{a.ID, a.StopID, a.Name, a.Description, a.Time, a.Cost, a.Position})
		}
	}

	if err := bulkInsert(ctx, tx, "stops", stopInsertColumns, stopRows); err != nil {
		return err
	}
	return bulkInsert(ctx, tx, "activities", activityInsertColumns, activityRows)
}
