package tripRepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"tripcraft/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	tripCols     = []string{"id", "user_id", "name", "place", "description", "start_date", "end_date", "cover_photo_url", "cover_photo_id", "created_at", "updated_at"}
	stopCols     = []string{"id", "trip_id", "city", "country", "start_date", "end_date", "sequence"}
	activityCols = []string{"id", "stop_id", "name", "description", "time", "cost", "position"}
)

func day(n int) time.Time {
	return time.Date(2025, 7, n, 0, 0, 0, 0, time.UTC)
}

func newMockRepo(t *testing.T) (TripRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresTripRepo(db), mock
}

func sampleTrip() *models.Trip {
	return &models.Trip{
		UserID:    "user-1",
		Name:      "Summer in Rome",
		Place:     "Rome",
		StartDate: day(1),
		EndDate:   day(2),
		Stops: []models.Stop{
			{City: "Rome", StartDate: day(1), EndDate: day(1), Activities: []models.Activity{
				{Name: "Colosseum", Time: "09:00", Cost: 18},
				{Name: "Trastevere dinner", Time: "20:00", Cost: 40},
			}},
			{City: "Rome", StartDate: day(2), EndDate: day(2), Activities: []models.Activity{
				{Name: "Vatican Museums", Time: "10:00", Cost: 20},
			}},
		},
	}
}

func TestCreateWritesGraphInOneTransaction(t *testing.T) {
	repo, mock := newMockRepo(t)
	trip := sampleTrip()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO trips").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO stops \(id, trip_id, city, country, start_date, end_date, sequence\) VALUES \(\$1, .+\), \(\$8, .+\)$`).
		WillReturnResult(sqlmock.NewResult(2, 2))
	mock.ExpectExec(`INSERT INTO activities .+ VALUES \(.+\), \(.+\), \(.+\)$`).
		WillReturnResult(sqlmock.NewResult(3, 3))
	mock.ExpectCommit()

	require.NoError(t, repo.Create(context.Background(), trip))
	require.NoError(t, mock.ExpectationsWereMet())

	assert.NotEmpty(t, trip.ID)
	for i, s := range trip.Stops {
		assert.Equal(t, i, s.Sequence)
		assert.Equal(t, trip.ID, s.TripID)
		assert.NotEmpty(t, s.ID)
		for j, a := range s.Activities {
			assert.Equal(t, j, a.Position)
			assert.Equal(t, s.ID, a.StopID)
		}
	}
}

func TestCreateRollsBackWhenActivityInsertFails(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO trips").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO stops").WillReturnResult(sqlmock.NewResult(2, 2))
	mock.ExpectExec("INSERT INTO activities").WillReturnError(errors.New("value too long"))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), sampleTrip())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert activities")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWithoutStopsOnlyInsertsTrip(t *testing.T) {
	repo, mock := newMockRepo(t)
	trip := sampleTrip()
	trip.Stops = nil

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO trips").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Create(context.Background(), trip))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDForUserStitchesGraph(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT t.id").WithArgs("trip-1", "user-1").
		WillReturnRows(sqlmock.NewRows(tripCols).
			AddRow("trip-1", "user-1", "Rome", "Rome", "", day(1), day(2), "", "", now, now))
	mock.ExpectQuery("SELECT s.id").WithArgs("trip-1", "user-1").
		WillReturnRows(sqlmock.NewRows(stopCols).
			AddRow("stop-a", "trip-1", "Rome", "", day(1), day(1), 0).
			AddRow("stop-b", "trip-1", "Florence", "", day(2), day(2), 1))
	mock.ExpectQuery("SELECT a.id").WithArgs("trip-1", "user-1").
		WillReturnRows(sqlmock.NewRows(activityCols).
			AddRow("act-1", "stop-a", "Colosseum", "", "09:00", 18.0, 0).
			AddRow("act-2", "stop-a", "Forum", "", "11:00", 0.0, 1).
			AddRow("act-3", "stop-b", "Uffizi", "", "10:00", 25.0, 0))
	mock.ExpectCommit()

	trip, err := repo.GetByIDForUser(context.Background(), "user-1", "trip-1")
	require.NoError(t, err)
	require.Len(t, trip.Stops, 2)
	assert.Equal(t, "Rome", trip.Stops[0].City)
	assert.Equal(t, "Florence", trip.Stops[1].City)
	require.Len(t, trip.Stops[0].Activities, 2)
	assert.Equal(t, "Forum", trip.Stops[0].Activities[1].Name)
	require.Len(t, trip.Stops[1].Activities, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDForUserNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT t.id").WithArgs("trip-1", "someone-else").
		WillReturnRows(sqlmock.NewRows(tripCols))
	mock.ExpectCommit()

	_, err := repo.GetByIDForUser(context.Background(), "someone-else", "trip-1")
	assert.ErrorIs(t, err, ErrTripNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByUserKeepsEmptyStopSlices(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT t.id").WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows(tripCols).
			AddRow("trip-2", "user-1", "Lisbon", "Lisbon", "", day(3), day(4), "", "", now, now).
			AddRow("trip-1", "user-1", "Rome", "Rome", "", day(1), day(2), "", "", now.Add(-time.Hour), now))
	mock.ExpectQuery("SELECT s.id").WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows(stopCols).
			AddRow("stop-a", "trip-1", "Rome", "", day(1), day(1), 0))
	mock.ExpectQuery("SELECT a.id").WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows(activityCols))
	mock.ExpectCommit()

	trips, err := repo.ListByUser(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, trips, 2)
	assert.Equal(t, "trip-2", trips[0].ID)
	assert.NotNil(t, trips[0].Stops)
	assert.Empty(t, trips[0].Stops)
	require.Len(t, trips[1].Stops, 1)
	assert.NotNil(t, trips[1].Stops[0].Activities)
}

func TestReplaceStopsRejectsForeignTrip(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM trips WHERE id = \\$1 AND user_id = \\$2 FOR UPDATE").
		WithArgs("trip-1", "intruder").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	err := repo.ReplaceStops(context.Background(), "intruder", "trip-1", sampleTrip().Stops)
	assert.ErrorIs(t, err, ErrTripNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceStopsSwapsItinerary(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").WithArgs("trip-1", "user-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("trip-1"))
	mock.ExpectExec("DELETE FROM stops WHERE trip_id = \\$1").WithArgs("trip-1").
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec("INSERT INTO stops").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO activities").WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("UPDATE trips SET updated_at").WithArgs("trip-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.ReplaceStops(context.Background(), "user-1", "trip-1", sampleTrip().Stops))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppendStopUsesCurrentCountAsSequence(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("trip-1"))
	mock.ExpectQuery("SELECT COUNT").WithArgs("trip-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectExec("INSERT INTO stops").
		WithArgs(sqlmock.AnyArg(), "trip-1", "Naples", "", day(2), day(2), 3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE trips SET updated_at").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	stop := &models.Stop{City: "Naples", StartDate: day(2), EndDate: day(2)}
	require.NoError(t, repo.AppendStop(context.Background(), "user-1", "trip-1", stop))
	assert.Equal(t, 3, stop.Sequence)
	assert.NotEmpty(t, stop.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteStopRepacksSequence(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("trip-1"))
	mock.ExpectQuery("DELETE FROM stops WHERE id = \\$1 AND trip_id = \\$2 RETURNING sequence").
		WithArgs("stop-b", "trip-1").
		WillReturnRows(sqlmock.NewRows([]string{"sequence"}).AddRow(1))
	mock.ExpectExec("UPDATE stops SET sequence = sequence - 1").WithArgs("trip-1", 1).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("UPDATE trips SET updated_at").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteStop(context.Background(), "user-1", "trip-1", "stop-b"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteStopUnknownStop(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("trip-1"))
	mock.ExpectQuery("DELETE FROM stops").WillReturnRows(sqlmock.NewRows([]string{"sequence"}))
	mock.ExpectRollback()

	err := repo.DeleteStop(context.Background(), "user-1", "trip-1", "stop-x")
	assert.ErrorIs(t, err, ErrStopNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReorderStopsValidatesPermutation(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("trip-1"))
	mock.ExpectQuery("SELECT id FROM stops").WithArgs("trip-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("a").AddRow("b"))
	mock.ExpectRollback()

	err := repo.ReorderStops(context.Background(), "user-1", "trip-1", []string{"a", "a"})
	assert.ErrorIs(t, err, ErrInvalidStopOrder)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReorderStopsRewritesSequences(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("trip-1"))
	mock.ExpectQuery("SELECT id FROM stops").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("a").AddRow("b"))
	mock.ExpectExec("UPDATE stops SET sequence = \\$1").WithArgs(0, "b", "trip-1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE stops SET sequence = \\$1").WithArgs(1, "a", "trip-1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE trips SET updated_at").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.ReorderStops(context.Background(), "user-1", "trip-1", []string{"b", "a"}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteReturnsCoverAsset(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("DELETE FROM trips").WithArgs("trip-1", "user-1").
		WillReturnRows(sqlmock.NewRows([]string{"cover_photo_id"}).AddRow("trips/trip-1/cover"))

	coverID, err := repo.Delete(context.Background(), "user-1", "trip-1")
	require.NoError(t, err)
	assert.Equal(t, "trips/trip-1/cover", coverID)

	mock.ExpectQuery("DELETE FROM trips").WillReturnRows(sqlmock.NewRows([]string{"cover_photo_id"}))
	_, err = repo.Delete(context.Background(), "user-1", "trip-1")
	assert.ErrorIs(t, err, ErrTripNotFound)
}

func TestUpdateClampsStopDates(t *testing.T) {
	repo, mock := newMockRepo(t)
	trip := sampleTrip()
	trip.ID = "trip-1"
	updated := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE trips SET").
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(updated))
	mock.ExpectExec("UPDATE stops SET").WithArgs("trip-1", day(1), day(2)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	require.NoError(t, repo.Update(context.Background(), trip))
	assert.Equal(t, updated, trip.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBuildInsertNumbersPlaceholders(t *testing.T) {
	query, args := buildInsert("t", []string{"a", "b"}, [][]any{{1, 2}, {3, 4}})
	assert.Equal(t, "INSERT INTO t (a, b) VALUES ($1, $2), ($3, $4)", query)
	assert.Equal(t, []any{1, 2, 3, 4}, args)
}

func TestIsPermutation(t *testing.T) {
	assert.True(t, isPermutation([]string{"a", "b"}, []string{"b", "a"}))
	assert.False(t, isPermutation([]string{"a", "b"}, []string{"a"}))
	assert.False(t, isPermutation([]string{"a", "b"}, []string{"a", "c"}))
	assert.True(t, isPermutation(nil, nil))
}
