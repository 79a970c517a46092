package trip

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	tripRepo "tripcraft/database/repository/trip"
	"tripcraft/models"
	"tripcraft/services/storage"

	"github.com/google/uuid"
)

// memRepo is an in-memory TripRepository with the same ownership and ordering rules.
type memRepo struct {
	mu      sync.Mutex
	trips   map[string]*models.Trip
	failOn  string
	creates int
}

func newMemRepo() *memRepo {
	return &memRepo{trips: map[string]*models.Trip{}}
}

func (r *memRepo) id() string {
	return uuid.NewString()
}

func (r *memRepo) assign(tripID string, first int, stops []models.Stop) {
	for i := range stops {
		if stops[i].ID == "" {
			stops[i].ID = r.id()
		}
		stops[i].TripID = tripID
		stops[i].Sequence = first + i
		for j := range stops[i].Activities {
			if stops[i].Activities[j].ID == "" {
				stops[i].Activities[j].ID = r.id()
			}
			stops[i].Activities[j].StopID = stops[i].ID
			stops[i].Activities[j].Position = j
		}
	}
}

func (r *memRepo) owned(userID, tripID string) (*models.Trip, error) {
	t, ok := r.trips[tripID]
	if !ok || t.UserID != userID {
		return nil, tripRepo.ErrTripNotFound
	}
	return t, nil
}

func clone(t *models.Trip) *models.Trip {
	c := *t
	c.Stops = make([]models.Stop, len(t.Stops))
	for i, s := range t.Stops {
		s.Activities = append([]models.Activity{}, s.Activities...)
		c.Stops[i] = s
	}
	sort.Slice(c.Stops, func(i, j int) bool { return c.Stops[i].Sequence < c.Stops[j].Sequence })
	return &c
}

func (r *memRepo) Create(_ context.Context, trip *models.Trip) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failOn == "create" {
		return errors.New("insert activities: connection reset")
	}
	r.creates++
	trip.ID = r.id()
	if trip.Stops == nil {
		trip.Stops = []models.Stop{}
	}
	r.assign(trip.ID, 0, trip.Stops)
	r.trips[trip.ID] = clone(trip)
	return nil
}

func (r *memRepo) GetByIDForUser(_ context.Context, userID, tripID string) (*models.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, err := r.owned(userID, tripID)
	if err != nil {
		return nil, err
	}
	return clone(t), nil
}

func (r *memRepo) ListByUser(_ context.Context, userID string) ([]models.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Trip{}
	for _, t := range r.trips {
		if t.UserID == userID {
			out = append(out, *clone(t))
		}
	}
	return out, nil
}

func (r *memRepo) Update(_ context.Context, trip *models.Trip) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, err := r.owned(trip.UserID, trip.ID)
	if err != nil {
		return err
	}
	t.Name, t.Place, t.Description = trip.Name, trip.Place, trip.Description
	t.StartDate, t.EndDate = trip.StartDate, trip.EndDate
	for i := range t.Stops {
		s := &t.Stops[i]
		if s.StartDate.Before(t.StartDate) {
			s.StartDate = t.StartDate
		}
		if s.EndDate.After(t.EndDate) {
			s.EndDate = t.EndDate
		}
	}
	return nil
}

func (r *memRepo) Delete(_ context.Context, userID, tripID string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, err := r.owned(userID, tripID)
	if err != nil {
		return "", err
	}
	delete(r.trips, tripID)
	return t.CoverPhotoID, nil
}

func (r *memRepo) ReplaceStops(_ context.Context, userID, tripID string, stops []models.Stop) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failOn == "replace" {
		return errors.New("insert stops: connection reset")
	}
	t, err := r.owned(userID, tripID)
	if err != nil {
		return err
	}
	r.assign(tripID, 0, stops)
	t.Stops = clone(&models.Trip{Stops: stops}).Stops
	return nil
}

func (r *memRepo) AppendStop(_ context.Context, userID, tripID string, stop *models.Stop) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, err := r.owned(userID, tripID)
	if err != nil {
		return err
	}
	batch := []models.Stop{*stop}
	r.assign(tripID, len(t.Stops), batch)
	t.Stops = append(t.Stops, batch[0])
	*stop = batch[0]
	return nil
}

func (r *memRepo) DeleteStop(_ context.Context, userID, tripID, stopID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, err := r.owned(userID, tripID)
	if err != nil {
		return err
	}
	sorted := clone(t).Stops
	for i, s := range sorted {
		if s.ID == stopID {
			sorted = append(sorted[:i], sorted[i+1:]...)
			for k := range sorted {
				sorted[k].Sequence = k
			}
			t.Stops = sorted
			return nil
		}
	}
	return tripRepo.ErrStopNotFound
}

func (r *memRepo) ReorderStops(_ context.Context, userID, tripID string, stopIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, err := r.owned(userID, tripID)
	if err != nil {
		return err
	}
	if len(stopIDs) != len(t.Stops) {
		return tripRepo.ErrInvalidStopOrder
	}
	pos := map[string]int{}
	for i, id := range stopIDs {
		if _, dup := pos[id]; dup {
			return tripRepo.ErrInvalidStopOrder
		}
		pos[id] = i
	}
	for i := range t.Stops {
		seq, ok := pos[t.Stops[i].ID]
		if !ok {
			return tripRepo.ErrInvalidStopOrder
		}
		t.Stops[i].Sequence = seq
	}
	return nil
}

func (r *memRepo) SetCoverPhoto(_ context.Context, userID, tripID, url, assetID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, err := r.owned(userID, tripID)
	if err != nil {
		return err
	}
	t.CoverPhotoURL, t.CoverPhotoID = url, assetID
	return nil
}

type fakeItinerary struct {
	days []models.ItineraryDay
	err  error
	req  models.GenerateItineraryRequest
}

func (f *fakeItinerary) GenerateItinerary(_ context.Context, _ string, req models.GenerateItineraryRequest) ([]models.ItineraryDay, error) {
	f.req = req
	return f.days, f.err
}

type fakeStorage struct {
	uploads int
	deleted []string
	err     error
}

func (f *fakeStorage) UploadImage(_ context.Context, file io.Reader, folder string) (*storage.UploadedAsset, error) {
	if f.err != nil {
		return nil, f.err
	}
	_, _ = io.ReadAll(file)
	f.uploads++
	id := fmt.Sprintf("%s/cover-%d", folder, f.uploads)
	return &storage.UploadedAsset{PublicID: id, SecureURL: "https://img.test/" + id}, nil
}

func (f *fakeStorage) DeleteFile(_ context.Context, publicID string) error {
	f.deleted = append(f.deleted, publicID)
	return nil
}

type fakeCleaner struct {
	scheduled []string
	err       error
}

func (f *fakeCleaner) ScheduleAssetDeletion(_ context.Context, publicID string) error {
	if f.err != nil {
		return f.err
	}
	f.scheduled = append(f.scheduled, publicID)
	return nil
}
