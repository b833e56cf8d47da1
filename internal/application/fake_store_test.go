package application

import (
	"context"
	"sort"
	"sync"
	"time"

	"eventroca/internal/domain"
	"eventroca/internal/domain/entities"
	"eventroca/internal/ports/output"
)

// fakeStore is an in-memory output.Repository. WithEventLock serializes
// callers per event the way the Postgres advisory lock does.
type fakeStore struct {
	mu          sync.Mutex
	locks       map[int64]*sync.Mutex
	events      map[int64]entities.Event
	users       map[int64]entities.Participant
	enrollments map[int64]map[int64]time.Time
	notes       map[[2]int64]string

	// failWith, when set, is returned by every ledger call.
	failWith error
	// createErr, when set, is returned by Create only.
	createErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		locks:       map[int64]*sync.Mutex{},
		events:      map[int64]entities.Event{},
		users:       map[int64]entities.Participant{},
		enrollments: map[int64]map[int64]time.Time{},
		notes:       map[[2]int64]string{},
	}
}

func (f *fakeStore) addEvent(e entities.Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events[e.ID] = e
}

func (f *fakeStore) addUser(id int64, username string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[id] = entities.Participant{UserID: id, Username: username, FirstName: "First " + username, LastName: "Last " + username}
}

func (f *fakeStore) seedEnrollment(eventID, userID int64, at time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.enrollments[eventID] == nil {
		f.enrollments[eventID] = map[int64]time.Time{}
	}
	f.enrollments[eventID][userID] = at
}

func (f *fakeStore) rows(eventID int64) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.enrollments[eventID])
}

func (f *fakeStore) Events() output.EventRepository           { return fakeEvents{f} }
func (f *fakeStore) Enrollments() output.EnrollmentRepository { return fakeEnrollments{f} }

func (f *fakeStore) WithEventLock(ctx context.Context, eventID int64, fn func(context.Context, output.Repository) error) error {
	f.mu.Lock()
	lock, ok := f.locks[eventID]
	if !ok {
		lock = &sync.Mutex{}
		f.locks[eventID] = lock
	}
	f.mu.Unlock()

	lock.Lock()
	defer lock.Unlock()
	return fn(ctx, f)
}

type fakeEvents struct{ f *fakeStore }

func (r fakeEvents) FindByID(ctx context.Context, id int64) (*entities.Event, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if r.f.failWith != nil {
		return nil, r.f.failWith
	}
	e, ok := r.f.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return &e, nil
}

type fakeEnrollments struct{ f *fakeStore }

func (r fakeEnrollments) Create(ctx context.Context, e *entities.Enrollment) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if r.f.failWith != nil {
		return r.f.failWith
	}
	if r.f.createErr != nil {
		return r.f.createErr
	}
	if r.f.enrollments[e.EventID] == nil {
		r.f.enrollments[e.EventID] = map[int64]time.Time{}
	}
	if _, ok := r.f.enrollments[e.EventID][e.UserID]; ok {
		return domain.ErrAlreadyEnrolled
	}
	r.f.enrollments[e.EventID][e.UserID] = e.RegisteredAt
	r.f.notes[[2]int64{e.EventID, e.UserID}] = e.Description
	return nil
}

func (r fakeEnrollments) Exists(ctx context.Context, eventID, userID int64) (bool, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if r.f.failWith != nil {
		return false, r.f.failWith
	}
	_, ok := r.f.enrollments[eventID][userID]
	return ok, nil
}

func (r fakeEnrollments) CountByEventID(ctx context.Context, eventID int64) (int64, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if r.f.failWith != nil {
		return 0, r.f.failWith
	}
	return int64(len(r.f.enrollments[eventID])), nil
}

func (r fakeEnrollments) Delete(ctx context.Context, eventID, userID int64) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if r.f.failWith != nil {
		return r.f.failWith
	}
	if _, ok := r.f.enrollments[eventID][userID]; !ok {
		return domain.ErrNotEnrolled
	}
	delete(r.f.enrollments[eventID], userID)
	delete(r.f.notes, [2]int64{eventID, userID})
	return nil
}

func (r fakeEnrollments) FindParticipantsByEventID(ctx context.Context, eventID int64) ([]entities.Participant, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if r.f.failWith != nil {
		return nil, r.f.failWith
	}
	var out []entities.Participant
	for userID, at := range r.f.enrollments[eventID] {
		p := r.f.users[userID]
		p.UserID = userID
		p.RegisteredAt = at
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].RegisteredAt.Equal(out[j].RegisteredAt) {
			return out[i].RegisteredAt.Before(out[j].RegisteredAt)
		}
		return out[i].UserID < out[j].UserID
	})
	return out, nil
}

func (r fakeEnrollments) FindByUserID(ctx context.Context, userID int64) ([]entities.UserEnrollment, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if r.f.failWith != nil {
		return nil, r.f.failWith
	}
	var out []entities.UserEnrollment
	for eventID, users := range r.f.enrollments {
		if at, ok := users[userID]; ok {
			out = append(out, entities.UserEnrollment{
				Event:        r.f.events[eventID],
				Description:  r.f.notes[[2]int64{eventID, userID}],
				RegisteredAt: at,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Event.StartDate.Before(out[j].Event.StartDate)
	})
	return out, nil
}

type fixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fixedClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
