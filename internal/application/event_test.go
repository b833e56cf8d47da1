package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"eventroca/internal/domain"
)

func TestGetEvent(t *testing.T) {
	store := newFakeStore()
	store.addEvent(futureEvent(1, 3))
	store.seedEnrollment(1, 10, testNow)
	store.seedEnrollment(1, 11, testNow)
	svc := NewEventService(store, zerolog.Nop())

	detail, err := svc.GetEvent(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "Meetup", detail.Name)
	require.Equal(t, int64(2), detail.EnrolledCount)
	require.Equal(t, int64(1), detail.AvailableSpots())
}

func TestGetEventAvailableSpotsNeverNegative(t *testing.T) {
	store := newFakeStore()
	store.addEvent(futureEvent(1, 1))
	// capacity lowered after people enrolled
	store.seedEnrollment(1, 10, testNow)
	store.seedEnrollment(1, 11, testNow.Add(time.Minute))
	svc := NewEventService(store, zerolog.Nop())

	detail, err := svc.GetEvent(context.Background(), 1)
	require.NoError(t, err)
	require.Zero(t, detail.AvailableSpots())
}

func TestGetEventErrors(t *testing.T) {
	store := newFakeStore()
	svc := NewEventService(store, zerolog.Nop())

	_, err := svc.GetEvent(context.Background(), 404)
	require.ErrorIs(t, err, domain.ErrEventNotFound)

	store.failWith = errors.New("timeout")
	_, err = svc.GetEvent(context.Background(), 1)
	require.Equal(t, domain.CodeStorage, domain.Code(err))
}
