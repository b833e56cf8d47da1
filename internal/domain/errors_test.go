package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"event not found", ErrEventNotFound, CodeEventNotFound},
		{"wrapped already enrolled", fmt.Errorf("insert: %w", ErrAlreadyEnrolled), CodeAlreadyEnrolled},
		{"capacity", ErrCapacityExceeded, CodeCapacityExceeded},
		{"not future", ErrEventNotFuture, CodeEventNotFuture},
		{"disabled", ErrEnrollmentDisabled, CodeEnrollmentDisabled},
		{"not enrolled", ErrNotEnrolled, CodeNotEnrolled},
		{"unknown user", fmt.Errorf("create enrollment: %w", ErrUserNotFound), CodeUserNotFound},
		{"storage", NewStorageError("enroll", errors.New("connection reset")), CodeStorage},
		{"unknown", errors.New("boom"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Code(tt.err))
		})
	}
}

func TestIsBusiness(t *testing.T) {
	require.True(t, IsBusiness(ErrCapacityExceeded))
	require.True(t, IsBusiness(ErrUserNotFound))
	require.False(t, IsBusiness(NewStorageError("count", context.DeadlineExceeded)))
	require.False(t, IsBusiness(errors.New("boom")))
}

func TestStorageErrorUnwraps(t *testing.T) {
	err := NewStorageError("enroll", context.Canceled)

	var storageErr *StorageError
	require.ErrorAs(t, err, &storageErr)
	require.Equal(t, "enroll", storageErr.Op)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, "storage: enroll: context canceled", err.Error())
}
