package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"eventroca/internal/domain"
)

func TestClassifyInsertError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"not a postgres error", errors.New("conn reset"), nil},
		{"duplicate pair", &pgconn.PgError{Code: uniqueViolation, ConstraintName: "event_enrollments_pkey"}, domain.ErrAlreadyEnrolled},
		{"unknown user", &pgconn.PgError{Code: foreignKeyViolation, ConstraintName: enrollmentUserFK}, domain.ErrUserNotFound},
		{"wrapped unknown user", fmt.Errorf("exec: %w", &pgconn.PgError{Code: foreignKeyViolation, ConstraintName: enrollmentUserFK}), domain.ErrUserNotFound},
		{"event deleted", &pgconn.PgError{Code: foreignKeyViolation, ConstraintName: enrollmentEventFK}, domain.ErrEventNotFound},
		{"other foreign key", &pgconn.PgError{Code: foreignKeyViolation, ConstraintName: "something_else"}, nil},
		{"other postgres error", &pgconn.PgError{Code: "57014"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyInsertError(tt.err)
			if tt.want == nil {
				require.NoError(t, got)
				return
			}
			require.ErrorIs(t, got, tt.want)
		})
	}
}
