package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestErrorClassifier(t *testing.T) {
	classifier := NewErrorClassifier()

	testCases := []struct {
		name     string
		err      error
		expected ErrorType
	}{
		{"Nil", nil, ""},
		{"UniqueBySQLState", &pgconn.PgError{Code: "23505"}, DuplicateKeyError},
		{"WrappedUnique", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), DuplicateKeyError},
		{"CheckBySQLState", &pgconn.PgError{Code: "23514"}, ConstraintError},
		{"CheckByMessage", errors.New(`new row for relation "donations" violates check constraint`), ConstraintError},
		{"Serialization", &pgconn.PgError{Code: "40001"}, LockError},
		{"Deadlock", errors.New("ERROR: deadlock detected"), LockError},
		{"Reset", errors.New("read tcp: connection reset by peer"), TransientError},
		{"Refused", errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), ConnectionError},
		{"Unknown", errors.New("something odd"), ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, classifier.Classify(tc.err))
		})
	}
}
