package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	tt := []struct {
		from     Status
		to       Status
		expected bool
	}{
		{from: StatusPending, to: StatusConfirmed, expected: true},
		{from: StatusPending, to: StatusFailed, expected: true},
		{from: StatusPending, to: StatusPending, expected: false},
		{from: StatusFailed, to: StatusConfirmed, expected: true},
		{from: StatusFailed, to: StatusPending, expected: false},
		{from: StatusFailed, to: StatusFailed, expected: false},
		{from: StatusConfirmed, to: StatusFailed, expected: false},
		{from: StatusConfirmed, to: StatusPending, expected: false},
		{from: StatusConfirmed, to: StatusConfirmed, expected: false},
	}

	for _, tc := range tt {
		t.Run(string(tc.from)+" to "+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.expected, CanTransition(tc.from, tc.to))
		})
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "failed"} {
		status, err := ParseStatus(s)
		require.NoError(t, err)
		assert.Equal(t, Status(s), status)
	}

	_, err := ParseStatus("unknown")
	require.ErrorIs(t, err, ErrInvalidStatus)

	_, err = ParseStatus("")
	require.ErrorIs(t, err, ErrInvalidStatus)
}
