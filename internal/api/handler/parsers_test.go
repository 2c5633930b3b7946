package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algosender/algosender/internal/store"
	"github.com/algosender/algosender/pkg/api"
)

func TestListFilter(t *testing.T) {
	confirmed := store.StatusConfirmed

	tt := []struct {
		name   string
		params api.GETTransactionsParams

		expected    store.ListFilter
		expectedErr error
	}{
		{
			name:     "defaults",
			expected: store.ListFilter{Limit: 50},
		},
		{
			name: "all set",
			params: api.GETTransactionsParams{
				Status: ptr(api.GETTransactionsParamsStatusConfirmed),
				Limit:  ptr(2),
				Skip:   ptr(1),
			},
			expected: store.ListFilter{Status: &confirmed, Limit: 2, Skip: 1},
		},
		{
			name:     "max limit",
			params:   api.GETTransactionsParams{Limit: ptr(500)},
			expected: store.ListFilter{Limit: 500},
		},
		{
			name:        "unknown status",
			params:      api.GETTransactionsParams{Status: ptr(api.GETTransactionsParamsStatus("mined"))},
			expectedErr: ErrInvalidStatus,
		},
		{
			name:        "zero limit",
			params:      api.GETTransactionsParams{Limit: ptr(0)},
			expectedErr: ErrInvalidLimit,
		},
		{
			name:        "limit above max",
			params:      api.GETTransactionsParams{Limit: ptr(501)},
			expectedErr: ErrInvalidLimit,
		},
		{
			name:        "negative skip",
			params:      api.GETTransactionsParams{Skip: ptr(-3)},
			expectedErr: ErrInvalidSkip,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// when
			actual, err := listFilter(tc.params)

			// then
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}
