package handler

import (
	"github.com/algosender/algosender/internal/store"
	"github.com/algosender/algosender/pkg/api"
)

// listFilter applies the list defaults. The range checks repeat what the request validator enforces, so
// the handler stays safe when it is mounted without it.
func listFilter(params api.GETTransactionsParams) (store.ListFilter, error) {
	filter := store.ListFilter{Limit: defaultListLimit}

	if params.Status != nil {
		s, err := store.ParseStatus(string(*params.Status))
		if err != nil {
			return store.ListFilter{}, ErrInvalidStatus
		}
		filter.Status = &s
	}

	if params.Limit != nil {
		if *params.Limit < 1 || *params.Limit > maxListLimit {
			return store.ListFilter{}, ErrInvalidLimit
		}
		filter.Limit = *params.Limit
	}

	if params.Skip != nil {
		if *params.Skip < 0 {
			return store.ListFilter{}, ErrInvalidSkip
		}
		filter.Skip = *params.Skip
	}

	return filter, nil
}
