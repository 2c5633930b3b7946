package testutils

import (
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	_ "github.com/lib/pq" //nolint: revive // Required for database connection
)

// Retry runs op with exponential backoff for up to a minute.
func Retry(op func() error) error {
	bo := backoff.NewExponentialBackOff()
	bo.MaxInterval = time.Second * 5
	bo.MaxElapsedTime = time.Minute
	if err := backoff.Retry(op, bo); err != nil {
		if bo.NextBackOff() == backoff.Stop {
			return fmt.Errorf("reached retry deadline: %w", err)
		}

		return err
	}

	return nil
}
