package peakjoin

import (
	"errors"
	"fmt"

	"github.com/hupe1980/peakjoin/blobstore"
	"github.com/hupe1980/peakjoin/internal/resource"
)

var (
	// ErrClosed is returned by operations on a closed Aligner.
	ErrClosed = errors.New("aligner is closed")

	// ErrNoStore is returned by SaveResult and LoadResult when the Aligner
	// was built without a blob store.
	ErrNoStore = errors.New("no blob store configured")

	// ErrNotFound is returned when a stored result does not exist.
	ErrNotFound = errors.New("not found")

	// ErrMemoryLimitExceeded is returned when an alignment's table estimate
	// does not fit the configured memory limit.
	ErrMemoryLimitExceeded = resource.ErrMemoryLimitExceeded
)

// translateError maps store errors onto the package sentinels so callers
// match with errors.Is regardless of the backing store.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, blobstore.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	return err
}
