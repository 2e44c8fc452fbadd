package upload

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBatchSize is returned when the configured batch size is <= 0
	ErrInvalidBatchSize = errors.New("batch size must be greater than 0")
)

// UpsertError reports a failed batch write. Batch is 1-based and counts
// batches in upload order, so the first failing write on a fresh run carries
// Batch == 1.
type UpsertError struct {
	Batch int
	Err   error
}

func (e *UpsertError) Error() string {
	return fmt.Sprintf("upsert batch %d: %v", e.Batch, e.Err)
}

func (e *UpsertError) Unwrap() error {
	return e.Err
}
