package tzip

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidWorkers = errors.New("worker count must be at least 1")
	ErrUnknownPolicy  = errors.New("unknown failure policy")
	ErrFilesFailed    = errors.New("files failed to compress")
	ErrFrameTooLarge  = errors.New("frame exceeds 4-byte length prefix")
	ErrTruncatedFrame = errors.New("truncated frame")
)

// FileError records the failure of a single file. It is kept with the
// result for that index so the aggregation phase can decide what to do.
type FileError struct {
	Index int
	Name  string
	Err   error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("file %d (%s): %v", e.Index, e.Name, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}
