package hangar

import (
	"errors"
	"fmt"
)

var (
	ErrCapacityExceeded = errors.New("hangar is full")
	ErrDuplicateElement = errors.New("vehicle is already in the hangar")
	ErrIndexNotFound    = errors.New("no vehicle at index")
	ErrNoCurrent        = errors.New("iterator is not positioned on an element")
)

// IndexNotFoundError is returned by RemoveAt for an out-of-range index.
type IndexNotFoundError struct {
	Index int
	Count int
}

func (e *IndexNotFoundError) Error() string {
	return fmt.Sprintf("no vehicle at index %d (hangar holds %d)", e.Index, e.Count)
}

func (e *IndexNotFoundError) Is(target error) bool {
	return target == ErrIndexNotFound
}
