package cmap

import (
	"errors"
	"fmt"
)

// ErrNotFound is matched by errors.Is for every NotFoundError
var ErrNotFound = errors.New("key not found")

// NotFoundError is returned if a key is not present in a table
type NotFoundError struct {
	Key any
}

// NotFound creates a NotFoundError for the given key
func NotFound(key any) *NotFoundError {
	return &NotFoundError{Key: key}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("key %v not found", e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
