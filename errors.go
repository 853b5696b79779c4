package knngo

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidK is returned when k is not in [1, len(training set)].
	ErrInvalidK = errors.New("k must be between 1 and the training set size")
)

// ErrDimensionMismatch indicates a vector/query dimensionality mismatch.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrLabelCountMismatch indicates that the number of labels does not match
// the number of training vectors.
type ErrLabelCountMismatch struct {
	Vectors int
	Labels  int
}

func (e *ErrLabelCountMismatch) Error() string {
	return fmt.Sprintf("label count mismatch: %d vectors, %d labels", e.Vectors, e.Labels)
}
