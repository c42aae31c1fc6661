package domain

import "errors"

// ErrNotFound signals that the requested (id, contentType) pair does not
// exist. It is surfaced to the caller and never retried locally. Empty
// result slices and zero affected-row counts are NOT errors.
var ErrNotFound = errors.New("content not found")
