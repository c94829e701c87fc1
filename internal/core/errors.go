// AngelaMos | 2026
// errors.go

package core

import (
	"errors"
)

var (
	// ErrNotFound indicates the target row was absent at mutation or read
	// time.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateKey indicates a store-level uniqueness constraint was
	// violated. The constraint is the authoritative guard: callers never
	// rely on check-then-insert sequences.
	ErrDuplicateKey = errors.New("duplicate key")
)
