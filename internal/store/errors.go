package store

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by every ProgressStore implementation. Callers
// branch on these with errors.Is instead of inspecting driver errors.
var (
	// ErrNotFound reports that a requested record does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate reports that an operation would create a second copy of
	// a unique record.
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity reports that a record failed validation before being
	// stored. The wrapped error carries the specifics.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrCardProgressNotFound reports that a learner has no progress row for
	// the requested card. It wraps ErrNotFound, so matching on either works.
	ErrCardProgressNotFound = fmt.Errorf("%w: card progress", ErrNotFound)
)
