package quote

import (
	"errors"
	"fmt"
)

// ErrSessionNotFound indicates the wizard session does not exist or expired.
var ErrSessionNotFound = errors.New("quote session not found or expired")

// ValidationError signals a reference to an unknown service, group or option
// id. The operation is rejected with no state change.
type ValidationError struct {
	Kind string // "service", "group" or "option"
	ID   string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("unknown %s id %q", e.Kind, e.ID)
}

// StateError signals an illegal operation against otherwise valid ids, such
// as advancing past the terminal step or configuring an unselected service.
// The operation is rejected with no state change.
type StateError struct {
	Op     string
	Reason string
}

func (e StateError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// StorageError wraps a handoff slot read/write failure. It is recovered
// locally: writes are logged and swallowed, reads degrade to "no quote".
type StorageError struct {
	Op  string
	Err error
}

func (e StorageError) Error() string {
	return fmt.Sprintf("handoff storage %s failed: %v", e.Op, e.Err)
}

func (e StorageError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// IsStateError reports whether err is a StateError.
func IsStateError(err error) bool {
	var se StateError
	return errors.As(err, &se)
}
