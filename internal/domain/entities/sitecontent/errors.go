package sitecontent

import "fmt"

// ValidationError reports a malformed address or value. It is recovered at
// the batch boundary and reported per change, never surfaced to the public
// read path.
type ValidationError struct {
	Address Address
	Reason  string
}

func (e *ValidationError) Error() string {
	if e.Address.Valid() {
		return fmt.Sprintf("invalid content change for %s: %s", e.Address, e.Reason)
	}
	return fmt.Sprintf("invalid content change: %s", e.Reason)
}

// StorageUnavailableError wraps a backing-store failure. Callers surface it
// to the editor as a failed save; the public read path falls back to
// defaults instead.
type StorageUnavailableError struct {
	Op  string
	Err error
}

func (e *StorageUnavailableError) Error() string {
	return fmt.Sprintf("content store unavailable during %s: %v", e.Op, e.Err)
}

func (e *StorageUnavailableError) Unwrap() error {
	return e.Err
}

// AuthorizationError rejects an entire batch from a caller without editor
// privileges. No partial application happens for unauthorized callers.
type AuthorizationError struct {
	Reason string
}

func (e *AuthorizationError) Error() string {
	return "not authorized: " + e.Reason
}

// LoadError reports a failed fetch of the effective content. An editing
// session holding this error stays non-editable until a manual retry
// succeeds.
type LoadError struct {
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load site content: %v", e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
