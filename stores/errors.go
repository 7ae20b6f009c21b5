package stores

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means no store exists with the given id.
	ErrNotFound = errors.New("store not found")
	// ErrInvalidID means the id is not even the right shape to look up.
	ErrInvalidID = errors.New("invalid store id")
	// ErrProductNotFound means the product does not exist under that store.
	ErrProductNotFound = errors.New("product not found")
	// ErrDeployFailed wraps a failed status/url update; the store stays in
	// preview and the caller may retry manually.
	ErrDeployFailed = errors.New("deployment failed")
)

// ValidationError reports missing or malformed required input. Always
// caller-recoverable: re-prompt, never retry.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
