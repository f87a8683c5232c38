package settings

import "errors"

var (
	ErrSettingsNotFound = errors.New("attendance settings not found")

	// ErrMultipleActiveSnapshots signals a data-integrity violation: the
	// store should never hold more than one active snapshot.
	ErrMultipleActiveSnapshots = errors.New("more than one active attendance settings snapshot")
)
