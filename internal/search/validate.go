package search

import (
	"fmt"
	"regexp"

	"github.com/hal/devprofile/internal/constants"
)

// handlePattern matches the GitHub handle grammar: alphanumeric runs
// separated by single hyphens, so no leading, trailing, or doubled
// hyphen can match.
var handlePattern = regexp.MustCompile(`^[a-zA-Z0-9]+(?:-[a-zA-Z0-9]+)*$`)

// InvalidHandleError is returned for handles rejected before any
// request is sent.
type InvalidHandleError struct {
	Handle string
	Reason string
}

func (e *InvalidHandleError) Error() string {
	return fmt.Sprintf("invalid handle %q: %s", e.Handle, e.Reason)
}

// ValidateHandle checks a handle against the hosting platform's
// grammar without issuing any network call.
func ValidateHandle(handle string) error {
	if handle == "" {
		return &InvalidHandleError{Handle: handle, Reason: "must not be empty"}
	}
	if len(handle) > constants.MaxHandleLength {
		return &InvalidHandleError{
			Handle: handle,
			Reason: fmt.Sprintf("longer than %d characters", constants.MaxHandleLength),
		}
	}
	if !handlePattern.MatchString(handle) {
		return &InvalidHandleError{
			Handle: handle,
			Reason: "may only contain letters, digits, and single interior hyphens",
		}
	}
	return nil
}
