package clockwork

import (
	"errors"
	"fmt"
)

// ErrUnavailable indicates the Clockwork API could not be reached at all.
var ErrUnavailable = errors.New("clockwork api unavailable")

// StatusError is a non-2xx response from the Clockwork API. Any such
// response aborts the whole sync.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("clockwork returned status %d: %s", e.StatusCode, e.Body)
}
