package research

import (
	"errors"
	"fmt"
	"net/http"
)

// the research API could not be reached at all
var ErrUnreachable = errors.New("research server unreachable")

// StatusError is returned when the research API answers with a non-2xx status
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Server responded with %d: %s", e.Code, http.StatusText(e.Code))
}

// returns the upstream HTTP status carried by err, or 0
func StatusCode(err error) int {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Code
	}
	return 0
}
