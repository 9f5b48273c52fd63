package fetcher

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// StatusError reports a non-success HTTP response.
type StatusError struct {
	Code   int
	Reason string
	URL    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API Error: %d %s", e.Code, e.Reason)
}

// newStatusError builds a StatusError from a response status line such as
// "500 Internal Server Error".
func newStatusError(resp *http.Response, rawURL string) *StatusError {
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}
	return &StatusError{Code: resp.StatusCode, Reason: reason, URL: rawURL}
}

// AsStatusError unwraps err to a *StatusError, if it carries one.
func AsStatusError(err error) (*StatusError, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
