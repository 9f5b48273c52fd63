package dashboard

import (
	"github.com/rotisserie/eris"
)

// ErrUnavailable matches any failed fetch cycle via errors.Is.
var ErrUnavailable = eris.New("dashboard: data unavailable")

// UnavailableError reports a failed fetch cycle. Its message is generic;
// the underlying cause is reachable through Unwrap for logging only.
type UnavailableError struct {
	CycleID string
	Cause   error
}

func (e *UnavailableError) Error() string {
	return ErrUnavailable.Error()
}

func (e *UnavailableError) Unwrap() error {
	return e.Cause
}

// Is reports true for ErrUnavailable.
func (e *UnavailableError) Is(target error) bool {
	return target == ErrUnavailable
}

func wrapLoad(dataset string, err error) error {
	if err == nil {
		return nil
	}
	return eris.Wrapf(err, "dashboard: load %s", dataset)
}
