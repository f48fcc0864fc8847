package resource

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrFetch          = errors.New("resource: fetch failed")
	ErrUnsupportedRef = errors.New("resource: reference not supported by fetcher")
	ErrInvalidConfig  = errors.New("resource: invalid configuration")
	ErrBodyTooLarge   = errors.New("resource: body exceeds size limit")
)

// StatusError reports a non-success response for a reference.
type StatusError struct {
	Ref  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("resource %s: %d %s", e.Ref, e.Code, http.StatusText(e.Code))
}

// IsNotFound reports whether err is a 404 StatusError.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusNotFound
}

func notFound(ref string) error {
	return &StatusError{Ref: ref, Code: http.StatusNotFound}
}
