package tmdb

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound matches a *StatusError carrying a 404.
var ErrNotFound = errors.New("tmdb: resource not found")

// StatusError is returned for any non-200 response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("TMDB API returned status %d: %s", e.StatusCode, e.Body)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// MissingKeyError reports a payload key the record mapping requires but the
// response did not carry.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("tmdb payload: missing key %q", e.Key)
}

// FieldTypeError reports a key whose value has an unexpected JSON type.
type FieldTypeError struct {
	Key  string
	Want string
	Got  any
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("tmdb payload: key %q is %T, want %s", e.Key, e.Got, e.Want)
}
