package api

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrInvalidAPIRoot = errors.New("api root is not an absolute URL")

// Error is a non-2xx response from the notes service
type Error struct {
	StatusCode int
	// Summary is a short description of what failed, e.g. "note 3 is not found"
	Summary string
	// Detail is the message the server sent, if any
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s (status code = %d)", e.Summary, e.StatusCode)
	}
	return fmt.Sprintf("%s (status code = %d): %s", e.Summary, e.StatusCode, e.Detail)
}

// IsNotFound reports whether err is a 404 from the notes service
func IsNotFound(err error) bool {
	var aerr *Error
	return errors.As(err, &aerr) && aerr.StatusCode == http.StatusNotFound
}
