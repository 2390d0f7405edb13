// Package session keeps the API token and the user profile in two
// redundant stores: server-side page session data and plain request
// cookies.
package session

import (
	"errors"
	"net/http"
	"time"
)

const (
	KeyToken = "token"
	KeyUser  = "user"
)

var (
	ErrCookieTooLarge = errors.New("cookie too large")
	ErrEmptyToken     = errors.New("empty token")
	ErrNilUser        = errors.New("nil user")
)

// Store is one backing store for the session entries. Absent keys are
// not an error.
type Store interface {
	Name() string
	Get(r *http.Request, key string) (string, bool)
	// Check reports whether Set would accept the entry, without writing.
	Check(key, value string) error
	Set(w http.ResponseWriter, r *http.Request, key, value string, ttl time.Duration) error
	Delete(w http.ResponseWriter, r *http.Request, key string)
}
