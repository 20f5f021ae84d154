// Package store holds the in-memory plan and service collections. Stores are
// explicit objects built once at startup and shared by reference; reads hand
// out copies, so callers never mutate store state directly.
//
// Operations on an unknown id are silent no-ops. Methods report whether the
// id was found so the HTTP layer can answer 404 without the store failing.
package store

import (
	"time"

	"github.com/google/uuid"
)

// Clock returns the current time. It is injected so schedules are testable.
type Clock func() time.Time

func newID() string {
	return uuid.NewString()
}

func clockOrNow(c Clock) Clock {
	if c == nil {
		return time.Now
	}
	return c
}
