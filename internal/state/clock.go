package state

import (
	"time"

	"github.com/google/uuid"
)

// newID returns a fresh identifier for a path or label.
func newID() string {
	return uuid.NewString()
}

// Clock supplies the timestamps written to snapshot metadata.
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now().UTC()
	}
	return c().UTC()
}
