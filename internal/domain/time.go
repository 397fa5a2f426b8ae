package domain

import "time"

// CurrentTimeProvider abstracts the clock so turn timestamps are testable.
type CurrentTimeProvider interface {
	Now() time.Time
}
