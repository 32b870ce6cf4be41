package ports

import "time"

// Clock abstracts the source of "now" so date-adjustment and future-date
// checks stay deterministic in tests.
type Clock interface {
	Now() time.Time
}
