// Package clock provides the production implementation of the ports.Clock
// interface.
package clock

import "time"

// System reads the wall clock.
type System struct{}

// Now returns the current time.
func (System) Now() time.Time {
	return time.Now()
}
