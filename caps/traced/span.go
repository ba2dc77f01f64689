package traced

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
)

// TimeSpan bounds one observed piece of work in wall-clock time.
type TimeSpan = timespan.TimeSpan

func NewTimeSpan(from, to time.Time) TimeSpan {
	return timespan.BetweenTimes(from, to)
}

const epsilon = time.Millisecond

// Now returns a span bracketing the current instant, wide enough to absorb
// clock granularity.
func Now() TimeSpan {
	now := time.Now()
	return timespan.BetweenTimes(now.Add(-1*epsilon), now.Add(epsilon))
}
