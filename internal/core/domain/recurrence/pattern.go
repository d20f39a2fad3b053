package recurrence

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-module/carbon/v2"
)

type Pattern struct {
	v string
}

func (p Pattern) String() string {
	return p.v
}

var (
	PatternUnknown = Pattern{}
	PatternDaily   = Pattern{v: "daily"}
	PatternWeekly  = Pattern{v: "weekly"}
	PatternMonthly = Pattern{v: "monthly"}
	PatternYearly  = Pattern{v: "yearly"}
)

func ParsePattern(value string) (Pattern, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "daily":
		return PatternDaily, nil
	case "weekly":
		return PatternWeekly, nil
	case "monthly":
		return PatternMonthly, nil
	case "yearly":
		return PatternYearly, nil
	case "":
		return PatternUnknown, ErrPatternRequired
	default:
		return PatternUnknown, fmt.Errorf("%w: %q", ErrUnknownPattern, value)
	}
}

// Advance returns the n-th occurrence after anchor. Calendar steps clamp to the
// last day of a shorter month instead of overflowing into the next one.
func (p Pattern) Advance(anchor time.Time, n int) time.Time {
	switch p {
	case PatternDaily:
		return carbon.Time2Carbon(anchor).AddDays(n).Carbon2Time()
	case PatternWeekly:
		return carbon.Time2Carbon(anchor).AddWeeks(n).Carbon2Time()
	case PatternMonthly:
		return carbon.Time2Carbon(anchor).AddMonthsNoOverflow(n).Carbon2Time()
	case PatternYearly:
		return carbon.Time2Carbon(anchor).AddYearsNoOverflow(n).Carbon2Time()
	default:
		panic(fmt.Sprintf("unexpected pattern: %v", p))
	}
}
