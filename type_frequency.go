package fundfees

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Frequency is a management-fee accrual frequency.
type Frequency int

const (
	Annual Frequency = iota
	Quarterly
	Monthly
)

func (f Frequency) String() string {
	switch f {
	case Annual:
		return "annual"
	case Quarterly:
		return "quarterly"
	case Monthly:
		return "monthly"
	default:
		return "periodic"
	}
}

// months returns the length of one period in calendar months.
func (f Frequency) months() int {
	switch f {
	case Annual:
		return 12
	case Quarterly:
		return 3
	default:
		return 1
	}
}

// PeriodEnd returns the last day of the period starting at start: the start
// shifted by one frequency unit, then one day back. When the start's day does
// not exist in the target month (Jan 31 + 1 month), the end clamps to the
// last day of that month, so consecutive periods always tile without gap or
// overlap when the next period starts the day after.
func (f Frequency) PeriodEnd(start Date) Date {
	shifted := NewDate(start.Year(), start.Month()+time.Month(f.months()), start.Day())
	if shifted.Day() != start.Day() {
		// the day overflowed into the following month
		return NewDate(start.Year(), start.Month()+time.Month(f.months())+1, 0)
	}
	return shifted.Add(-1)
}

func ParseFrequency(s string) (Frequency, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "annual", "annually", "yearly", "year":
		return Annual, nil
	case "quarterly", "quarter":
		return Quarterly, nil
	case "monthly", "month":
		return Monthly, nil
	default:
		return Annual, fmt.Errorf("unknown frequency %q", s)
	}
}

// UnmarshalYAML lets fee-plan files spell the frequency out ("quarterly").
func (f *Frequency) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseFrequency(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
