package core

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

const dayFormat = "2006-01-02"

// Day is a calendar date at day granularity. Attendance, due dates and
// trend buckets all compare local calendar days, never timestamps.
type Day struct {
	t time.Time
}

func NewDay(t time.Time) Day {
	y, m, d := t.Date()
	return Day{t: time.Date(y, m, d, 0, 0, 0, 0, t.Location())}
}

func Today() Day {
	return NewDay(time.Now())
}

func ParseDay(s string) (Day, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Day{}, nil
	}
	// day-only first, then full timestamps from older records
	if t, err := time.ParseInLocation(dayFormat, s, time.Local); err == nil {
		return NewDay(t), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Day{}, errors.Wrapf(err, "parsing day %q", s)
	}
	return NewDay(t.Local()), nil
}

func (d Day) IsZero() bool { return d.t.IsZero() }

func (d Day) Time() time.Time { return d.t }

func (d Day) AddDays(n int) Day { return NewDay(d.t.AddDate(0, 0, n)) }

func (d Day) Equal(o Day) bool {
	y1, m1, d1 := d.t.Date()
	y2, m2, d2 := o.t.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func (d Day) Before(o Day) bool {
	if d.Equal(o) {
		return false
	}
	return d.t.Before(o.t)
}

func (d Day) After(o Day) bool { return o.Before(d) }

func (d Day) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(dayFormat)
}

func (d Day) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Day) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = Day{}
		return nil
	}
	day, err := ParseDay(s)
	if err != nil {
		return err
	}
	*d = day
	return nil
}

// UnmarshalParam lets echo bind Day query and path params.
func (d *Day) UnmarshalParam(src string) error {
	day, err := ParseDay(src)
	if err != nil {
		return err
	}
	*d = day
	return nil
}
