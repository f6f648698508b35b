package database

import (
	"github.com/volatiletech/null/v8"

	"github.com/mkaleko/shule/core"
)

func nullDay(d core.Day) null.Time {
	if d.IsZero() {
		return null.Time{}
	}
	return null.TimeFrom(d.Time())
}

func dayOf(t null.Time) core.Day {
	if !t.Valid {
		return core.Day{}
	}
	return core.NewDay(t.Time)
}

func nullFloat(f *float64) null.Float64 {
	if f == nil {
		return null.Float64{}
	}
	return null.Float64From(*f)
}

func floatPtr(f null.Float64) *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Float64
	return &v
}
