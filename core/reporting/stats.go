package reporting

import (
	"math"
	"sort"

	"github.com/mkaleko/shule/core"
	"github.com/mkaleko/shule/core/attendance"
	"github.com/mkaleko/shule/core/grade"
)

// LetterGrade maps a percentage onto the school's letter scale.
func LetterGrade(percent float64) string {
	switch {
	case percent >= 90:
		return "A"
	case percent >= 80:
		return "B"
	case percent >= 70:
		return "C"
	case percent >= 60:
		return "D"
	default:
		return "F"
	}
}

// AveragePercent is the arithmetic mean of the valid grades' percentages.
// Grades without a score or a positive max are skipped, and an empty
// valid subset yields 0, not NaN.
func AveragePercent(grades []grade.Grade) float64 {
	var sum float64
	var n int
	for _, g := range grades {
		if pct, ok := g.Percent(); ok {
			sum += pct
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// Distribution buckets the valid grades by letter. Invalid grades are
// excluded entirely; they never land in F.
func Distribution(grades []grade.Grade) GradeDistribution {
	var dist GradeDistribution
	for _, g := range grades {
		pct, ok := g.Percent()
		if !ok {
			continue
		}
		switch LetterGrade(pct) {
		case "A":
			dist.A++
		case "B":
			dist.B++
		case "C":
			dist.C++
		case "D":
			dist.D++
		default:
			dist.F++
		}
	}
	return dist
}

// AttendanceRate is the rounded percentage of Present records among all
// records within [from, to], or 0 when the window holds none.
func AttendanceRate(records []attendance.Record, from, to core.Day) int {
	var present, total int
	for _, r := range records {
		if r.Date.Before(from) || r.Date.After(to) {
			continue
		}
		total++
		if r.Status == attendance.StatusPresent {
			present++
		}
	}
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(present) / float64(total) * 100))
}

// Trends tallies attendance per calendar day for the `days` days ending
// today, oldest first. Days without records produce zero-filled points,
// and record dates are compared as local calendar days.
func Trends(records []attendance.Record, days int, today core.Day) []TrendPoint {
	points := make([]TrendPoint, 0, days)
	for i := 0; i < days; i++ {
		day := today.AddDays(-(days - i - 1))
		pt := TrendPoint{Date: day}
		for _, r := range records {
			if !r.Date.Equal(day) {
				continue
			}
			switch r.Status {
			case attendance.StatusPresent:
				pt.Present++
			case attendance.StatusAbsent:
				pt.Absent++
			case attendance.StatusTardy:
				pt.Tardy++
			}
		}
		pt.Total = pt.Present + pt.Absent + pt.Tardy
		points = append(points, pt)
	}
	return points
}

// RecentGrades returns the n most recently recorded grades, newest
// first. Ties keep their relative input order.
func RecentGrades(grades []grade.Grade, n int) []grade.Grade {
	sorted := make([]grade.Grade, len(grades))
	copy(sorted, grades)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[j].DateRecorded.Before(sorted[i].DateRecorded)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func roundPercent(pct float64) int {
	return int(math.Round(pct))
}
