package reporting

import (
	"github.com/mkaleko/shule/core"
	"github.com/mkaleko/shule/core/grade"
	"github.com/pkg/errors"
)

// Period selects the reporting window.
type Period string

const (
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
)

// Days returns the number of calendar days the period covers.
func (p Period) Days() int {
	switch p {
	case PeriodWeek:
		return 7
	case PeriodQuarter:
		return 90
	default:
		return 30
	}
}

func ParsePeriod(s string) (Period, error) {
	switch Period(core.CleanString(s, true /* lower */)) {
	case "", PeriodMonth:
		return PeriodMonth, nil
	case PeriodWeek:
		return PeriodWeek, nil
	case PeriodQuarter:
		return PeriodQuarter, nil
	default:
		return "", errors.Errorf("unknown period %q", s)
	}
}

// TrendPoint is one day's attendance tally.
type TrendPoint struct {
	Date    core.Day `json:"date"`
	Present int      `json:"present"`
	Absent  int      `json:"absent"`
	Tardy   int      `json:"tardy"`
	Total   int      `json:"total"`
}

// GradeDistribution buckets valid grades by letter.
type GradeDistribution struct {
	A int `json:"a"`
	B int `json:"b"`
	C int `json:"c"`
	D int `json:"d"`
	F int `json:"f"`
}

// DashboardStats backs the landing page counters.
type DashboardStats struct {
	TotalStudents int           `json:"total_students"`
	PresentToday  int           `json:"present_today"`
	AverageGrade  int           `json:"average_grade"` // rounded percent
	RecentGrades  []grade.Grade `json:"recent_grades"`
}

// Summary backs the reports page for a period.
type Summary struct {
	Period            Period            `json:"period"`
	TotalStudents     int               `json:"total_students"`
	ActiveStudents    int               `json:"active_students"`
	AverageAttendance int               `json:"average_attendance"` // rounded percent
	AverageGrade      int               `json:"average_grade"`      // rounded percent
	Distribution      GradeDistribution `json:"grade_distribution"`
	Trends            []TrendPoint      `json:"trends"`
}
