package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkaleko/shule/core"
	"github.com/mkaleko/shule/core/attendance"
	"github.com/mkaleko/shule/core/grade"
)

func fp(f float64) *float64 { return &f }

func Test_LetterGrade_boundaries(t *testing.T) {
	tests := []struct {
		percent float64
		want    string
	}{
		{100, "A"},
		{90, "A"},
		{89.9, "B"},
		{80, "B"},
		{79, "C"},
		{70, "C"},
		{69, "D"},
		{60, "D"},
		{59.9, "F"},
		{0, "F"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LetterGrade(tt.percent), "percent %v", tt.percent)
	}
}

func Test_AveragePercent(t *testing.T) {
	grades := []grade.Grade{
		{Score: fp(90), MaxPoints: fp(100)},
		{Score: fp(35), MaxPoints: fp(50)}, // 70%
		{Score: fp(10)},                    // invalid, skipped
		{MaxPoints: fp(100)},               // invalid, skipped
	}
	assert.Equal(t, 80.0, AveragePercent(grades))
	assert.Equal(t, 0.0, AveragePercent(nil))
	assert.Equal(t, 0.0, AveragePercent([]grade.Grade{{Score: fp(10)}}))
}

func Test_Distribution_excludesInvalid(t *testing.T) {
	grades := []grade.Grade{
		{Score: fp(95), MaxPoints: fp(100)},
		{Score: fp(85), MaxPoints: fp(100)},
		{Score: fp(30), MaxPoints: fp(100)},
		{Score: fp(12), MaxPoints: fp(0)}, // invalid, not an F
	}
	dist := Distribution(grades)
	assert.Equal(t, GradeDistribution{A: 1, B: 1, F: 1}, dist)
}

func Test_AttendanceRate(t *testing.T) {
	today := core.Today()
	records := []attendance.Record{
		{Date: today, Status: attendance.StatusPresent},
		{Date: today.AddDays(-1), Status: attendance.StatusPresent},
		{Date: today.AddDays(-2), Status: attendance.StatusAbsent},
		{Date: today.AddDays(-40), Status: attendance.StatusAbsent}, // outside window
	}
	from := today.AddDays(-6)

	assert.Equal(t, 67, AttendanceRate(records, from, today))
	assert.Equal(t, 0, AttendanceRate(nil, from, today))
}

func Test_Trends_zeroFilled(t *testing.T) {
	today := core.Today()
	records := []attendance.Record{
		{Date: today, Status: attendance.StatusPresent},
		{Date: today, Status: attendance.StatusTardy},
		{Date: today.AddDays(-3), Status: attendance.StatusAbsent},
	}

	points := Trends(records, 7, today)
	assert.Len(t, points, 7)

	assert.True(t, points[0].Date.Equal(today.AddDays(-6)))
	assert.True(t, points[6].Date.Equal(today))

	// day with no records is zero-filled
	assert.Equal(t, 0, points[0].Total)

	assert.Equal(t, 1, points[3].Absent)
	assert.Equal(t, 1, points[3].Total)

	assert.Equal(t, 1, points[6].Present)
	assert.Equal(t, 1, points[6].Tardy)
	assert.Equal(t, 2, points[6].Total)
}

func Test_RecentGrades(t *testing.T) {
	today := core.Today()
	grades := []grade.Grade{
		{ID: 1, DateRecorded: today.AddDays(-5)},
		{ID: 2, DateRecorded: today},
		{ID: 3, DateRecorded: today.AddDays(-1)},
		{ID: 4, DateRecorded: today}, // tied with 2, keeps input order
	}

	got := RecentGrades(grades, 3)
	assert.Len(t, got, 3)
	assert.Equal(t, 2, got[0].ID)
	assert.Equal(t, 4, got[1].ID)
	assert.Equal(t, 3, got[2].ID)

	// input not mutated
	assert.Equal(t, 1, grades[0].ID)
}

func Test_ParsePeriod(t *testing.T) {
	p, err := ParsePeriod("")
	assert.NoError(t, err)
	assert.Equal(t, PeriodMonth, p)

	p, err = ParsePeriod("Week")
	assert.NoError(t, err)
	assert.Equal(t, PeriodWeek, p)
	assert.Equal(t, 7, p.Days())

	_, err = ParsePeriod("decade")
	assert.Error(t, err)
}
