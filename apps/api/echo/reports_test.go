package echoapi

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkaleko/shule/core"
	"github.com/mkaleko/shule/core/attendance"
	"github.com/mkaleko/shule/core/grade"
	"github.com/mkaleko/shule/core/reporting"
	"github.com/mkaleko/shule/core/student"
)

func seedReportData(t *testing.T, env *testEnv) {
	t.Helper()
	ctx := context.Background()
	today := core.Today()
	fp := func(f float64) *float64 { return &f }

	amani := createStudent(t, env, "Amani", "Mwangi", student.StatusActive, student.GradeLevel10)
	bea := createStudent(t, env, "Beatrice", "Okoro", student.StatusInactive, student.GradeLevel11)

	grades := []grade.Grade{
		{StudentID: amani.ID, Subject: "Mathematics", Score: fp(95), MaxPoints: fp(100), DateRecorded: today},
		{StudentID: bea.ID, Subject: "English", Score: fp(35), MaxPoints: fp(50), DateRecorded: today.AddDays(-1)},
		{StudentID: bea.ID, Subject: "History", Score: fp(10)}, // invalid, excluded
	}
	for _, g := range grades {
		if _, err := env.gradeRepo.CreateGrade(ctx, g); err != nil {
			t.Fatalf("seeding grades: %v", err)
		}
	}

	records := []attendance.Record{
		{StudentID: amani.ID, Date: today, Status: attendance.StatusPresent, Class: "General"},
		{StudentID: bea.ID, Date: today, Status: attendance.StatusAbsent, Class: "General"},
		{StudentID: amani.ID, Date: today.AddDays(-1), Status: attendance.StatusPresent, Class: "General"},
	}
	for _, r := range records {
		if _, err := env.attendanceRepo.CreateAttendance(ctx, r); err != nil {
			t.Fatalf("seeding attendance: %v", err)
		}
	}
}

func Test_reportsApi_dashboard(t *testing.T) {
	env := setup(t)
	seedReportData(t, env)

	rec := env.request(t, http.MethodGet, "/v1/reports/dashboard", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var stats reporting.DashboardStats
	decode(t, rec, &stats)
	assert.Equal(t, 2, stats.TotalStudents)
	assert.Equal(t, 1, stats.PresentToday)
	// (95% + 70%) / 2, invalid grade excluded
	assert.Equal(t, 83, stats.AverageGrade)
	// recent activity lists every grade, valid or not
	assert.Len(t, stats.RecentGrades, 3)
}

func Test_reportsApi_summary(t *testing.T) {
	env := setup(t)
	seedReportData(t, env)

	rec := env.request(t, http.MethodGet, "/v1/reports/summary?period=week", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var summary reporting.Summary
	decode(t, rec, &summary)
	assert.Equal(t, reporting.PeriodWeek, summary.Period)
	assert.Equal(t, 2, summary.TotalStudents)
	assert.Equal(t, 1, summary.ActiveStudents)
	// 2 Present of 3 records in the window
	assert.Equal(t, 67, summary.AverageAttendance)
	assert.Equal(t, reporting.GradeDistribution{A: 1, C: 1}, summary.Distribution)
	assert.Len(t, summary.Trends, 7)

	rec = env.request(t, http.MethodGet, "/v1/reports/summary?period=decade", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_reportsApi_trends(t *testing.T) {
	env := setup(t)
	seedReportData(t, env)

	rec := env.request(t, http.MethodGet, "/v1/reports/trends", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var points []reporting.TrendPoint
	decode(t, rec, &points)
	assert.Len(t, points, 30)
	last := points[len(points)-1]
	assert.Equal(t, 1, last.Present)
	assert.Equal(t, 1, last.Absent)
	assert.Equal(t, 2, last.Total)
}

func Test_reportsApi_export(t *testing.T) {
	env := setup(t)
	seedReportData(t, env)

	rec := env.request(t, http.MethodGet, "/v1/reports/export?period=month", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "school-report-month")
	assert.NotZero(t, rec.Body.Len())
}
