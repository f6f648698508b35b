package echoapi

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkaleko/shule/core"
	"github.com/mkaleko/shule/core/attendance"
)

func Test_attendanceApi_mark(t *testing.T) {
	env := setup(t)
	today := core.Today()

	rec := env.request(t, http.MethodPost, "/v1/attendance/marks", map[string]interface{}{
		"student_id": 1,
		"date":       today.String(),
		"status":     "present",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	var first attendance.Record
	decode(t, rec, &first)
	assert.NotZero(t, first.ID)
	assert.Equal(t, attendance.StatusPresent, first.Status)
	assert.Equal(t, attendance.DefaultClass, first.Class)

	// marking again flips the status without inserting a second row
	rec = env.request(t, http.MethodPost, "/v1/attendance/marks", map[string]interface{}{
		"student_id": 1,
		"date":       today.String(),
		"status":     attendance.StatusAbsent,
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	var second attendance.Record
	decode(t, rec, &second)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, attendance.StatusAbsent, second.Status)

	records, err := env.attendanceRepo.QueryAttendanceByStudent(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, records, 1)

	// bad status is a field error
	rec = env.request(t, http.MethodPost, "/v1/attendance/marks", map[string]interface{}{
		"student_id": 1,
		"status":     "Expelled",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_attendanceApi_query(t *testing.T) {
	env := setup(t)
	today := core.Today()
	ctx := context.Background()

	seed := []attendance.Record{
		{StudentID: 1, Date: today, Status: attendance.StatusPresent, Class: "General"},
		{StudentID: 2, Date: today, Status: attendance.StatusAbsent, Class: "General", Notes: "sick"},
		{StudentID: 1, Date: today.AddDays(-1), Status: attendance.StatusTardy, Class: "Homeroom"},
	}
	for _, r := range seed {
		if _, err := env.attendanceRepo.CreateAttendance(ctx, r); err != nil {
			t.Fatalf("seeding attendance: %v", err)
		}
	}

	tests := []struct {
		name string
		path string
		want int
	}{
		{name: "all", path: "/v1/attendance", want: 3},
		{name: "by student", path: "/v1/attendance?student_id=1", want: 2},
		{name: "by status", path: "/v1/attendance?status=absent", want: 1},
		{name: "from today", path: "/v1/attendance?from=" + today.String(), want: 2},
		{name: "search notes", path: "/v1/attendance?search=sick", want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.request(t, http.MethodGet, tt.path, nil)
			assert.Equal(t, http.StatusOK, rec.Code)

			var got []attendance.Record
			decode(t, rec, &got)
			assert.Len(t, got, tt.want)
		})
	}
}
