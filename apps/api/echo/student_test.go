package echoapi

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkaleko/shule/core"
	"github.com/mkaleko/shule/core/attendance"
	"github.com/mkaleko/shule/core/grade"
	"github.com/mkaleko/shule/core/student"
)

func createStudent(t *testing.T, env *testEnv, first, last, status, level string) student.Student {
	t.Helper()
	s, err := env.studentRepo.CreateStudent(context.Background(), student.Student{
		FirstName:  first,
		LastName:   last,
		Status:     status,
		GradeLevel: level,
	})
	if err != nil {
		t.Fatalf("createStudent() failed: %v", err)
	}
	return s
}

func Test_studentApi_query(t *testing.T) {
	env := setup(t)
	amani := createStudent(t, env, "Amani", "Mwangi", student.StatusActive, student.GradeLevel10)
	createStudent(t, env, "Beatrice", "Okoro", student.StatusInactive, student.GradeLevel11)
	chiku := createStudent(t, env, "Chiku", "Ndiaye", student.StatusActive, student.GradeLevel10)

	tests := []struct {
		name    string
		path    string
		wantIDs []int
	}{
		{name: "all", path: "/v1/students", wantIDs: []int{amani.ID, 2, chiku.ID}},
		{name: "status", path: "/v1/students?status=active", wantIDs: []int{amani.ID, chiku.ID}},
		{name: "all sentinel", path: "/v1/students?status=all", wantIDs: []int{1, 2, 3}},
		{name: "search", path: "/v1/students?search=ndia", wantIDs: []int{chiku.ID}},
		{name: "compose", path: "/v1/students?search=a&grade_level=10th", wantIDs: []int{amani.ID, chiku.ID}},
		{name: "no match", path: "/v1/students?search=zzz", wantIDs: []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.request(t, http.MethodGet, tt.path, nil)
			assert.Equal(t, http.StatusOK, rec.Code)

			var got []student.Student
			decode(t, rec, &got)
			gotIDs := make([]int, len(got))
			for i, s := range got {
				gotIDs[i] = s.ID
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func Test_studentApi_create(t *testing.T) {
	env := setup(t)

	rec := env.request(t, http.MethodPost, "/v1/students", map[string]interface{}{
		"first_name": "Amani",
		"last_name":  "Mwangi",
		"status":     "active",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)

	var got student.Student
	decode(t, rec, &got)
	assert.NotZero(t, got.ID)
	assert.Equal(t, student.StatusActive, got.Status)
	assert.False(t, got.EnrollmentDate.IsZero())

	// validation failure reports per-field errors
	rec = env.request(t, http.MethodPost, "/v1/students", map[string]interface{}{
		"last_name": "Mwangi",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var fields map[string]string
	decode(t, rec, &fields)
	assert.Contains(t, fields, "first_name")
}

func Test_studentApi_retrieveUpdateDestroy(t *testing.T) {
	env := setup(t)
	s := createStudent(t, env, "Amani", "Mwangi", student.StatusActive, student.GradeLevel10)

	rec := env.request(t, http.MethodGet, "/v1/students/1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.request(t, http.MethodGet, "/v1/students/99", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// blank fields keep their values
	rec = env.request(t, http.MethodPut, "/v1/students/1", map[string]interface{}{
		"grade_level": student.GradeLevel11,
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	var got student.Student
	decode(t, rec, &got)
	assert.Equal(t, s.FirstName, got.FirstName)
	assert.Equal(t, student.GradeLevel11, got.GradeLevel)

	rec = env.request(t, http.MethodDelete, "/v1/students/1", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.request(t, http.MethodGet, "/v1/students/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func Test_studentApi_gradesAndAttendance(t *testing.T) {
	env := setup(t)
	ctx := context.Background()
	today := core.Today()
	fp := func(f float64) *float64 { return &f }

	amani := createStudent(t, env, "Amani", "Mwangi", student.StatusActive, student.GradeLevel10)
	bea := createStudent(t, env, "Beatrice", "Okoro", student.StatusActive, student.GradeLevel10)

	for _, g := range []grade.Grade{
		{StudentID: amani.ID, Subject: "Mathematics", Score: fp(95), MaxPoints: fp(100), DateRecorded: today},
		{StudentID: bea.ID, Subject: "English", Score: fp(40), MaxPoints: fp(50), DateRecorded: today},
	} {
		if _, err := env.gradeRepo.CreateGrade(ctx, g); err != nil {
			t.Fatalf("seeding grades: %v", err)
		}
	}
	for _, r := range []attendance.Record{
		{StudentID: amani.ID, Date: today, Status: attendance.StatusPresent, Class: "General"},
		{StudentID: amani.ID, Date: today.AddDays(-1), Status: attendance.StatusTardy, Class: "General"},
		{StudentID: bea.ID, Date: today, Status: attendance.StatusAbsent, Class: "General"},
	} {
		if _, err := env.attendanceRepo.CreateAttendance(ctx, r); err != nil {
			t.Fatalf("seeding attendance: %v", err)
		}
	}

	rec := env.request(t, http.MethodGet, "/v1/students/1/grades", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	var grades []grade.Grade
	decode(t, rec, &grades)
	if assert.Len(t, grades, 1) {
		assert.Equal(t, "Mathematics", grades[0].Subject)
	}

	rec = env.request(t, http.MethodGet, "/v1/students/1/attendance", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	var records []attendance.Record
	decode(t, rec, &records)
	assert.Len(t, records, 2)

	rec = env.request(t, http.MethodGet, "/v1/students/99/grades", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
