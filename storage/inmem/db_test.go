package inmemdb

import (
	"context"
	"testing"

	"github.com/mkaleko/shule/core"
	"github.com/mkaleko/shule/core/attendance"
	"github.com/mkaleko/shule/core/grade"
	"github.com/mkaleko/shule/core/student"
)

func TestOpen_freshIDSequence(t *testing.T) {
	ctx := context.Background()

	create := func(t *testing.T, repo student.Repository, first string) student.Student {
		t.Helper()
		s, err := repo.CreateStudent(ctx, student.Student{FirstName: first, LastName: "Mwangi"})
		if err != nil {
			t.Fatalf("CreateStudent() failed: %v", err)
		}
		return s
	}

	repo := NewStudentRepository(Open())
	if got := create(t, repo, "Amani"); got.ID != 1 {
		t.Errorf("first ID = %d, want 1", got.ID)
	}
	if got := create(t, repo, "Beatrice"); got.ID != 2 {
		t.Errorf("second ID = %d, want 2", got.ID)
	}

	// a new database starts its sequence over
	repo = NewStudentRepository(Open())
	if got := create(t, repo, "Chiku"); got.ID != 1 {
		t.Errorf("first ID in fresh database = %d, want 1", got.ID)
	}
}

func TestDeleteStudent_orphansRecords(t *testing.T) {
	ctx := context.Background()
	db := Open()
	studentRepo := NewStudentRepository(db)
	gradeRepo := NewGradeRepository(db)
	attendanceRepo := NewAttendanceRepository(db)

	s, err := studentRepo.CreateStudent(ctx, student.Student{FirstName: "Amani", LastName: "Mwangi"})
	if err != nil {
		t.Fatalf("CreateStudent() failed: %v", err)
	}
	if _, err = gradeRepo.CreateGrade(ctx, grade.Grade{StudentID: s.ID, Subject: "Mathematics"}); err != nil {
		t.Fatalf("CreateGrade() failed: %v", err)
	}
	if _, err = attendanceRepo.CreateAttendance(ctx, attendance.Record{StudentID: s.ID, Date: core.Today(), Status: attendance.StatusPresent}); err != nil {
		t.Fatalf("CreateAttendance() failed: %v", err)
	}

	if err = studentRepo.DeleteStudentsByID(ctx, s.ID); err != nil {
		t.Fatalf("DeleteStudentsByID() failed: %v", err)
	}

	// grades and attendance keep the dangling student reference
	grades, err := gradeRepo.QueryGradesByStudent(ctx, s.ID)
	if err != nil {
		t.Fatalf("QueryGradesByStudent() failed: %v", err)
	}
	if len(grades) != 1 {
		t.Errorf("got %d grades after student deletion, want 1", len(grades))
	}
	records, err := attendanceRepo.QueryAttendanceByStudent(ctx, s.ID)
	if err != nil {
		t.Fatalf("QueryAttendanceByStudent() failed: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("got %d attendance records after student deletion, want 1", len(records))
	}
}
