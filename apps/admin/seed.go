package main

import (
	"context"

	"github.com/mkaleko/shule/core"
	"github.com/mkaleko/shule/core/attendance"
	"github.com/mkaleko/shule/core/grade"
	"github.com/mkaleko/shule/core/student"
	"github.com/mkaleko/shule/storage/database"
)

func floatp(f float64) *float64 { return &f }

// seed loads a handful of students with grades and a week of attendance,
// enough to exercise the dashboard and reports locally.
func (cli *commandLine) seed() error {
	ctx := context.Background()

	studentRepo := database.NewStudentRepository(cli.db)
	gradeRepo := database.NewGradeRepository(cli.db)
	attendanceRepo := database.NewAttendanceRepository(cli.db)

	students := []student.Student{
		{FirstName: "Amani", LastName: "Mwangi", Email: "amani.mwangi@example.com", Status: student.StatusActive, GradeLevel: student.GradeLevel10, StudentID: "STU-0001", EnrollmentDate: core.Today().AddDays(-200)},
		{FirstName: "Beatrice", LastName: "Okoro", Email: "beatrice.okoro@example.com", Status: student.StatusActive, GradeLevel: student.GradeLevel11, StudentID: "STU-0002", EnrollmentDate: core.Today().AddDays(-400)},
		{FirstName: "Chiku", LastName: "Ndiaye", Email: "chiku.ndiaye@example.com", Status: student.StatusInactive, GradeLevel: student.GradeLevel9, StudentID: "STU-0003", EnrollmentDate: core.Today().AddDays(-90)},
	}

	for i, s := range students {
		created, err := studentRepo.CreateStudent(ctx, s)
		if err != nil {
			return err
		}
		students[i] = created

		grades := []grade.Grade{
			{StudentID: created.ID, Subject: "Mathematics", Assignment: "Algebra Quiz", Score: floatp(42), MaxPoints: floatp(50), DateRecorded: core.Today().AddDays(-10), GradingPeriod: "Q1"},
			{StudentID: created.ID, Subject: "English", Assignment: "Essay", Score: floatp(78), MaxPoints: floatp(100), DateRecorded: core.Today().AddDays(-5), GradingPeriod: "Q1"},
		}
		for _, g := range grades {
			if _, err = gradeRepo.CreateGrade(ctx, g); err != nil {
				return err
			}
		}

		for d := 0; d < 5; d++ {
			status := attendance.StatusPresent
			if d == 2 && i == 0 {
				status = attendance.StatusTardy
			}
			rec := attendance.Record{
				StudentID: created.ID,
				Date:      core.Today().AddDays(-d),
				Status:    status,
				Class:     attendance.DefaultClass,
			}
			if _, err = attendanceRepo.CreateAttendance(ctx, rec); err != nil {
				return err
			}
		}
	}

	logger.Printf("seeded %d students\n", len(students))
	return nil
}
