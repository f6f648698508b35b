package reporting

import (
	"context"

	"github.com/pkg/errors"

	"github.com/mkaleko/shule/core"
	"github.com/mkaleko/shule/core/attendance"
	"github.com/mkaleko/shule/core/grade"
	"github.com/mkaleko/shule/core/student"
)

// Service aggregates the student, attendance and grade collections into
// dashboard and report figures. It only reads; all functions it leans
// on are pure.
type Service struct {
	students   student.Repository
	attendance attendance.Repository
	grades     grade.Repository
}

func NewService(students student.Repository, att attendance.Repository, grades grade.Repository) *Service {
	return &Service{students: students, attendance: att, grades: grades}
}

// gather fetches the three collections concurrently, the way the pages
// load: all requests start together and the first error fails the lot.
func (svc *Service) gather(ctx context.Context) ([]student.Student, []attendance.Record, []grade.Grade, error) {
	var (
		students []student.Student
		records  []attendance.Record
		grades   []grade.Grade
	)
	errs := make(chan error, 3)
	go func() {
		var err error
		students, err = svc.students.QueryAllStudents(ctx)
		errs <- errors.Wrap(err, "querying students")
	}()
	go func() {
		var err error
		records, err = svc.attendance.QueryAllAttendance(ctx)
		errs <- errors.Wrap(err, "querying attendance")
	}()
	go func() {
		var err error
		grades, err = svc.grades.QueryAllGrades(ctx)
		errs <- errors.Wrap(err, "querying grades")
	}()
	for i := 0; i < 3; i++ {
		if err := <-errs; err != nil {
			return nil, nil, nil, err
		}
	}
	return students, records, grades, nil
}

func (svc *Service) Dashboard(ctx context.Context) (DashboardStats, error) {
	students, records, grades, err := svc.gather(ctx)
	if err != nil {
		return DashboardStats{}, err
	}

	today := core.Today()
	var presentToday int
	for _, r := range records {
		if r.Date.Equal(today) && r.Status == attendance.StatusPresent {
			presentToday++
		}
	}

	return DashboardStats{
		TotalStudents: len(students),
		PresentToday:  presentToday,
		AverageGrade:  roundPercent(AveragePercent(grades)),
		RecentGrades:  RecentGrades(grades, 5),
	}, nil
}

func (svc *Service) Summarize(ctx context.Context, period Period) (Summary, error) {
	students, records, grades, err := svc.gather(ctx)
	if err != nil {
		return Summary{}, err
	}

	today := core.Today()
	days := period.Days()
	from := today.AddDays(-(days - 1))

	var active int
	for _, s := range students {
		if s.Status == student.StatusActive {
			active++
		}
	}

	return Summary{
		Period:            period,
		TotalStudents:     len(students),
		ActiveStudents:    active,
		AverageAttendance: AttendanceRate(records, from, today),
		AverageGrade:      roundPercent(AveragePercent(grades)),
		Distribution:      Distribution(grades),
		Trends:            Trends(records, days, today),
	}, nil
}

func (svc *Service) TrendSeries(ctx context.Context, period Period) ([]TrendPoint, error) {
	records, err := svc.attendance.QueryAllAttendance(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying attendance")
	}
	return Trends(records, period.Days(), core.Today()), nil
}
