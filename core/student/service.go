package student

import (
	"context"

	"github.com/mkaleko/shule/core"
)

var ErrNotFound = core.NotFoundError("student not found")

type (
	Repository interface {
		QueryAllStudents(ctx context.Context) ([]Student, error)
		GetStudentByID(ctx context.Context, id int) (Student, error)
		CreateStudent(ctx context.Context, s Student) (Student, error)
		UpdateStudent(ctx context.Context, s Student) (Student, error)
		DeleteStudentsByID(ctx context.Context, ids ...int) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Query fetches the whole collection and filters it in memory; the
// record store only knows generic tables, not our search semantics.
func (svc *Service) Query(ctx context.Context, qf QueryFilter) ([]Student, error) {
	qf.Clean()
	students, err := svc.repo.QueryAllStudents(ctx)
	if err != nil {
		return nil, err
	}
	if qf.IsEmpty() {
		return students, nil
	}
	return Filter(students, qf), nil
}

func (svc *Service) GetByID(ctx context.Context, id int) (Student, error) {
	return svc.repo.GetStudentByID(ctx, id)
}

func (svc *Service) Create(ctx context.Context, ns NewStudent) (Student, error) {
	s := Student{
		FirstName:        ns.FirstName,
		LastName:         ns.LastName,
		Email:            ns.Email,
		Phone:            ns.Phone,
		DateOfBirth:      ns.DateOfBirth,
		EnrollmentDate:   ns.EnrollmentDate,
		Status:           ns.Status,
		GradeLevel:       ns.GradeLevel,
		StudentID:        ns.StudentID,
		Address:          ns.Address,
		EmergencyContact: ns.EmergencyContact,
	}
	if s.Status == "" {
		s.Status = StatusActive
	}
	if s.EnrollmentDate.IsZero() {
		s.EnrollmentDate = core.Today()
	}
	return svc.repo.CreateStudent(ctx, s)
}

func (svc *Service) Update(ctx context.Context, id int, us UpdateStudent) (Student, error) {
	orig, err := svc.repo.GetStudentByID(ctx, id)
	if err != nil {
		return Student{}, err
	}
	s := Student{
		ID:               id,
		FirstName:        us.FirstName,
		LastName:         us.LastName,
		Email:            us.Email,
		Phone:            us.Phone,
		DateOfBirth:      us.DateOfBirth,
		EnrollmentDate:   us.EnrollmentDate,
		Status:           us.Status,
		GradeLevel:       us.GradeLevel,
		StudentID:        us.StudentID,
		Address:          orig.Address,
		EmergencyContact: orig.EmergencyContact,
	}
	if us.Phone == "" {
		s.Phone = orig.Phone
	}
	if us.DateOfBirth.IsZero() {
		s.DateOfBirth = orig.DateOfBirth
	}
	if us.EnrollmentDate.IsZero() {
		s.EnrollmentDate = orig.EnrollmentDate
	}
	if us.Status == "" {
		s.Status = orig.Status
	}
	if us.GradeLevel == "" {
		s.GradeLevel = orig.GradeLevel
	}
	if us.StudentID == "" {
		s.StudentID = orig.StudentID
	}
	if us.Address != nil {
		s.Address = *us.Address
	}
	if us.EmergencyContact != nil {
		s.EmergencyContact = *us.EmergencyContact
	}
	return svc.repo.UpdateStudent(ctx, s)
}

func (svc *Service) Delete(ctx context.Context, ids ...int) error {
	return svc.repo.DeleteStudentsByID(ctx, ids...)
}
