package grade

import (
	"context"

	"github.com/mkaleko/shule/core"
)

var ErrNotFound = core.NotFoundError("grade not found")

type (
	Repository interface {
		QueryAllGrades(ctx context.Context) ([]Grade, error)
		QueryGradesByStudent(ctx context.Context, studentID int) ([]Grade, error)
		GetGradeByID(ctx context.Context, id int) (Grade, error)
		CreateGrade(ctx context.Context, g Grade) (Grade, error)
		UpdateGrade(ctx context.Context, g Grade) (Grade, error)
		DeleteGradesByID(ctx context.Context, ids ...int) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Query(ctx context.Context, qf QueryFilter) ([]Grade, error) {
	qf.Clean()
	grades, err := svc.repo.QueryAllGrades(ctx)
	if err != nil {
		return nil, err
	}
	if qf.IsEmpty() {
		return grades, nil
	}
	return Filter(grades, qf), nil
}

func (svc *Service) QueryByStudent(ctx context.Context, studentID int) ([]Grade, error) {
	return svc.repo.QueryGradesByStudent(ctx, studentID)
}

func (svc *Service) GetByID(ctx context.Context, id int) (Grade, error) {
	return svc.repo.GetGradeByID(ctx, id)
}

func (svc *Service) Create(ctx context.Context, ng NewGrade) (Grade, error) {
	g := Grade{
		StudentID:     ng.StudentID,
		Subject:       ng.Subject,
		Assignment:    ng.Assignment,
		Score:         ng.Score,
		MaxPoints:     ng.MaxPoints,
		DateRecorded:  ng.DateRecorded,
		GradingPeriod: ng.GradingPeriod,
	}
	if g.DateRecorded.IsZero() {
		g.DateRecorded = core.Today()
	}
	return svc.repo.CreateGrade(ctx, g)
}

func (svc *Service) Update(ctx context.Context, id int, ug UpdateGrade) (Grade, error) {
	orig, err := svc.repo.GetGradeByID(ctx, id)
	if err != nil {
		return Grade{}, err
	}
	g := Grade{
		ID:            id,
		StudentID:     orig.StudentID,
		Subject:       ug.Subject,
		Assignment:    ug.Assignment,
		Score:         ug.Score,
		MaxPoints:     ug.MaxPoints,
		DateRecorded:  ug.DateRecorded,
		GradingPeriod: ug.GradingPeriod,
	}
	if g.Score == nil {
		g.Score = orig.Score
	}
	if g.MaxPoints == nil {
		g.MaxPoints = orig.MaxPoints
	}
	if g.DateRecorded.IsZero() {
		g.DateRecorded = orig.DateRecorded
	}
	if g.GradingPeriod == "" {
		g.GradingPeriod = orig.GradingPeriod
	}
	return svc.repo.UpdateGrade(ctx, g)
}

func (svc *Service) Delete(ctx context.Context, ids ...int) error {
	return svc.repo.DeleteGradesByID(ctx, ids...)
}
