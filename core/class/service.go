package class

import (
	"context"

	"github.com/mkaleko/shule/core"
)

var ErrNotFound = core.NotFoundError("class not found")

type (
	Repository interface {
		QueryAllClasses(ctx context.Context) ([]Class, error)
		GetClassByID(ctx context.Context, id int) (Class, error)
		CreateClass(ctx context.Context, c Class) (Class, error)
		UpdateClass(ctx context.Context, c Class) (Class, error)
		DeleteClassesByID(ctx context.Context, ids ...int) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Query(ctx context.Context, qf QueryFilter) ([]Class, error) {
	qf.Clean()
	classes, err := svc.repo.QueryAllClasses(ctx)
	if err != nil {
		return nil, err
	}
	if qf.IsEmpty() {
		return classes, nil
	}
	return Filter(classes, qf), nil
}

func (svc *Service) GetByID(ctx context.Context, id int) (Class, error) {
	return svc.repo.GetClassByID(ctx, id)
}

func (svc *Service) Create(ctx context.Context, nc NewClass) (Class, error) {
	c := Class{
		Name:       nc.Name,
		Subject:    nc.Subject,
		Teacher:    nc.Teacher,
		Schedule:   nc.Schedule,
		GradeLevel: nc.GradeLevel,
		StudentIDs: nc.StudentIDs,
	}
	return svc.repo.CreateClass(ctx, c)
}

func (svc *Service) Update(ctx context.Context, id int, uc UpdateClass) (Class, error) {
	orig, err := svc.repo.GetClassByID(ctx, id)
	if err != nil {
		return Class{}, err
	}
	c := Class{
		ID:         id,
		Name:       uc.Name,
		Subject:    uc.Subject,
		Teacher:    uc.Teacher,
		Schedule:   orig.Schedule,
		GradeLevel: uc.GradeLevel,
		StudentIDs: uc.StudentIDs,
	}
	if uc.Teacher == "" {
		c.Teacher = orig.Teacher
	}
	if uc.Schedule != nil {
		c.Schedule = *uc.Schedule
	}
	if uc.GradeLevel == "" {
		c.GradeLevel = orig.GradeLevel
	}
	if uc.StudentIDs == nil {
		c.StudentIDs = orig.StudentIDs
	}
	return svc.repo.UpdateClass(ctx, c)
}

func (svc *Service) Delete(ctx context.Context, ids ...int) error {
	return svc.repo.DeleteClassesByID(ctx, ids...)
}
