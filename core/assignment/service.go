package assignment

import (
	"context"

	"github.com/mkaleko/shule/core"
)

var ErrNotFound = core.NotFoundError("assignment not found")

type (
	Repository interface {
		QueryAllAssignments(ctx context.Context) ([]Assignment, error)
		GetAssignmentByID(ctx context.Context, id int) (Assignment, error)
		CreateAssignment(ctx context.Context, a Assignment) (Assignment, error)
		UpdateAssignment(ctx context.Context, a Assignment) (Assignment, error)
		DeleteAssignmentsByID(ctx context.Context, ids ...int) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Query(ctx context.Context, qf QueryFilter) ([]Assignment, error) {
	qf.Clean()
	assignments, err := svc.repo.QueryAllAssignments(ctx)
	if err != nil {
		return nil, err
	}
	if qf.IsEmpty() {
		return assignments, nil
	}
	return Filter(assignments, qf), nil
}

func (svc *Service) GetByID(ctx context.Context, id int) (Assignment, error) {
	return svc.repo.GetAssignmentByID(ctx, id)
}

func (svc *Service) Create(ctx context.Context, na NewAssignment) (Assignment, error) {
	a := Assignment{
		Title:       na.Title,
		Description: na.Description,
		DueDate:     na.DueDate,
		Status:      na.Status,
		Priority:    na.Priority,
		Tags:        na.Tags,
	}
	if a.Status == "" {
		a.Status = StatusNotStarted
	}
	if a.Priority == "" {
		a.Priority = PriorityMedium
	}
	return svc.repo.CreateAssignment(ctx, a)
}

func (svc *Service) Update(ctx context.Context, id int, ua UpdateAssignment) (Assignment, error) {
	orig, err := svc.repo.GetAssignmentByID(ctx, id)
	if err != nil {
		return Assignment{}, err
	}
	a := Assignment{
		ID:          id,
		Title:       ua.Title,
		Description: ua.Description,
		DueDate:     ua.DueDate,
		Status:      ua.Status,
		Priority:    ua.Priority,
		Tags:        ua.Tags,
	}
	if ua.Description == "" {
		a.Description = orig.Description
	}
	if ua.DueDate.IsZero() {
		a.DueDate = orig.DueDate
	}
	if ua.Status == "" {
		a.Status = orig.Status
	}
	if ua.Priority == "" {
		a.Priority = orig.Priority
	}
	if ua.Tags == "" {
		a.Tags = orig.Tags
	}
	return svc.repo.UpdateAssignment(ctx, a)
}

func (svc *Service) Delete(ctx context.Context, ids ...int) error {
	return svc.repo.DeleteAssignmentsByID(ctx, ids...)
}
