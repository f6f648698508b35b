package department

import (
	"context"

	"github.com/mkaleko/shule/core"
)

var ErrNotFound = core.NotFoundError("department not found")

type (
	Repository interface {
		QueryAllDepartments(ctx context.Context) ([]Department, error)
		GetDepartmentByID(ctx context.Context, id int) (Department, error)
		CreateDepartment(ctx context.Context, d Department) (Department, error)
		UpdateDepartment(ctx context.Context, d Department) (Department, error)
		DeleteDepartmentsByID(ctx context.Context, ids ...int) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Query(ctx context.Context, qf QueryFilter) ([]Department, error) {
	qf.Clean()
	departments, err := svc.repo.QueryAllDepartments(ctx)
	if err != nil {
		return nil, err
	}
	if qf.IsEmpty() {
		return departments, nil
	}
	return Filter(departments, qf), nil
}

func (svc *Service) GetByID(ctx context.Context, id int) (Department, error) {
	return svc.repo.GetDepartmentByID(ctx, id)
}

func (svc *Service) Create(ctx context.Context, nd NewDepartment) (Department, error) {
	d := Department{
		Name:            nd.Name,
		Description:     nd.Description,
		Head:            nd.Head,
		Email:           nd.Email,
		Phone:           nd.Phone,
		Budget:          nd.Budget,
		EstablishedYear: nd.EstablishedYear,
		TeacherCount:    nd.TeacherCount,
		Status:          nd.Status,
	}
	if d.Status == "" {
		d.Status = StatusActive
	}
	return svc.repo.CreateDepartment(ctx, d)
}

func (svc *Service) Update(ctx context.Context, id int, ud UpdateDepartment) (Department, error) {
	orig, err := svc.repo.GetDepartmentByID(ctx, id)
	if err != nil {
		return Department{}, err
	}
	d := Department{
		ID:              id,
		Name:            ud.Name,
		Description:     ud.Description,
		Head:            ud.Head,
		Email:           ud.Email,
		Phone:           ud.Phone,
		Budget:          ud.Budget,
		EstablishedYear: ud.EstablishedYear,
		TeacherCount:    ud.TeacherCount,
		Status:          ud.Status,
	}
	if ud.Description == "" {
		d.Description = orig.Description
	}
	if ud.Head == "" {
		d.Head = orig.Head
	}
	if ud.Email == "" {
		d.Email = orig.Email
	}
	if ud.Phone == "" {
		d.Phone = orig.Phone
	}
	if ud.Budget == nil {
		d.Budget = orig.Budget
	}
	if ud.EstablishedYear == 0 {
		d.EstablishedYear = orig.EstablishedYear
	}
	if ud.TeacherCount == 0 {
		d.TeacherCount = orig.TeacherCount
	}
	if ud.Status == "" {
		d.Status = orig.Status
	}
	return svc.repo.UpdateDepartment(ctx, d)
}

func (svc *Service) Delete(ctx context.Context, ids ...int) error {
	return svc.repo.DeleteDepartmentsByID(ctx, ids...)
}
