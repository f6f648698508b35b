package apperstore

import (
	"context"

	"github.com/mkaleko/shule/core/department"
)

var departmentFields = Fields(
	"Id",
	"name_c", "description_c", "head_c", "email_c", "phone_c",
	"budget_c", "established_year_c", "teacher_count_c", "status_c",
	"name", "description", "head", "email", "phone",
	"budget", "establishedYear", "teacherCount", "status",
)

type DepartmentRepository struct {
	client *Client
}

var _ department.Repository = (*DepartmentRepository)(nil)

func NewDepartmentRepository(client *Client) *DepartmentRepository {
	return &DepartmentRepository{client: client}
}

func (repo *DepartmentRepository) QueryAllDepartments(ctx context.Context) ([]department.Department, error) {
	records, err := repo.client.FetchAllRecords(ctx, departmentTable, departmentFields, nil, nil)
	if err != nil {
		return nil, err
	}
	departments := make([]department.Department, len(records))
	for i, r := range records {
		departments[i] = decodeDepartment(r)
	}
	return departments, nil
}

func (repo *DepartmentRepository) GetDepartmentByID(ctx context.Context, id int) (department.Department, error) {
	r, err := repo.client.GetRecordByID(ctx, departmentTable, id, departmentFields)
	if err != nil {
		return department.Department{}, err
	}
	if r == nil {
		return department.Department{}, department.ErrNotFound
	}
	return decodeDepartment(r), nil
}

func (repo *DepartmentRepository) CreateDepartment(ctx context.Context, d department.Department) (department.Department, error) {
	created, err := repo.client.CreateRecord(ctx, departmentTable, []map[string]interface{}{encodeDepartment(d)})
	if err != nil {
		return department.Department{}, err
	}
	if len(created) == 0 {
		return department.Department{}, errNoRecordReturned("create", departmentTable)
	}
	return decodeDepartment(created[0]), nil
}

func (repo *DepartmentRepository) UpdateDepartment(ctx context.Context, d department.Department) (department.Department, error) {
	fields := encodeDepartment(d)
	fields["Id"] = d.ID
	updated, err := repo.client.UpdateRecord(ctx, departmentTable, []map[string]interface{}{fields})
	if err != nil {
		return department.Department{}, err
	}
	if len(updated) == 0 {
		return department.Department{}, errNoRecordReturned("update", departmentTable)
	}
	return decodeDepartment(updated[0]), nil
}

func (repo *DepartmentRepository) DeleteDepartmentsByID(ctx context.Context, ids ...int) error {
	return repo.client.DeleteRecords(ctx, departmentTable, ids...)
}

func decodeDepartment(r RawRecord) department.Department {
	return department.Department{
		ID:              r.ID(),
		Name:            r.String("name"),
		Description:     r.String("description"),
		Head:            r.String("head"),
		Email:           r.String("email"),
		Phone:           r.String("phone"),
		Budget:          r.FloatPtr("budget"),
		EstablishedYear: r.Int("established_year"),
		TeacherCount:    r.Int("teacher_count"),
		Status:          r.String("status"),
	}
}

func encodeDepartment(d department.Department) map[string]interface{} {
	fields := map[string]interface{}{
		"name_c":             d.Name,
		"description_c":      d.Description,
		"head_c":             d.Head,
		"email_c":            d.Email,
		"phone_c":            d.Phone,
		"budget_c":           nil,
		"established_year_c": d.EstablishedYear,
		"teacher_count_c":    d.TeacherCount,
		"status_c":           d.Status,
	}
	if d.Budget != nil {
		fields["budget_c"] = *d.Budget
	}
	return fields
}
