package database

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/mkaleko/shule/core/department"
)

type departmentRow struct {
	ID              int          `db:"id"`
	Name            string       `db:"name"`
	Description     string       `db:"description"`
	Head            string       `db:"head"`
	Email           string       `db:"email"`
	Phone           string       `db:"phone"`
	Budget          null.Float64 `db:"budget"`
	EstablishedYear int          `db:"established_year"`
	TeacherCount    int          `db:"teacher_count"`
	Status          string       `db:"status"`
}

func (r departmentRow) toDepartment() department.Department {
	return department.Department{
		ID:              r.ID,
		Name:            r.Name,
		Description:     r.Description,
		Head:            r.Head,
		Email:           r.Email,
		Phone:           r.Phone,
		Budget:          floatPtr(r.Budget),
		EstablishedYear: r.EstablishedYear,
		TeacherCount:    r.TeacherCount,
		Status:          r.Status,
	}
}

func toDepartmentRow(d department.Department) departmentRow {
	return departmentRow{
		ID:              d.ID,
		Name:            d.Name,
		Description:     d.Description,
		Head:            d.Head,
		Email:           d.Email,
		Phone:           d.Phone,
		Budget:          nullFloat(d.Budget),
		EstablishedYear: d.EstablishedYear,
		TeacherCount:    d.TeacherCount,
		Status:          d.Status,
	}
}

type DepartmentRepository struct {
	db *sqlx.DB
}

var _ department.Repository = (*DepartmentRepository)(nil)

func NewDepartmentRepository(db *sqlx.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

func (repo *DepartmentRepository) QueryAllDepartments(ctx context.Context) ([]department.Department, error) {
	var rows []departmentRow
	if err := repo.db.SelectContext(ctx, &rows, `SELECT * FROM department ORDER BY id`); err != nil {
		return nil, errors.Wrap(err, "querying departments")
	}
	departments := make([]department.Department, len(rows))
	for i, r := range rows {
		departments[i] = r.toDepartment()
	}
	return departments, nil
}

func (repo *DepartmentRepository) GetDepartmentByID(ctx context.Context, id int) (department.Department, error) {
	var row departmentRow
	err := repo.db.GetContext(ctx, &row, `SELECT * FROM department WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return department.Department{}, department.ErrNotFound
	}
	if err != nil {
		return department.Department{}, errors.Wrap(err, "getting department")
	}
	return row.toDepartment(), nil
}

func (repo *DepartmentRepository) CreateDepartment(ctx context.Context, d department.Department) (department.Department, error) {
	row := toDepartmentRow(d)
	q := `INSERT INTO department (name, description, head, email, phone, budget, established_year, teacher_count, status)
	      VALUES (:name, :description, :head, :email, :phone, :budget, :established_year, :teacher_count, :status)
	      RETURNING id`
	stmt, err := repo.db.PrepareNamedContext(ctx, q)
	if err != nil {
		return department.Department{}, errors.Wrap(err, "creating department")
	}
	defer func() { _ = stmt.Close() }()
	if err = stmt.GetContext(ctx, &d.ID, row); err != nil {
		return department.Department{}, errors.Wrap(err, "creating department")
	}
	return d, nil
}

func (repo *DepartmentRepository) UpdateDepartment(ctx context.Context, d department.Department) (department.Department, error) {
	row := toDepartmentRow(d)
	q := `UPDATE department SET
	        name = :name, description = :description, head = :head,
	        email = :email, phone = :phone, budget = :budget,
	        established_year = :established_year, teacher_count = :teacher_count,
	        status = :status
	      WHERE id = :id`
	res, err := repo.db.NamedExecContext(ctx, q, row)
	if err != nil {
		return department.Department{}, errors.Wrap(err, "updating department")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return department.Department{}, department.ErrNotFound
	}
	return d, nil
}

func (repo *DepartmentRepository) DeleteDepartmentsByID(ctx context.Context, ids ...int) error {
	q, args, err := sqlx.In(`DELETE FROM department WHERE id IN (?)`, ids)
	if err != nil {
		return errors.Wrap(err, "deleting departments")
	}
	if _, err = repo.db.ExecContext(ctx, repo.db.Rebind(q), args...); err != nil {
		return errors.Wrap(err, "deleting departments")
	}
	return nil
}
