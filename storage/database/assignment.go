package database

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/mkaleko/shule/core/assignment"
)

type assignmentRow struct {
	ID          int       `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	DueDate     null.Time `db:"due_date"`
	Status      string    `db:"status"`
	Priority    string    `db:"priority"`
	Tags        string    `db:"tags"`
}

func (r assignmentRow) toAssignment() assignment.Assignment {
	return assignment.Assignment{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		DueDate:     dayOf(r.DueDate),
		Status:      r.Status,
		Priority:    r.Priority,
		Tags:        r.Tags,
	}
}

func toAssignmentRow(a assignment.Assignment) assignmentRow {
	return assignmentRow{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		DueDate:     nullDay(a.DueDate),
		Status:      a.Status,
		Priority:    a.Priority,
		Tags:        a.Tags,
	}
}

type AssignmentRepository struct {
	db *sqlx.DB
}

var _ assignment.Repository = (*AssignmentRepository)(nil)

func NewAssignmentRepository(db *sqlx.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

func (repo *AssignmentRepository) QueryAllAssignments(ctx context.Context) ([]assignment.Assignment, error) {
	var rows []assignmentRow
	if err := repo.db.SelectContext(ctx, &rows, `SELECT * FROM assignment ORDER BY id`); err != nil {
		return nil, errors.Wrap(err, "querying assignments")
	}
	assignments := make([]assignment.Assignment, len(rows))
	for i, r := range rows {
		assignments[i] = r.toAssignment()
	}
	return assignments, nil
}

func (repo *AssignmentRepository) GetAssignmentByID(ctx context.Context, id int) (assignment.Assignment, error) {
	var row assignmentRow
	err := repo.db.GetContext(ctx, &row, `SELECT * FROM assignment WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return assignment.Assignment{}, assignment.ErrNotFound
	}
	if err != nil {
		return assignment.Assignment{}, errors.Wrap(err, "getting assignment")
	}
	return row.toAssignment(), nil
}

func (repo *AssignmentRepository) CreateAssignment(ctx context.Context, a assignment.Assignment) (assignment.Assignment, error) {
	row := toAssignmentRow(a)
	q := `INSERT INTO assignment (title, description, due_date, status, priority, tags)
	      VALUES (:title, :description, :due_date, :status, :priority, :tags)
	      RETURNING id`
	stmt, err := repo.db.PrepareNamedContext(ctx, q)
	if err != nil {
		return assignment.Assignment{}, errors.Wrap(err, "creating assignment")
	}
	defer func() { _ = stmt.Close() }()
	if err = stmt.GetContext(ctx, &a.ID, row); err != nil {
		return assignment.Assignment{}, errors.Wrap(err, "creating assignment")
	}
	return a, nil
}

func (repo *AssignmentRepository) UpdateAssignment(ctx context.Context, a assignment.Assignment) (assignment.Assignment, error) {
	row := toAssignmentRow(a)
	q := `UPDATE assignment SET
	        title = :title, description = :description, due_date = :due_date,
	        status = :status, priority = :priority, tags = :tags
	      WHERE id = :id`
	res, err := repo.db.NamedExecContext(ctx, q, row)
	if err != nil {
		return assignment.Assignment{}, errors.Wrap(err, "updating assignment")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return assignment.Assignment{}, assignment.ErrNotFound
	}
	return a, nil
}

func (repo *AssignmentRepository) DeleteAssignmentsByID(ctx context.Context, ids ...int) error {
	q, args, err := sqlx.In(`DELETE FROM assignment WHERE id IN (?)`, ids)
	if err != nil {
		return errors.Wrap(err, "deleting assignments")
	}
	if _, err = repo.db.ExecContext(ctx, repo.db.Rebind(q), args...); err != nil {
		return errors.Wrap(err, "deleting assignments")
	}
	return nil
}
