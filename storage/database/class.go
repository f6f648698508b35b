package database

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/mkaleko/shule/core/class"
)

type classRow struct {
	ID           int            `db:"id"`
	Name         string         `db:"name"`
	Subject      string         `db:"subject"`
	Teacher      string         `db:"teacher"`
	ScheduleTime string         `db:"schedule_time"`
	ScheduleDays pq.StringArray `db:"schedule_days"`
	Room         string         `db:"room"`
	GradeLevel   string         `db:"grade_level"`
	StudentIDs   pq.Int64Array  `db:"student_ids"`
}

func (r classRow) toClass() class.Class {
	ids := make([]int, len(r.StudentIDs))
	for i, id := range r.StudentIDs {
		ids[i] = int(id)
	}
	return class.Class{
		ID:      r.ID,
		Name:    r.Name,
		Subject: r.Subject,
		Teacher: r.Teacher,
		Schedule: class.Schedule{
			Time: r.ScheduleTime,
			Days: r.ScheduleDays,
			Room: r.Room,
		},
		GradeLevel: r.GradeLevel,
		StudentIDs: ids,
	}
}

func toClassRow(c class.Class) classRow {
	ids := make(pq.Int64Array, len(c.StudentIDs))
	for i, id := range c.StudentIDs {
		ids[i] = int64(id)
	}
	days := c.Schedule.Days
	if days == nil {
		days = []string{}
	}
	return classRow{
		ID:           c.ID,
		Name:         c.Name,
		Subject:      c.Subject,
		Teacher:      c.Teacher,
		ScheduleTime: c.Schedule.Time,
		ScheduleDays: days,
		Room:         c.Schedule.Room,
		GradeLevel:   c.GradeLevel,
		StudentIDs:   ids,
	}
}

type ClassRepository struct {
	db *sqlx.DB
}

var _ class.Repository = (*ClassRepository)(nil)

func NewClassRepository(db *sqlx.DB) *ClassRepository {
	return &ClassRepository{db: db}
}

func (repo *ClassRepository) QueryAllClasses(ctx context.Context) ([]class.Class, error) {
	var rows []classRow
	if err := repo.db.SelectContext(ctx, &rows, `SELECT * FROM class ORDER BY id`); err != nil {
		return nil, errors.Wrap(err, "querying classes")
	}
	classes := make([]class.Class, len(rows))
	for i, r := range rows {
		classes[i] = r.toClass()
	}
	return classes, nil
}

func (repo *ClassRepository) GetClassByID(ctx context.Context, id int) (class.Class, error) {
	var row classRow
	err := repo.db.GetContext(ctx, &row, `SELECT * FROM class WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return class.Class{}, class.ErrNotFound
	}
	if err != nil {
		return class.Class{}, errors.Wrap(err, "getting class")
	}
	return row.toClass(), nil
}

func (repo *ClassRepository) CreateClass(ctx context.Context, c class.Class) (class.Class, error) {
	row := toClassRow(c)
	q := `INSERT INTO class (name, subject, teacher, schedule_time, schedule_days, room, grade_level, student_ids)
	      VALUES (:name, :subject, :teacher, :schedule_time, :schedule_days, :room, :grade_level, :student_ids)
	      RETURNING id`
	stmt, err := repo.db.PrepareNamedContext(ctx, q)
	if err != nil {
		return class.Class{}, errors.Wrap(err, "creating class")
	}
	defer func() { _ = stmt.Close() }()
	if err = stmt.GetContext(ctx, &c.ID, row); err != nil {
		return class.Class{}, errors.Wrap(err, "creating class")
	}
	return c, nil
}

func (repo *ClassRepository) UpdateClass(ctx context.Context, c class.Class) (class.Class, error) {
	row := toClassRow(c)
	q := `UPDATE class SET
	        name = :name, subject = :subject, teacher = :teacher,
	        schedule_time = :schedule_time, schedule_days = :schedule_days, room = :room,
	        grade_level = :grade_level, student_ids = :student_ids
	      WHERE id = :id`
	res, err := repo.db.NamedExecContext(ctx, q, row)
	if err != nil {
		return class.Class{}, errors.Wrap(err, "updating class")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return class.Class{}, class.ErrNotFound
	}
	return c, nil
}

func (repo *ClassRepository) DeleteClassesByID(ctx context.Context, ids ...int) error {
	q, args, err := sqlx.In(`DELETE FROM class WHERE id IN (?)`, ids)
	if err != nil {
		return errors.Wrap(err, "deleting classes")
	}
	if _, err = repo.db.ExecContext(ctx, repo.db.Rebind(q), args...); err != nil {
		return errors.Wrap(err, "deleting classes")
	}
	return nil
}
