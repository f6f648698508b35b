package database

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/mkaleko/shule/core/grade"
)

type gradeRow struct {
	ID            int          `db:"id"`
	StudentID     int          `db:"student_id"`
	Subject       string       `db:"subject"`
	Assignment    string       `db:"assignment"`
	Score         null.Float64 `db:"score"`
	MaxPoints     null.Float64 `db:"max_points"`
	DateRecorded  null.Time    `db:"date_recorded"`
	GradingPeriod string       `db:"grading_period"`
}

func (r gradeRow) toGrade() grade.Grade {
	return grade.Grade{
		ID:            r.ID,
		StudentID:     r.StudentID,
		Subject:       r.Subject,
		Assignment:    r.Assignment,
		Score:         floatPtr(r.Score),
		MaxPoints:     floatPtr(r.MaxPoints),
		DateRecorded:  dayOf(r.DateRecorded),
		GradingPeriod: r.GradingPeriod,
	}
}

func toGradeRow(g grade.Grade) gradeRow {
	return gradeRow{
		ID:            g.ID,
		StudentID:     g.StudentID,
		Subject:       g.Subject,
		Assignment:    g.Assignment,
		Score:         nullFloat(g.Score),
		MaxPoints:     nullFloat(g.MaxPoints),
		DateRecorded:  nullDay(g.DateRecorded),
		GradingPeriod: g.GradingPeriod,
	}
}

type GradeRepository struct {
	db *sqlx.DB
}

var _ grade.Repository = (*GradeRepository)(nil)

func NewGradeRepository(db *sqlx.DB) *GradeRepository {
	return &GradeRepository{db: db}
}

func (repo *GradeRepository) QueryAllGrades(ctx context.Context) ([]grade.Grade, error) {
	var rows []gradeRow
	if err := repo.db.SelectContext(ctx, &rows, `SELECT * FROM grade ORDER BY id`); err != nil {
		return nil, errors.Wrap(err, "querying grades")
	}
	grades := make([]grade.Grade, len(rows))
	for i, r := range rows {
		grades[i] = r.toGrade()
	}
	return grades, nil
}

func (repo *GradeRepository) QueryGradesByStudent(ctx context.Context, studentID int) ([]grade.Grade, error) {
	var rows []gradeRow
	if err := repo.db.SelectContext(ctx, &rows, `SELECT * FROM grade WHERE student_id = $1 ORDER BY id`, studentID); err != nil {
		return nil, errors.Wrap(err, "querying student grades")
	}
	grades := make([]grade.Grade, len(rows))
	for i, r := range rows {
		grades[i] = r.toGrade()
	}
	return grades, nil
}

func (repo *GradeRepository) GetGradeByID(ctx context.Context, id int) (grade.Grade, error) {
	var row gradeRow
	err := repo.db.GetContext(ctx, &row, `SELECT * FROM grade WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return grade.Grade{}, grade.ErrNotFound
	}
	if err != nil {
		return grade.Grade{}, errors.Wrap(err, "getting grade")
	}
	return row.toGrade(), nil
}

func (repo *GradeRepository) CreateGrade(ctx context.Context, g grade.Grade) (grade.Grade, error) {
	row := toGradeRow(g)
	q := `INSERT INTO grade (student_id, subject, assignment, score, max_points, date_recorded, grading_period)
	      VALUES (:student_id, :subject, :assignment, :score, :max_points, :date_recorded, :grading_period)
	      RETURNING id`
	stmt, err := repo.db.PrepareNamedContext(ctx, q)
	if err != nil {
		return grade.Grade{}, errors.Wrap(err, "creating grade")
	}
	defer func() { _ = stmt.Close() }()
	if err = stmt.GetContext(ctx, &g.ID, row); err != nil {
		return grade.Grade{}, errors.Wrap(err, "creating grade")
	}
	return g, nil
}

func (repo *GradeRepository) UpdateGrade(ctx context.Context, g grade.Grade) (grade.Grade, error) {
	row := toGradeRow(g)
	q := `UPDATE grade SET
	        student_id = :student_id, subject = :subject, assignment = :assignment,
	        score = :score, max_points = :max_points,
	        date_recorded = :date_recorded, grading_period = :grading_period
	      WHERE id = :id`
	res, err := repo.db.NamedExecContext(ctx, q, row)
	if err != nil {
		return grade.Grade{}, errors.Wrap(err, "updating grade")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return grade.Grade{}, grade.ErrNotFound
	}
	return g, nil
}

func (repo *GradeRepository) DeleteGradesByID(ctx context.Context, ids ...int) error {
	q, args, err := sqlx.In(`DELETE FROM grade WHERE id IN (?)`, ids)
	if err != nil {
		return errors.Wrap(err, "deleting grades")
	}
	if _, err = repo.db.ExecContext(ctx, repo.db.Rebind(q), args...); err != nil {
		return errors.Wrap(err, "deleting grades")
	}
	return nil
}
