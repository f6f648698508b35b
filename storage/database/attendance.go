package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/mkaleko/shule/core"
	"github.com/mkaleko/shule/core/attendance"
)

type attendanceRow struct {
	ID        int       `db:"id"`
	StudentID int       `db:"student_id"`
	Date      time.Time `db:"date"`
	Status    string    `db:"status"`
	Notes     string    `db:"notes"`
	Class     string    `db:"class"`
}

func (r attendanceRow) toRecord() attendance.Record {
	return attendance.Record{
		ID:        r.ID,
		StudentID: r.StudentID,
		Date:      core.NewDay(r.Date),
		Status:    r.Status,
		Notes:     r.Notes,
		Class:     r.Class,
	}
}

func toAttendanceRow(rec attendance.Record) attendanceRow {
	return attendanceRow{
		ID:        rec.ID,
		StudentID: rec.StudentID,
		Date:      rec.Date.Time(),
		Status:    rec.Status,
		Notes:     rec.Notes,
		Class:     rec.Class,
	}
}

type AttendanceRepository struct {
	db *sqlx.DB
}

var _ attendance.Repository = (*AttendanceRepository)(nil)

func NewAttendanceRepository(db *sqlx.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

func (repo *AttendanceRepository) QueryAllAttendance(ctx context.Context) ([]attendance.Record, error) {
	var rows []attendanceRow
	if err := repo.db.SelectContext(ctx, &rows, `SELECT * FROM attendance ORDER BY id`); err != nil {
		return nil, errors.Wrap(err, "querying attendance")
	}
	records := make([]attendance.Record, len(rows))
	for i, r := range rows {
		records[i] = r.toRecord()
	}
	return records, nil
}

func (repo *AttendanceRepository) QueryAttendanceByStudent(ctx context.Context, studentID int) ([]attendance.Record, error) {
	var rows []attendanceRow
	if err := repo.db.SelectContext(ctx, &rows, `SELECT * FROM attendance WHERE student_id = $1 ORDER BY id`, studentID); err != nil {
		return nil, errors.Wrap(err, "querying student attendance")
	}
	records := make([]attendance.Record, len(rows))
	for i, r := range rows {
		records[i] = r.toRecord()
	}
	return records, nil
}

func (repo *AttendanceRepository) GetAttendanceByID(ctx context.Context, id int) (attendance.Record, error) {
	var row attendanceRow
	err := repo.db.GetContext(ctx, &row, `SELECT * FROM attendance WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return attendance.Record{}, attendance.ErrNotFound
	}
	if err != nil {
		return attendance.Record{}, errors.Wrap(err, "getting attendance")
	}
	return row.toRecord(), nil
}

func (repo *AttendanceRepository) FindAttendanceByStudentAndDay(ctx context.Context, studentID int, day core.Day) (attendance.Record, error) {
	var row attendanceRow
	err := repo.db.GetContext(ctx, &row, `SELECT * FROM attendance WHERE student_id = $1 AND date = $2`, studentID, day.Time())
	if errors.Is(err, sql.ErrNoRows) {
		return attendance.Record{}, attendance.ErrNotFound
	}
	if err != nil {
		return attendance.Record{}, errors.Wrap(err, "finding attendance")
	}
	return row.toRecord(), nil
}

func (repo *AttendanceRepository) CreateAttendance(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	row := toAttendanceRow(rec)
	q := `INSERT INTO attendance (student_id, date, status, notes, class)
	      VALUES (:student_id, :date, :status, :notes, :class)
	      RETURNING id`
	stmt, err := repo.db.PrepareNamedContext(ctx, q)
	if err != nil {
		return attendance.Record{}, errors.Wrap(err, "creating attendance")
	}
	defer func() { _ = stmt.Close() }()
	if err = stmt.GetContext(ctx, &rec.ID, row); err != nil {
		return attendance.Record{}, errors.Wrap(err, "creating attendance")
	}
	return rec, nil
}

func (repo *AttendanceRepository) UpdateAttendance(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	row := toAttendanceRow(rec)
	q := `UPDATE attendance SET
	        student_id = :student_id, date = :date, status = :status,
	        notes = :notes, class = :class
	      WHERE id = :id`
	res, err := repo.db.NamedExecContext(ctx, q, row)
	if err != nil {
		return attendance.Record{}, errors.Wrap(err, "updating attendance")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return attendance.Record{}, attendance.ErrNotFound
	}
	return rec, nil
}

func (repo *AttendanceRepository) DeleteAttendanceByID(ctx context.Context, ids ...int) error {
	q, args, err := sqlx.In(`DELETE FROM attendance WHERE id IN (?)`, ids)
	if err != nil {
		return errors.Wrap(err, "deleting attendance")
	}
	if _, err = repo.db.ExecContext(ctx, repo.db.Rebind(q), args...); err != nil {
		return errors.Wrap(err, "deleting attendance")
	}
	return nil
}
