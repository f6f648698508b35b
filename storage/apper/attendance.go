package apperstore

import (
	"context"

	"github.com/mkaleko/shule/core"
	"github.com/mkaleko/shule/core/attendance"
)

var attendanceFields = Fields(
	"Id",
	"student_id_c", "date_c", "status_c", "notes_c", "class_c",
	"studentId", "date", "status", "notes", "class",
)

type AttendanceRepository struct {
	client *Client
}

var _ attendance.Repository = (*AttendanceRepository)(nil)

func NewAttendanceRepository(client *Client) *AttendanceRepository {
	return &AttendanceRepository{client: client}
}

func (repo *AttendanceRepository) QueryAllAttendance(ctx context.Context) ([]attendance.Record, error) {
	return repo.fetch(ctx, nil)
}

func (repo *AttendanceRepository) QueryAttendanceByStudent(ctx context.Context, studentID int) ([]attendance.Record, error) {
	where := []Where{{FieldName: "student_id_c", Operator: OpEqualTo, Values: []interface{}{studentID}}}
	return repo.fetch(ctx, where)
}

func (repo *AttendanceRepository) fetch(ctx context.Context, where []Where) ([]attendance.Record, error) {
	records, err := repo.client.FetchAllRecords(ctx, attendanceTable, attendanceFields, where, nil)
	if err != nil {
		return nil, err
	}
	out := make([]attendance.Record, len(records))
	for i, r := range records {
		out[i] = decodeAttendance(r)
	}
	return out, nil
}

func (repo *AttendanceRepository) GetAttendanceByID(ctx context.Context, id int) (attendance.Record, error) {
	r, err := repo.client.GetRecordByID(ctx, attendanceTable, id, attendanceFields)
	if err != nil {
		return attendance.Record{}, err
	}
	if r == nil {
		return attendance.Record{}, attendance.ErrNotFound
	}
	return decodeAttendance(r), nil
}

// FindAttendanceByStudentAndDay filters server-side on both keys.
// Unmigrated rows only carry the legacy "date" attribute, so records
// matched by student are re-checked by day after decoding.
func (repo *AttendanceRepository) FindAttendanceByStudentAndDay(ctx context.Context, studentID int, day core.Day) (attendance.Record, error) {
	where := []Where{
		{FieldName: "student_id_c", Operator: OpEqualTo, Values: []interface{}{studentID}},
	}
	records, err := repo.fetch(ctx, where)
	if err != nil {
		return attendance.Record{}, err
	}
	for _, r := range records {
		if r.Date.Equal(day) {
			return r, nil
		}
	}
	return attendance.Record{}, attendance.ErrNotFound
}

func (repo *AttendanceRepository) CreateAttendance(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	created, err := repo.client.CreateRecord(ctx, attendanceTable, []map[string]interface{}{encodeAttendance(rec)})
	if err != nil {
		return attendance.Record{}, err
	}
	if len(created) == 0 {
		return attendance.Record{}, errNoRecordReturned("create", attendanceTable)
	}
	return decodeAttendance(created[0]), nil
}

func (repo *AttendanceRepository) UpdateAttendance(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	fields := encodeAttendance(rec)
	fields["Id"] = rec.ID
	updated, err := repo.client.UpdateRecord(ctx, attendanceTable, []map[string]interface{}{fields})
	if err != nil {
		return attendance.Record{}, err
	}
	if len(updated) == 0 {
		return attendance.Record{}, errNoRecordReturned("update", attendanceTable)
	}
	return decodeAttendance(updated[0]), nil
}

func (repo *AttendanceRepository) DeleteAttendanceByID(ctx context.Context, ids ...int) error {
	return repo.client.DeleteRecords(ctx, attendanceTable, ids...)
}

func decodeAttendance(r RawRecord) attendance.Record {
	return attendance.Record{
		ID:        r.ID(),
		StudentID: r.Int("student_id"),
		Date:      r.Day("date"),
		Status:    r.String("status"),
		Notes:     r.String("notes"),
		Class:     r.String("class"),
	}
}

func encodeAttendance(rec attendance.Record) map[string]interface{} {
	return map[string]interface{}{
		"student_id_c": rec.StudentID,
		"date_c":       encodeDay(rec.Date),
		"status_c":     rec.Status,
		"notes_c":      rec.Notes,
		"class_c":      rec.Class,
	}
}
