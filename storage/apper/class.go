package apperstore

import (
	"context"
	"strings"

	"github.com/mkaleko/shule/core/class"
)

var classFields = Fields(
	"Id",
	"name_c", "subject_c", "teacher_c",
	"schedule_time_c", "schedule_days_c", "room_c",
	"grade_level_c", "student_ids_c",
	"name", "subject", "teacher",
	"scheduleTime", "scheduleDays", "room",
	"gradeLevel", "studentIds",
)

type ClassRepository struct {
	client *Client
}

var _ class.Repository = (*ClassRepository)(nil)

func NewClassRepository(client *Client) *ClassRepository {
	return &ClassRepository{client: client}
}

func (repo *ClassRepository) QueryAllClasses(ctx context.Context) ([]class.Class, error) {
	records, err := repo.client.FetchAllRecords(ctx, classTable, classFields, nil, nil)
	if err != nil {
		return nil, err
	}
	classes := make([]class.Class, len(records))
	for i, r := range records {
		classes[i] = decodeClass(r)
	}
	return classes, nil
}

func (repo *ClassRepository) GetClassByID(ctx context.Context, id int) (class.Class, error) {
	r, err := repo.client.GetRecordByID(ctx, classTable, id, classFields)
	if err != nil {
		return class.Class{}, err
	}
	if r == nil {
		return class.Class{}, class.ErrNotFound
	}
	return decodeClass(r), nil
}

func (repo *ClassRepository) CreateClass(ctx context.Context, c class.Class) (class.Class, error) {
	created, err := repo.client.CreateRecord(ctx, classTable, []map[string]interface{}{encodeClass(c)})
	if err != nil {
		return class.Class{}, err
	}
	if len(created) == 0 {
		return class.Class{}, errNoRecordReturned("create", classTable)
	}
	return decodeClass(created[0]), nil
}

func (repo *ClassRepository) UpdateClass(ctx context.Context, c class.Class) (class.Class, error) {
	fields := encodeClass(c)
	fields["Id"] = c.ID
	updated, err := repo.client.UpdateRecord(ctx, classTable, []map[string]interface{}{fields})
	if err != nil {
		return class.Class{}, err
	}
	if len(updated) == 0 {
		return class.Class{}, errNoRecordReturned("update", classTable)
	}
	return decodeClass(updated[0]), nil
}

func (repo *ClassRepository) DeleteClassesByID(ctx context.Context, ids ...int) error {
	return repo.client.DeleteRecords(ctx, classTable, ids...)
}

func decodeClass(r RawRecord) class.Class {
	return class.Class{
		ID:      r.ID(),
		Name:    r.String("name"),
		Subject: r.String("subject"),
		Teacher: r.String("teacher"),
		Schedule: class.Schedule{
			Time: r.String("schedule_time"),
			Days: r.StringList("schedule_days"),
			Room: r.String("room"),
		},
		GradeLevel: r.String("grade_level"),
		StudentIDs: r.IntList("student_ids"),
	}
}

func encodeClass(c class.Class) map[string]interface{} {
	return map[string]interface{}{
		"name_c":          c.Name,
		"subject_c":       c.Subject,
		"teacher_c":       c.Teacher,
		"schedule_time_c": c.Schedule.Time,
		"schedule_days_c": strings.Join(c.Schedule.Days, ","),
		"room_c":          c.Schedule.Room,
		"grade_level_c":   c.GradeLevel,
		"student_ids_c":   joinInts(c.StudentIDs),
	}
}
