package apperstore

import (
	"context"

	"github.com/mkaleko/shule/core/grade"
)

// The score attribute's logical name is "grade" in the store schema, a
// relic of the table having started as a single-column gradebook.
var gradeFields = Fields(
	"Id",
	"student_id_c", "subject_c", "assignment_c",
	"grade_c", "max_points_c", "date_recorded_c", "grading_period_c",
	"studentId", "subject", "assignment",
	"grade", "maxPoints", "dateRecorded", "gradingPeriod",
)

type GradeRepository struct {
	client *Client
}

var _ grade.Repository = (*GradeRepository)(nil)

func NewGradeRepository(client *Client) *GradeRepository {
	return &GradeRepository{client: client}
}

func (repo *GradeRepository) QueryAllGrades(ctx context.Context) ([]grade.Grade, error) {
	return repo.fetch(ctx, nil)
}

func (repo *GradeRepository) QueryGradesByStudent(ctx context.Context, studentID int) ([]grade.Grade, error) {
	where := []Where{{FieldName: "student_id_c", Operator: OpEqualTo, Values: []interface{}{studentID}}}
	return repo.fetch(ctx, where)
}

func (repo *GradeRepository) fetch(ctx context.Context, where []Where) ([]grade.Grade, error) {
	records, err := repo.client.FetchAllRecords(ctx, gradeTable, gradeFields, where, nil)
	if err != nil {
		return nil, err
	}
	grades := make([]grade.Grade, len(records))
	for i, r := range records {
		grades[i] = decodeGrade(r)
	}
	return grades, nil
}

func (repo *GradeRepository) GetGradeByID(ctx context.Context, id int) (grade.Grade, error) {
	r, err := repo.client.GetRecordByID(ctx, gradeTable, id, gradeFields)
	if err != nil {
		return grade.Grade{}, err
	}
	if r == nil {
		return grade.Grade{}, grade.ErrNotFound
	}
	return decodeGrade(r), nil
}

func (repo *GradeRepository) CreateGrade(ctx context.Context, g grade.Grade) (grade.Grade, error) {
	created, err := repo.client.CreateRecord(ctx, gradeTable, []map[string]interface{}{encodeGrade(g)})
	if err != nil {
		return grade.Grade{}, err
	}
	if len(created) == 0 {
		return grade.Grade{}, errNoRecordReturned("create", gradeTable)
	}
	return decodeGrade(created[0]), nil
}

func (repo *GradeRepository) UpdateGrade(ctx context.Context, g grade.Grade) (grade.Grade, error) {
	fields := encodeGrade(g)
	fields["Id"] = g.ID
	updated, err := repo.client.UpdateRecord(ctx, gradeTable, []map[string]interface{}{fields})
	if err != nil {
		return grade.Grade{}, err
	}
	if len(updated) == 0 {
		return grade.Grade{}, errNoRecordReturned("update", gradeTable)
	}
	return decodeGrade(updated[0]), nil
}

func (repo *GradeRepository) DeleteGradesByID(ctx context.Context, ids ...int) error {
	return repo.client.DeleteRecords(ctx, gradeTable, ids...)
}

func decodeGrade(r RawRecord) grade.Grade {
	return grade.Grade{
		ID:            r.ID(),
		StudentID:     r.Int("student_id"),
		Subject:       r.String("subject"),
		Assignment:    r.String("assignment"),
		Score:         r.FloatPtr("grade"),
		MaxPoints:     r.FloatPtr("max_points"),
		DateRecorded:  r.Day("date_recorded"),
		GradingPeriod: r.String("grading_period"),
	}
}

func encodeGrade(g grade.Grade) map[string]interface{} {
	fields := map[string]interface{}{
		"student_id_c":     g.StudentID,
		"subject_c":        g.Subject,
		"assignment_c":     g.Assignment,
		"date_recorded_c":  encodeDay(g.DateRecorded),
		"grading_period_c": g.GradingPeriod,
		"grade_c":          nil,
		"max_points_c":     nil,
	}
	if g.Score != nil {
		fields["grade_c"] = *g.Score
	}
	if g.MaxPoints != nil {
		fields["max_points_c"] = *g.MaxPoints
	}
	return fields
}
