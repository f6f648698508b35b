package apperstore

import (
	"context"

	"github.com/mkaleko/shule/core"
	"github.com/mkaleko/shule/core/student"
)

var studentFields = Fields(
	"Id",
	"first_name_c", "last_name_c", "email_c", "phone_c",
	"date_of_birth_c", "enrollment_date_c",
	"status_c", "grade_level_c", "student_id_c",
	"address_street_c", "address_city_c", "address_state_c", "address_zip_c",
	"emergency_name_c", "emergency_phone_c", "emergency_relationship_c",
	// legacy scheme, still populated on unmigrated rows
	"firstName", "lastName", "email", "phone",
	"dateOfBirth", "enrollmentDate", "status", "gradeLevel", "studentId",
	"addressStreet", "addressCity", "addressState", "addressZip",
	"emergencyName", "emergencyPhone", "emergencyRelationship",
)

type StudentRepository struct {
	client *Client
}

var _ student.Repository = (*StudentRepository)(nil)

func NewStudentRepository(client *Client) *StudentRepository {
	return &StudentRepository{client: client}
}

func (repo *StudentRepository) QueryAllStudents(ctx context.Context) ([]student.Student, error) {
	records, err := repo.client.FetchAllRecords(ctx, studentTable, studentFields, nil, nil)
	if err != nil {
		return nil, err
	}
	students := make([]student.Student, len(records))
	for i, r := range records {
		students[i] = decodeStudent(r)
	}
	return students, nil
}

func (repo *StudentRepository) GetStudentByID(ctx context.Context, id int) (student.Student, error) {
	r, err := repo.client.GetRecordByID(ctx, studentTable, id, studentFields)
	if err != nil {
		return student.Student{}, err
	}
	if r == nil {
		return student.Student{}, student.ErrNotFound
	}
	return decodeStudent(r), nil
}

func (repo *StudentRepository) CreateStudent(ctx context.Context, s student.Student) (student.Student, error) {
	created, err := repo.client.CreateRecord(ctx, studentTable, []map[string]interface{}{encodeStudent(s)})
	if err != nil {
		return student.Student{}, err
	}
	if len(created) == 0 {
		return student.Student{}, errNoRecordReturned("create", studentTable)
	}
	return decodeStudent(created[0]), nil
}

func (repo *StudentRepository) UpdateStudent(ctx context.Context, s student.Student) (student.Student, error) {
	fields := encodeStudent(s)
	fields["Id"] = s.ID
	updated, err := repo.client.UpdateRecord(ctx, studentTable, []map[string]interface{}{fields})
	if err != nil {
		return student.Student{}, err
	}
	if len(updated) == 0 {
		return student.Student{}, errNoRecordReturned("update", studentTable)
	}
	return decodeStudent(updated[0]), nil
}

func (repo *StudentRepository) DeleteStudentsByID(ctx context.Context, ids ...int) error {
	return repo.client.DeleteRecords(ctx, studentTable, ids...)
}

func decodeStudent(r RawRecord) student.Student {
	return student.Student{
		ID:             r.ID(),
		FirstName:      r.String("first_name"),
		LastName:       r.String("last_name"),
		Email:          r.String("email"),
		Phone:          r.String("phone"),
		DateOfBirth:    r.Day("date_of_birth"),
		EnrollmentDate: r.Day("enrollment_date"),
		Status:         r.String("status"),
		GradeLevel:     r.String("grade_level"),
		StudentID:      r.String("student_id"),
		Address: student.Address{
			Street: r.String("address_street"),
			City:   r.String("address_city"),
			State:  r.String("address_state"),
			Zip:    r.String("address_zip"),
		},
		EmergencyContact: student.EmergencyContact{
			Name:         r.String("emergency_name"),
			Phone:        r.String("emergency_phone"),
			Relationship: r.String("emergency_relationship"),
		},
	}
}

// encodeStudent writes only the current naming scheme; the migration
// runs one way.
func encodeStudent(s student.Student) map[string]interface{} {
	return map[string]interface{}{
		"first_name_c":             s.FirstName,
		"last_name_c":              s.LastName,
		"email_c":                  s.Email,
		"phone_c":                  s.Phone,
		"date_of_birth_c":          encodeDay(s.DateOfBirth),
		"enrollment_date_c":        encodeDay(s.EnrollmentDate),
		"status_c":                 s.Status,
		"grade_level_c":            s.GradeLevel,
		"student_id_c":             s.StudentID,
		"address_street_c":         s.Address.Street,
		"address_city_c":           s.Address.City,
		"address_state_c":          s.Address.State,
		"address_zip_c":            s.Address.Zip,
		"emergency_name_c":         s.EmergencyContact.Name,
		"emergency_phone_c":        s.EmergencyContact.Phone,
		"emergency_relationship_c": s.EmergencyContact.Relationship,
	}
}

func encodeDay(d core.Day) interface{} {
	if d.IsZero() {
		return nil
	}
	return d.String()
}
