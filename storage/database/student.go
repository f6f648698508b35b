package database

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/mkaleko/shule/core/student"
)

type studentRow struct {
	ID                    int       `db:"id"`
	FirstName             string    `db:"first_name"`
	LastName              string    `db:"last_name"`
	Email                 string    `db:"email"`
	Phone                 string    `db:"phone"`
	DateOfBirth           null.Time `db:"date_of_birth"`
	EnrollmentDate        null.Time `db:"enrollment_date"`
	Status                string    `db:"status"`
	GradeLevel            string    `db:"grade_level"`
	StudentID             string    `db:"student_id"`
	AddressStreet         string    `db:"address_street"`
	AddressCity           string    `db:"address_city"`
	AddressState          string    `db:"address_state"`
	AddressZip            string    `db:"address_zip"`
	EmergencyName         string    `db:"emergency_name"`
	EmergencyPhone        string    `db:"emergency_phone"`
	EmergencyRelationship string    `db:"emergency_relationship"`
}

func (r studentRow) toStudent() student.Student {
	return student.Student{
		ID:             r.ID,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		Phone:          r.Phone,
		DateOfBirth:    dayOf(r.DateOfBirth),
		EnrollmentDate: dayOf(r.EnrollmentDate),
		Status:         r.Status,
		GradeLevel:     r.GradeLevel,
		StudentID:      r.StudentID,
		Address: student.Address{
			Street: r.AddressStreet,
			City:   r.AddressCity,
			State:  r.AddressState,
			Zip:    r.AddressZip,
		},
		EmergencyContact: student.EmergencyContact{
			Name:         r.EmergencyName,
			Phone:        r.EmergencyPhone,
			Relationship: r.EmergencyRelationship,
		},
	}
}

func toStudentRow(s student.Student) studentRow {
	return studentRow{
		ID:                    s.ID,
		FirstName:             s.FirstName,
		LastName:              s.LastName,
		Email:                 s.Email,
		Phone:                 s.Phone,
		DateOfBirth:           nullDay(s.DateOfBirth),
		EnrollmentDate:        nullDay(s.EnrollmentDate),
		Status:                s.Status,
		GradeLevel:            s.GradeLevel,
		StudentID:             s.StudentID,
		AddressStreet:         s.Address.Street,
		AddressCity:           s.Address.City,
		AddressState:          s.Address.State,
		AddressZip:            s.Address.Zip,
		EmergencyName:         s.EmergencyContact.Name,
		EmergencyPhone:        s.EmergencyContact.Phone,
		EmergencyRelationship: s.EmergencyContact.Relationship,
	}
}

type StudentRepository struct {
	db *sqlx.DB
}

var _ student.Repository = (*StudentRepository)(nil)

func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

func (repo *StudentRepository) QueryAllStudents(ctx context.Context) ([]student.Student, error) {
	var rows []studentRow
	if err := repo.db.SelectContext(ctx, &rows, `SELECT * FROM student ORDER BY id`); err != nil {
		return nil, errors.Wrap(err, "querying students")
	}
	students := make([]student.Student, len(rows))
	for i, r := range rows {
		students[i] = r.toStudent()
	}
	return students, nil
}

func (repo *StudentRepository) GetStudentByID(ctx context.Context, id int) (student.Student, error) {
	var row studentRow
	err := repo.db.GetContext(ctx, &row, `SELECT * FROM student WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return student.Student{}, student.ErrNotFound
	}
	if err != nil {
		return student.Student{}, errors.Wrap(err, "getting student")
	}
	return row.toStudent(), nil
}

func (repo *StudentRepository) CreateStudent(ctx context.Context, s student.Student) (student.Student, error) {
	row := toStudentRow(s)
	q := `INSERT INTO student (
	        first_name, last_name, email, phone, date_of_birth, enrollment_date,
	        status, grade_level, student_id,
	        address_street, address_city, address_state, address_zip,
	        emergency_name, emergency_phone, emergency_relationship
	      ) VALUES (
	        :first_name, :last_name, :email, :phone, :date_of_birth, :enrollment_date,
	        :status, :grade_level, :student_id,
	        :address_street, :address_city, :address_state, :address_zip,
	        :emergency_name, :emergency_phone, :emergency_relationship
	      ) RETURNING id`
	stmt, err := repo.db.PrepareNamedContext(ctx, q)
	if err != nil {
		return student.Student{}, errors.Wrap(err, "creating student")
	}
	defer func() { _ = stmt.Close() }()
	if err = stmt.GetContext(ctx, &s.ID, row); err != nil {
		return student.Student{}, errors.Wrap(err, "creating student")
	}
	return s, nil
}

func (repo *StudentRepository) UpdateStudent(ctx context.Context, s student.Student) (student.Student, error) {
	row := toStudentRow(s)
	q := `UPDATE student SET
	        first_name = :first_name, last_name = :last_name, email = :email, phone = :phone,
	        date_of_birth = :date_of_birth, enrollment_date = :enrollment_date,
	        status = :status, grade_level = :grade_level, student_id = :student_id,
	        address_street = :address_street, address_city = :address_city,
	        address_state = :address_state, address_zip = :address_zip,
	        emergency_name = :emergency_name, emergency_phone = :emergency_phone,
	        emergency_relationship = :emergency_relationship
	      WHERE id = :id`
	res, err := repo.db.NamedExecContext(ctx, q, row)
	if err != nil {
		return student.Student{}, errors.Wrap(err, "updating student")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return student.Student{}, student.ErrNotFound
	}
	return s, nil
}

func (repo *StudentRepository) DeleteStudentsByID(ctx context.Context, ids ...int) error {
	q, args, err := sqlx.In(`DELETE FROM student WHERE id IN (?)`, ids)
	if err != nil {
		return errors.Wrap(err, "deleting students")
	}
	if _, err = repo.db.ExecContext(ctx, repo.db.Rebind(q), args...); err != nil {
		return errors.Wrap(err, "deleting students")
	}
	return nil
}
