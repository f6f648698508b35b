package student

import (
	"strings"

	"github.com/mkaleko/shule/core"
)

// Statuses
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
	StatusPending  = "Pending"
)

// Grade levels
const (
	GradeLevel9  = "9th"
	GradeLevel10 = "10th"
	GradeLevel11 = "11th"
	GradeLevel12 = "12th"
)

var (
	Statuses    = []string{StatusActive, StatusInactive, StatusPending}
	GradeLevels = []string{GradeLevel9, GradeLevel10, GradeLevel11, GradeLevel12}
)

type (
	Address struct {
		Street string `json:"street"`
		City   string `json:"city"`
		State  string `json:"state"`
		Zip    string `json:"zip"`
	}

	EmergencyContact struct {
		Name         string `json:"name"`
		Phone        string `json:"phone"`
		Relationship string `json:"relationship"`
	}

	Student struct {
		ID               int              `json:"id"`
		FirstName        string           `json:"first_name"`
		LastName         string           `json:"last_name"`
		Email            string           `json:"email"`
		Phone            string           `json:"phone"`
		DateOfBirth      core.Day         `json:"date_of_birth"`
		EnrollmentDate   core.Day         `json:"enrollment_date"`
		Status           string           `json:"status"`
		GradeLevel       string           `json:"grade_level"`
		StudentID        string           `json:"student_id"` // school-assigned identifier, e.g. "STU-0042"
		Address          Address          `json:"address"`
		EmergencyContact EmergencyContact `json:"emergency_contact"`
	}
)

func (s Student) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

// NewStudent contains information needed to enroll a new Student.
type NewStudent struct {
	FirstName        string           `json:"first_name" validate:"required"`
	LastName         string           `json:"last_name" validate:"required"`
	Email            string           `json:"email" validate:"omitempty,email"`
	Phone            string           `json:"phone"`
	DateOfBirth      core.Day         `json:"date_of_birth"`
	EnrollmentDate   core.Day         `json:"enrollment_date"`
	Status           string           `json:"status" validate:"omitempty,studentstatus"`
	GradeLevel       string           `json:"grade_level" validate:"omitempty,gradelevel"`
	StudentID        string           `json:"student_id"`
	Address          Address          `json:"address"`
	EmergencyContact EmergencyContact `json:"emergency_contact"`
}

func (ns *NewStudent) Validate() error {
	ns.FirstName = core.CleanString(ns.FirstName)
	ns.LastName = core.CleanString(ns.LastName)
	ns.Email = core.CleanString(ns.Email, true /* lower */)
	ns.Status = core.CanonicalEnum(ns.Status, Statuses)
	ns.GradeLevel = core.CanonicalEnum(ns.GradeLevel, GradeLevels)
	return core.Validate.Struct(ns)
}

// UpdateStudent defines what information may be provided to modify an
// existing Student. Blank fields keep their current values.
type UpdateStudent struct {
	FirstName        string            `json:"first_name"`
	LastName         string            `json:"last_name"`
	Email            string            `json:"email" validate:"omitempty,email"`
	Phone            string            `json:"phone"`
	DateOfBirth      core.Day          `json:"date_of_birth"`
	EnrollmentDate   core.Day          `json:"enrollment_date"`
	Status           string            `json:"status" validate:"omitempty,studentstatus"`
	GradeLevel       string            `json:"grade_level" validate:"omitempty,gradelevel"`
	StudentID        string            `json:"student_id"`
	Address          *Address          `json:"address"`
	EmergencyContact *EmergencyContact `json:"emergency_contact"`
}

func (us *UpdateStudent) Validate(orig Student) error {
	if name := core.CleanString(us.FirstName); name != "" {
		us.FirstName = name
	} else {
		us.FirstName = orig.FirstName
	}
	if name := core.CleanString(us.LastName); name != "" {
		us.LastName = name
	} else {
		us.LastName = orig.LastName
	}
	if email := core.CleanString(us.Email, true /* lower */); email != "" {
		us.Email = email
	} else {
		us.Email = orig.Email
	}
	us.Status = core.CanonicalEnum(us.Status, Statuses)
	us.GradeLevel = core.CanonicalEnum(us.GradeLevel, GradeLevels)
	return core.Validate.Struct(us)
}

// QueryFilter narrows a student collection. Fields compose with AND;
// Search does a case-insensitive match on first name, last name, email
// or the school-assigned student identifier.
type QueryFilter struct {
	Search     string `query:"search"`
	GradeLevel string `query:"grade_level"`
	Status     string `query:"status"`
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" && !core.FilterActive(qf.GradeLevel) && !core.FilterActive(qf.Status)
}

// Filter returns the members of students matching qf, preserving input
// order. The input slice is never mutated.
func Filter(students []Student, qf QueryFilter) []Student {
	out := make([]Student, 0, len(students))
	for _, s := range students {
		if !core.AnyContainsFold(qf.Search, s.FirstName, s.LastName, s.Email, s.StudentID) {
			continue
		}
		if core.FilterActive(qf.GradeLevel) && !strings.EqualFold(s.GradeLevel, qf.GradeLevel) {
			continue
		}
		if core.FilterActive(qf.Status) && !strings.EqualFold(s.Status, qf.Status) {
			continue
		}
		out = append(out, s)
	}
	return out
}
