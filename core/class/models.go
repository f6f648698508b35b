package class

import (
	"strings"

	"github.com/mkaleko/shule/core"
	"github.com/mkaleko/shule/core/student"
)

type (
	Schedule struct {
		Time string   `json:"time"` // e.g. "09:00 - 10:30"
		Days []string `json:"days"` // e.g. ["Mon", "Wed", "Fri"]
		Room string   `json:"room"`
	}

	Class struct {
		ID         int      `json:"id"`
		Name       string   `json:"name"`
		Subject    string   `json:"subject"`
		Teacher    string   `json:"teacher"`
		Schedule   Schedule `json:"schedule"`
		GradeLevel string   `json:"grade_level"`
		StudentIDs []int    `json:"student_ids"`
	}
)

type NewClass struct {
	Name       string   `json:"name" validate:"required"`
	Subject    string   `json:"subject" validate:"required"`
	Teacher    string   `json:"teacher"`
	Schedule   Schedule `json:"schedule"`
	GradeLevel string   `json:"grade_level" validate:"omitempty,gradelevel"`
	StudentIDs []int    `json:"student_ids"`
}

func (nc *NewClass) Validate() error {
	nc.Name = core.CleanString(nc.Name)
	nc.Subject = core.CleanString(nc.Subject)
	nc.Teacher = core.CleanString(nc.Teacher)
	nc.GradeLevel = core.CanonicalEnum(nc.GradeLevel, student.GradeLevels)
	return core.Validate.Struct(nc)
}

type UpdateClass struct {
	Name       string    `json:"name"`
	Subject    string    `json:"subject"`
	Teacher    string    `json:"teacher"`
	Schedule   *Schedule `json:"schedule"`
	GradeLevel string    `json:"grade_level" validate:"omitempty,gradelevel"`
	StudentIDs []int     `json:"student_ids"`
}

func (uc *UpdateClass) Validate(orig Class) error {
	if name := core.CleanString(uc.Name); name != "" {
		uc.Name = name
	} else {
		uc.Name = orig.Name
	}
	if subj := core.CleanString(uc.Subject); subj != "" {
		uc.Subject = subj
	} else {
		uc.Subject = orig.Subject
	}
	uc.Teacher = core.CleanString(uc.Teacher)
	uc.GradeLevel = core.CanonicalEnum(uc.GradeLevel, student.GradeLevels)
	return core.Validate.Struct(uc)
}

// QueryFilter narrows a class collection. Search matches name, subject
// or teacher.
type QueryFilter struct {
	Search     string `query:"search"`
	Subject    string `query:"subject"`
	GradeLevel string `query:"grade_level"`
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" && !core.FilterActive(qf.Subject) && !core.FilterActive(qf.GradeLevel)
}

// Filter returns the members of classes matching qf, preserving input order.
func Filter(classes []Class, qf QueryFilter) []Class {
	out := make([]Class, 0, len(classes))
	for _, c := range classes {
		if !core.AnyContainsFold(qf.Search, c.Name, c.Subject, c.Teacher) {
			continue
		}
		if core.FilterActive(qf.Subject) && !strings.EqualFold(c.Subject, qf.Subject) {
			continue
		}
		if core.FilterActive(qf.GradeLevel) && !strings.EqualFold(c.GradeLevel, qf.GradeLevel) {
			continue
		}
		out = append(out, c)
	}
	return out
}
