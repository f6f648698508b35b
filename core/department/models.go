package department

import (
	"strings"

	"github.com/mkaleko/shule/core"
)

// Statuses
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

var Statuses = []string{StatusActive, StatusInactive}

type Department struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Head            string   `json:"head"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Budget          *float64 `json:"budget"`
	EstablishedYear int      `json:"established_year"`
	TeacherCount    int      `json:"teacher_count"`
	Status          string   `json:"status"`
}

type NewDepartment struct {
	Name            string   `json:"name" validate:"required"`
	Description     string   `json:"description"`
	Head            string   `json:"head"`
	Email           string   `json:"email" validate:"omitempty,email"`
	Phone           string   `json:"phone"`
	Budget          *float64 `json:"budget" validate:"omitempty,gte=0"`
	EstablishedYear int      `json:"established_year" validate:"omitempty,gte=1800"`
	TeacherCount    int      `json:"teacher_count" validate:"omitempty,gte=0"`
	Status          string   `json:"status" validate:"omitempty,departmentstatus"`
}

func (nd *NewDepartment) Validate() error {
	nd.Name = core.CleanString(nd.Name)
	nd.Head = core.CleanString(nd.Head)
	nd.Email = core.CleanString(nd.Email, true /* lower */)
	nd.Status = core.CanonicalEnum(nd.Status, Statuses)
	return core.Validate.Struct(nd)
}

type UpdateDepartment struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Head            string   `json:"head"`
	Email           string   `json:"email" validate:"omitempty,email"`
	Phone           string   `json:"phone"`
	Budget          *float64 `json:"budget" validate:"omitempty,gte=0"`
	EstablishedYear int      `json:"established_year" validate:"omitempty,gte=1800"`
	TeacherCount    int      `json:"teacher_count" validate:"omitempty,gte=0"`
	Status          string   `json:"status" validate:"omitempty,departmentstatus"`
}

func (ud *UpdateDepartment) Validate(orig Department) error {
	if name := core.CleanString(ud.Name); name != "" {
		ud.Name = name
	} else {
		ud.Name = orig.Name
	}
	ud.Head = core.CleanString(ud.Head)
	ud.Email = core.CleanString(ud.Email, true /* lower */)
	ud.Status = core.CanonicalEnum(ud.Status, Statuses)
	return core.Validate.Struct(ud)
}

// QueryFilter narrows a department collection. Search matches name or
// head of department.
type QueryFilter struct {
	Search string `query:"search"`
	Status string `query:"status"`
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" && !core.FilterActive(qf.Status)
}

// Filter returns the members of departments matching qf, preserving
// input order.
func Filter(departments []Department, qf QueryFilter) []Department {
	out := make([]Department, 0, len(departments))
	for _, d := range departments {
		if !core.AnyContainsFold(qf.Search, d.Name, d.Head) {
			continue
		}
		if core.FilterActive(qf.Status) && !strings.EqualFold(d.Status, qf.Status) {
			continue
		}
		out = append(out, d)
	}
	return out
}
