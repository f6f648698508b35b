package grade

import (
	"strings"

	"github.com/mkaleko/shule/core"
)

type Grade struct {
	ID            int      `json:"id"`
	StudentID     int      `json:"student_id"`
	Subject       string   `json:"subject"`
	Assignment    string   `json:"assignment"`
	Score         *float64 `json:"score"`
	MaxPoints     *float64 `json:"max_points"`
	DateRecorded  core.Day `json:"date_recorded"`
	GradingPeriod string   `json:"grading_period"` // term label, e.g. "Q1", "Midterm"
}

// Percent returns score/maxPoints*100. ok is false when either value is
// missing or maxPoints is not positive; such grades are excluded from
// averages and distributions rather than counted as failures.
func (g Grade) Percent() (float64, bool) {
	if g.Score == nil || g.MaxPoints == nil || *g.MaxPoints <= 0 {
		return 0, false
	}
	return *g.Score / *g.MaxPoints * 100, true
}

type NewGrade struct {
	StudentID     int      `json:"student_id" validate:"required,gt=0"`
	Subject       string   `json:"subject" validate:"required"`
	Assignment    string   `json:"assignment" validate:"required"`
	Score         *float64 `json:"score" validate:"omitempty,gte=0"`
	MaxPoints     *float64 `json:"max_points" validate:"omitempty,gt=0"`
	DateRecorded  core.Day `json:"date_recorded"`
	GradingPeriod string   `json:"grading_period"`
}

func (ng *NewGrade) Validate() error {
	ng.Subject = core.CleanString(ng.Subject)
	ng.Assignment = core.CleanString(ng.Assignment)
	ng.GradingPeriod = core.CleanString(ng.GradingPeriod)
	return core.Validate.Struct(ng)
}

type UpdateGrade struct {
	Subject       string   `json:"subject"`
	Assignment    string   `json:"assignment"`
	Score         *float64 `json:"score" validate:"omitempty,gte=0"`
	MaxPoints     *float64 `json:"max_points" validate:"omitempty,gt=0"`
	DateRecorded  core.Day `json:"date_recorded"`
	GradingPeriod string   `json:"grading_period"`
}

func (ug *UpdateGrade) Validate(orig Grade) error {
	if subj := core.CleanString(ug.Subject); subj != "" {
		ug.Subject = subj
	} else {
		ug.Subject = orig.Subject
	}
	if asg := core.CleanString(ug.Assignment); asg != "" {
		ug.Assignment = asg
	} else {
		ug.Assignment = orig.Assignment
	}
	ug.GradingPeriod = core.CleanString(ug.GradingPeriod)
	return core.Validate.Struct(ug)
}

// QueryFilter narrows a grade collection. Search matches subject,
// assignment label or grading period.
type QueryFilter struct {
	Search    string `query:"search"`
	Subject   string `query:"subject"`
	Period    string `query:"period"`
	StudentID int    `query:"student_id"`
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" && !core.FilterActive(qf.Subject) && !core.FilterActive(qf.Period) && qf.StudentID == 0
}

// Filter returns the members of grades matching qf, preserving input order.
func Filter(grades []Grade, qf QueryFilter) []Grade {
	out := make([]Grade, 0, len(grades))
	for _, g := range grades {
		if !core.AnyContainsFold(qf.Search, g.Subject, g.Assignment, g.GradingPeriod) {
			continue
		}
		if core.FilterActive(qf.Subject) && !strings.EqualFold(g.Subject, qf.Subject) {
			continue
		}
		if core.FilterActive(qf.Period) && !strings.EqualFold(g.GradingPeriod, qf.Period) {
			continue
		}
		if qf.StudentID != 0 && g.StudentID != qf.StudentID {
			continue
		}
		out = append(out, g)
	}
	return out
}
