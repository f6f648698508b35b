package attendance

import (
	"strings"

	"github.com/mkaleko/shule/core"
)

// Statuses
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
	StatusTardy   = "Tardy"
)

var Statuses = []string{StatusPresent, StatusAbsent, StatusTardy}

// DefaultClass labels records created by the marker when no class is given.
const DefaultClass = "General"

// Record is one student's attendance for one calendar day. The marker
// guarantees at most one Record per (student, day) pair.
type Record struct {
	ID        int      `json:"id"`
	StudentID int      `json:"student_id"`
	Date      core.Day `json:"date"`
	Status    string   `json:"status"`
	Notes     string   `json:"notes"`
	Class     string   `json:"class"`
}

// Mark is the upsert payload: set a student's status for a day.
type Mark struct {
	StudentID int      `json:"student_id" validate:"required,gt=0"`
	Date      core.Day `json:"date"`
	Status    string   `json:"status" validate:"required,attendancestatus"`
}

func (m *Mark) Validate() error {
	m.Status = core.CanonicalEnum(m.Status, Statuses)
	if m.Date.IsZero() {
		m.Date = core.Today()
	}
	return core.Validate.Struct(m)
}

// QueryFilter narrows an attendance collection. Search matches notes or
// the class label.
type QueryFilter struct {
	Search    string   `query:"search"`
	Status    string   `query:"status"`
	StudentID int      `query:"student_id"`
	From      core.Day `query:"from"`
	To        core.Day `query:"to"`
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" && !core.FilterActive(qf.Status) &&
		qf.StudentID == 0 && qf.From.IsZero() && qf.To.IsZero()
}

// Filter returns the members of records matching qf, preserving input order.
func Filter(records []Record, qf QueryFilter) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if !core.AnyContainsFold(qf.Search, r.Notes, r.Class) {
			continue
		}
		if core.FilterActive(qf.Status) && !strings.EqualFold(r.Status, qf.Status) {
			continue
		}
		if qf.StudentID != 0 && r.StudentID != qf.StudentID {
			continue
		}
		if !qf.From.IsZero() && r.Date.Before(qf.From) {
			continue
		}
		if !qf.To.IsZero() && r.Date.After(qf.To) {
			continue
		}
		out = append(out, r)
	}
	return out
}
