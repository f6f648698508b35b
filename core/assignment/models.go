package assignment

import (
	"strings"

	"github.com/mkaleko/shule/core"
)

// Statuses
const (
	StatusNotStarted = "Not Started"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
	StatusOverdue    = "Overdue"
)

// Priorities
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

var (
	Statuses   = []string{StatusNotStarted, StatusInProgress, StatusCompleted, StatusOverdue}
	Priorities = []string{PriorityHigh, PriorityMedium, PriorityLow}
)

type Assignment struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	DueDate     core.Day `json:"due_date"`
	Status      string   `json:"status"`
	Priority    string   `json:"priority"`
	Tags        string   `json:"tags"` // free text, doubles as a subject classifier
}

// Overdue reports whether the assignment's due day has passed without
// completion. The comparison is calendar-day based: due today is not
// overdue, whatever the hour.
func (a Assignment) Overdue(today core.Day) bool {
	if a.DueDate.IsZero() || strings.EqualFold(a.Status, StatusCompleted) {
		return false
	}
	return a.DueDate.Before(today)
}

type NewAssignment struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	DueDate     core.Day `json:"due_date"`
	Status      string   `json:"status" validate:"omitempty,assignmentstatus"`
	Priority    string   `json:"priority" validate:"omitempty,assignmentpriority"`
	Tags        string   `json:"tags"`
}

func (na *NewAssignment) Validate() error {
	na.Title = core.CleanString(na.Title)
	na.Description = core.CleanString(na.Description)
	na.Tags = core.CleanString(na.Tags)
	na.Status = core.CanonicalEnum(na.Status, Statuses)
	na.Priority = core.CanonicalEnum(na.Priority, Priorities)
	return core.Validate.Struct(na)
}

type UpdateAssignment struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	DueDate     core.Day `json:"due_date"`
	Status      string   `json:"status" validate:"omitempty,assignmentstatus"`
	Priority    string   `json:"priority" validate:"omitempty,assignmentpriority"`
	Tags        string   `json:"tags"`
}

func (ua *UpdateAssignment) Validate(orig Assignment) error {
	if title := core.CleanString(ua.Title); title != "" {
		ua.Title = title
	} else {
		ua.Title = orig.Title
	}
	ua.Description = core.CleanString(ua.Description)
	ua.Tags = core.CleanString(ua.Tags)
	ua.Status = core.CanonicalEnum(ua.Status, Statuses)
	ua.Priority = core.CanonicalEnum(ua.Priority, Priorities)
	return core.Validate.Struct(ua)
}

// QueryFilter narrows an assignment collection. Search matches title,
// tags or description; Subject does a substring match on tags since
// assignments carry no dedicated subject field.
type QueryFilter struct {
	Search  string `query:"search"`
	Status  string `query:"status"`
	Subject string `query:"subject"`
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" && !core.FilterActive(qf.Status) && !core.FilterActive(qf.Subject)
}

// Filter returns the members of assignments matching qf, preserving
// input order.
func Filter(assignments []Assignment, qf QueryFilter) []Assignment {
	out := make([]Assignment, 0, len(assignments))
	for _, a := range assignments {
		if !core.AnyContainsFold(qf.Search, a.Title, a.Tags, a.Description) {
			continue
		}
		if core.FilterActive(qf.Status) && !strings.EqualFold(a.Status, qf.Status) {
			continue
		}
		if core.FilterActive(qf.Subject) && !strings.Contains(strings.ToLower(a.Tags), strings.ToLower(qf.Subject)) {
			continue
		}
		out = append(out, a)
	}
	return out
}
