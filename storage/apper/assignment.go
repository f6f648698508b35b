package apperstore

import (
	"context"

	"github.com/mkaleko/shule/core/assignment"
)

// Tags predates the suffixed-scheme migration on this table; it is a
// store builtin and keeps its unsuffixed name. The title lives in both
// places: title_c on migrated records, the builtin Name on the rest.
var assignmentFields = Fields(
	"Id",
	"Name", "Tags",
	"title_c", "description_c", "due_date_c", "status_c", "priority_c",
	"description", "dueDate", "status", "priority",
)

type AssignmentRepository struct {
	client *Client
}

var _ assignment.Repository = (*AssignmentRepository)(nil)

func NewAssignmentRepository(client *Client) *AssignmentRepository {
	return &AssignmentRepository{client: client}
}

func (repo *AssignmentRepository) QueryAllAssignments(ctx context.Context) ([]assignment.Assignment, error) {
	records, err := repo.client.FetchAllRecords(ctx, assignmentTable, assignmentFields, nil, nil)
	if err != nil {
		return nil, err
	}
	assignments := make([]assignment.Assignment, len(records))
	for i, r := range records {
		assignments[i] = decodeAssignment(r)
	}
	return assignments, nil
}

func (repo *AssignmentRepository) GetAssignmentByID(ctx context.Context, id int) (assignment.Assignment, error) {
	r, err := repo.client.GetRecordByID(ctx, assignmentTable, id, assignmentFields)
	if err != nil {
		return assignment.Assignment{}, err
	}
	if r == nil {
		return assignment.Assignment{}, assignment.ErrNotFound
	}
	return decodeAssignment(r), nil
}

func (repo *AssignmentRepository) CreateAssignment(ctx context.Context, a assignment.Assignment) (assignment.Assignment, error) {
	created, err := repo.client.CreateRecord(ctx, assignmentTable, []map[string]interface{}{encodeAssignment(a)})
	if err != nil {
		return assignment.Assignment{}, err
	}
	if len(created) == 0 {
		return assignment.Assignment{}, errNoRecordReturned("create", assignmentTable)
	}
	return decodeAssignment(created[0]), nil
}

func (repo *AssignmentRepository) UpdateAssignment(ctx context.Context, a assignment.Assignment) (assignment.Assignment, error) {
	fields := encodeAssignment(a)
	fields["Id"] = a.ID
	updated, err := repo.client.UpdateRecord(ctx, assignmentTable, []map[string]interface{}{fields})
	if err != nil {
		return assignment.Assignment{}, err
	}
	if len(updated) == 0 {
		return assignment.Assignment{}, errNoRecordReturned("update", assignmentTable)
	}
	return decodeAssignment(updated[0]), nil
}

func (repo *AssignmentRepository) DeleteAssignmentsByID(ctx context.Context, ids ...int) error {
	return repo.client.DeleteRecords(ctx, assignmentTable, ids...)
}

func decodeAssignment(r RawRecord) assignment.Assignment {
	var title, tags string
	if v, ok := r["title_c"].(string); ok && v != "" {
		title = v
	} else if v, ok := r["Name"].(string); ok {
		title = v
	}
	if v, ok := r["Tags"].(string); ok {
		tags = v
	}
	return assignment.Assignment{
		ID:          r.ID(),
		Title:       title,
		Description: r.String("description"),
		DueDate:     r.Day("due_date"),
		Status:      r.String("status"),
		Priority:    r.String("priority"),
		Tags:        tags,
	}
}

func encodeAssignment(a assignment.Assignment) map[string]interface{} {
	return map[string]interface{}{
		"Name":          a.Title,
		"title_c":       a.Title,
		"Tags":          a.Tags,
		"description_c": a.Description,
		"due_date_c":    encodeDay(a.DueDate),
		"status_c":      a.Status,
		"priority_c":    a.Priority,
	}
}
