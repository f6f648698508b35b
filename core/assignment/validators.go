package assignment

import "github.com/mkaleko/shule/core"

var (
	statusTag  = "assignmentstatus"
	statusText = "must be one of Not Started, In Progress, Completed or Overdue"

	priorityTag  = "assignmentpriority"
	priorityText = "must be one of High, Medium or Low"
)

func init() {
	core.RegisterEnumValidation(statusTag, statusText, Statuses)
	core.RegisterEnumValidation(priorityTag, priorityText, Priorities)
}
