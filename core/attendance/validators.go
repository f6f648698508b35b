package attendance

import "github.com/mkaleko/shule/core"

var (
	statusTag  = "attendancestatus"
	statusText = "must be one of Present, Absent or Tardy"
)

func init() {
	core.RegisterEnumValidation(statusTag, statusText, Statuses)
}
