package department

import "github.com/mkaleko/shule/core"

var (
	statusTag  = "departmentstatus"
	statusText = "must be one of Active or Inactive"
)

func init() {
	core.RegisterEnumValidation(statusTag, statusText, Statuses)
}
