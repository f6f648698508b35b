package student

import "github.com/mkaleko/shule/core"

var (
	statusTag  = "studentstatus"
	statusText = "must be one of Active, Inactive or Pending"

	gradeLevelTag  = "gradelevel"
	gradeLevelText = "must be one of 9th, 10th, 11th or 12th"
)

func init() {
	core.RegisterEnumValidation(statusTag, statusText, Statuses)
	core.RegisterEnumValidation(gradeLevelTag, gradeLevelText, GradeLevels)
}
