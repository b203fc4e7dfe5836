package validation

import (
	"fmt"

	"daybelt/internal/domain"
)

// PlanValidator validates the task definitions of a day plan
type PlanValidator struct {
	validator *Validator
}

// NewPlanValidator creates a plan validator using the given label limit
func NewPlanValidator(labelMaxLength int) *PlanValidator {
	return &PlanValidator{validator: NewValidatorWithLimit(labelMaxLength)}
}

// ValidateTasks checks every label. Time ranges are not checked here: a bad
// range only disables highlighting for that task (see MalformedRanges).
func (pv *PlanValidator) ValidateTasks(tasks []domain.Task) error {
	validationError := NewValidationError()

	if len(tasks) == 0 {
		validationError.AddRequiredError("tasks")
		return validationError
	}

	for i, task := range tasks {
		field := fmt.Sprintf("tasks[%d].task", i+1)

		if !pv.validator.IsNonEmptyString(task.Label) {
			validationError.AddRequiredError(field)
			continue
		}
		if !pv.validator.IsValidLabelLength(task.Label) {
			validationError.AddInvalidLengthError(field, task.Label, 1, pv.validator.LabelMaxLength())
		}
		if pv.validator.HasControlCharacters(task.Label) {
			validationError.AddInvalidCharacterError(field, task.Label, "line breaks and tabs are not allowed")
		}
	}

	return validationError.OrNil()
}

// MalformedRanges returns the 0-based positions of tasks whose time range
// cannot be parsed.
func (pv *PlanValidator) MalformedRanges(tasks []domain.Task) []int {
	var bad []int
	for i, task := range tasks {
		if !pv.validator.IsValidTimeRange(task.Time) {
			bad = append(bad, i)
		}
	}
	return bad
}
