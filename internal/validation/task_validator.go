package validation

import (
	"fmt"
	"strconv"
	"strings"
)

// TaskValidator validates task selections made on the command line
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// ParseTaskNumbers turns 1-based task numbers into 0-based indices into a
// list of total tasks. Every argument is checked before any is returned.
func (tv *TaskValidator) ParseTaskNumbers(args []string, total int) ([]int, error) {
	validationError := NewValidationError()

	if len(args) == 0 {
		validationError.AddRequiredError("task number")
		return nil, validationError
	}

	indices := make([]int, 0, len(args))
	for _, arg := range args {
		trimmed := strings.TrimSpace(arg)
		n, err := strconv.Atoi(trimmed)
		if err != nil {
			validationError.AddInvalidFormatError("task number", arg, "a whole number such as 3")
			continue
		}
		if n < 1 || n > total {
			validationError.AddInvalidRangeError("task number", n, fmt.Sprintf("%d is not between 1 and %d", n, total))
			continue
		}
		indices = append(indices, n-1)
	}

	if validationError.HasErrors() {
		return nil, validationError
	}
	return indices, nil
}

// ValidateIndex checks a 0-based index against a list of total tasks
func (tv *TaskValidator) ValidateIndex(index, total int) error {
	if index < 0 || index >= total {
		validationError := NewValidationError()
		validationError.AddInvalidRangeError("task", index+1, fmt.Sprintf("%d is not between 1 and %d", index+1, total))
		return validationError
	}
	return nil
}

// ValidateDate checks a YYYY-MM-DD date argument
func (tv *TaskValidator) ValidateDate(date string) error {
	if !tv.validator.IsValidDate(date) {
		validationError := NewValidationError()
		validationError.AddInvalidFormatError("date", date, "YYYY-MM-DD")
		return validationError
	}
	return nil
}
