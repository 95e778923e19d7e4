package note

import (
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/ribgsilva/notes/persistence/v1/note"
	"sort"
	"strings"
)

// ErrNotFound is returned when no note has the requested id
var ErrNotFound = note.ErrNotFound

// ValidationError lists the problems found for each json field of the payload
type ValidationError struct {
	Fields map[string][]string
}

func (v *ValidationError) Error() string {
	names := make([]string, 0, len(v.Fields))
	for name := range v.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s %s", name, strings.Join(v.Fields[name], ", ")))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func fromValidationError(err error) error {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err
	}
	fields := make(map[string][]string, len(ves))
	for _, fe := range ves {
		fields[fe.Field()] = append(fields[fe.Field()], problem(fe))
	}
	return &ValidationError{Fields: fields}
}

func problem(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	default:
		return fmt.Sprintf("failed on %s", fe.Tag())
	}
}
