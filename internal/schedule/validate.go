package schedule

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type ValidationError struct {
	Path    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// InvalidError carries every problem found while checking a schedule.
type InvalidError struct {
	Source string
	Errs   []ValidationError
}

func (e *InvalidError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "invalid schedule: %s\n", e.Source)
	for _, v := range e.Errs {
		fmt.Fprintf(&b, "- %s: %s\n", v.Path, v.Message)
	}
	return strings.TrimRight(b.String(), "\n")
}

// Validate checks structure only: schema version, required fields, id
// uniqueness and clock time ranges. Window layout is checked by CheckTiling.
func Validate(s Schedule) []ValidationError {
	var errs []ValidationError

	if s.SchemaVersion == 0 {
		errs = append(errs, ValidationError{Path: "$.schemaVersion", Message: "required"})
	} else if s.SchemaVersion != SchemaVersion {
		errs = append(errs, ValidationError{
			Path:    "$.schemaVersion",
			Message: fmt.Sprintf("unsupported schemaVersion %d (expected %d)", s.SchemaVersion, SchemaVersion),
		})
	}

	if err := validate.Struct(s); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			errs = append(errs, ValidationError{Path: "$", Message: err.Error()})
		}
		for _, fe := range fieldErrs {
			errs = append(errs, ValidationError{Path: fieldPath(fe), Message: fieldMessage(fe)})
		}
	}

	for i, it := range s.Items {
		path := fmt.Sprintf("$.items[%d]", i)
		if !it.Start.Valid() {
			errs = append(errs, ValidationError{Path: path + ".startTime", Message: fmt.Sprintf("invalid time %s", it.Start)})
		}
		if !it.End.Valid() {
			errs = append(errs, ValidationError{Path: path + ".endTime", Message: fmt.Sprintf("invalid time %s", it.End)})
		}
	}

	return errs
}

func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return "$." + ns[i+1:]
	}
	return "$"
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "url":
		return fmt.Sprintf("must be a URL, got %q", fe.Value())
	case "unique":
		return "item ids must be unique"
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}

// CheckTiling reports minutes of the day covered by no item or by more than one.
// Resolution stays permissive (first match wins); this is a data-quality report.
func CheckTiling(items []Item) []ValidationError {
	var errs []ValidationError

	spanStart := 0
	prev := coverage(items, 0)
	for minute := 1; minute <= MinutesPerDay; minute++ {
		var cur []string
		if minute < MinutesPerDay {
			cur = coverage(items, minute)
			if sameIDs(cur, prev) {
				continue
			}
		}
		switch {
		case len(prev) == 0:
			errs = append(errs, ValidationError{
				Path:    "$.items",
				Message: fmt.Sprintf("gap %s-%s is not covered by any item", FormatMinutes(spanStart), FormatMinutes(minute)),
			})
		case len(prev) > 1:
			errs = append(errs, ValidationError{
				Path:    "$.items",
				Message: fmt.Sprintf("overlap %s-%s is covered by items %s", FormatMinutes(spanStart), FormatMinutes(minute), quoteIDs(prev)),
			})
		}
		spanStart = minute
		prev = cur
	}
	return errs
}

func coverage(items []Item, minute int) []string {
	var ids []string
	for _, it := range items {
		if it.Contains(minute) {
			ids = append(ids, it.ID)
		}
	}
	return ids
}

func sameIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func quoteIDs(ids []string) string {
	quoted := make([]string, len(ids))
	for i, id := range ids {
		quoted[i] = fmt.Sprintf("%q", id)
	}
	sort.Strings(quoted)
	return strings.Join(quoted, ", ")
}

// Check runs Validate and, when strictTiling is set, CheckTiling, returning an
// *InvalidError if anything was found.
func Check(source string, s Schedule, strictTiling bool) error {
	errs := Validate(s)
	if strictTiling {
		errs = append(errs, CheckTiling(s.Items)...)
	}
	if len(errs) == 0 {
		return nil
	}
	return &InvalidError{Source: source, Errs: errs}
}
