// Package validate checks records before they are sent to the pool. Only the
// rules the remote API itself enforces live here; everything else is accepted
// as-is and normalized on display.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/candidate-pool/poolctl/internal/poolapi"
)

// Issue describes a single invalid field. Path holds the json field names
// from the record root down to the offending field.
type Issue struct {
	Path    []string
	Message string
}

// Field returns the dotted field path the issue is addressed to.
func (i Issue) Field() string {
	return strings.Join(i.Path, ".")
}

// FirstForField returns the first issue addressed to the given field path.
func FirstForField(issues []Issue, field string) *Issue {
	for i := range issues {
		if issues[i].Field() == field {
			return &issues[i]
		}
	}
	return nil
}

// Candidate reports what stops a candidate record from being saved.
func Candidate(c *poolapi.Candidate) []Issue {
	if c == nil {
		c = &poolapi.Candidate{}
	}
	return check(c)
}

// Job reports what stops a job record from being saved.
func Job(j *poolapi.Job) []Issue {
	if j == nil {
		j = &poolapi.Job{}
	}
	return check(j)
}

var instance = newValidator()

// newValidator builds a validator that reports fields under their json names,
// so issues line up with the wire payloads and form fields.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func check(record any) []Issue {
	err := instance.Struct(record)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []Issue{{Message: err.Error()}}
	}

	issues := make([]Issue, 0, len(verrs))
	for _, fe := range verrs {
		path := fieldPath(fe.Namespace())
		issues = append(issues, Issue{Path: path, Message: message(fe, path)})
	}
	return issues
}

// fieldPath strips the record type from a namespace like
// "Job.company.name" and splits the rest.
func fieldPath(namespace string) []string {
	parts := strings.Split(namespace, ".")
	if len(parts) <= 1 {
		return parts
	}
	return parts[1:]
}

func message(fe validator.FieldError, path []string) string {
	field := strings.Join(path, ".")
	if fe.Tag() == "required" {
		return fmt.Sprintf("%s is required", field)
	}
	return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
}
