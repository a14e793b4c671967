// Package inputval validates parsed form input before any store call is made.
//
// Validation rules are declared as struct tags and checked with
// go-playground/validator. An optional `label` tag supplies the
// human-readable field name used in messages:
//
//	type profileInput struct {
//	    Name  string `validate:"required" label:"Name"`
//	    Photo string `validate:"required,url" label:"Photo URL"`
//	}
//
//	if result := inputval.Validate(input); result.HasErrors() {
//	    // result.Fields() for inline display, result.First() for a banner
//	}
//
// Validate is a pure function of its input: it never touches the database,
// so a validation failure is guaranteed to leave the store untouched.
package inputval

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// FieldError is one failed rule, keyed by the Go struct field name.
type FieldError struct {
	Field   string
	Message string
}

// Result collects the field errors from one Validate call.
type Result struct {
	errs []FieldError
}

// HasErrors reports whether any rule failed.
func (r Result) HasErrors() bool { return len(r.errs) > 0 }

// First returns the first error message, or "" when validation passed.
// Handlers that show a single banner above the form use this.
func (r Result) First() string {
	if len(r.errs) == 0 {
		return ""
	}
	return r.errs[0].Message
}

// Fields returns field name -> message for inline per-field display.
func (r Result) Fields() map[string]string {
	if len(r.errs) == 0 {
		return nil
	}
	m := make(map[string]string, len(r.errs))
	for _, e := range r.errs {
		if _, seen := m[e.Field]; !seen {
			m[e.Field] = e.Message
		}
	}
	return m
}

// Field returns the message for one field, or "" if it passed.
func (r Result) Field(name string) string {
	for _, e := range r.errs {
		if e.Field == name {
			return e.Message
		}
	}
	return ""
}

// Add appends an error produced outside the tag rules (e.g. a failed
// numeric parse) so it is reported alongside the declarative ones.
func (r *Result) Add(field, message string) {
	r.errs = append(r.errs, FieldError{Field: field, Message: message})
}

// Validate checks v against its `validate` struct tags.
func Validate(v any) Result {
	err := validate.Struct(v)
	if err == nil {
		return Result{}
	}
	ves, ok := err.(validator.ValidationErrors)
	if !ok {
		return Result{errs: []FieldError{{Message: "Invalid input."}}}
	}

	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	res := Result{errs: make([]FieldError, 0, len(ves))}
	for _, fe := range ves {
		name := fe.StructField()
		label := name
		if sf, found := t.FieldByName(name); found {
			if l := sf.Tag.Get("label"); l != "" {
				label = l
			}
		}
		res.errs = append(res.errs, FieldError{Field: name, Message: messageFor(fe, label)})
	}
	return res
}

func messageFor(fe validator.FieldError, label string) string {
	switch fe.Tag() {
	case "required":
		return label + " is required."
	case "url":
		return label + " must be a valid URL."
	case "email":
		return label + " must be a valid email address."
	case "max":
		return fmt.Sprintf("%s must be at most %s characters.", label, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters.", label, fe.Param())
	case "oneof":
		return label + " is invalid."
	default:
		return label + " is invalid."
	}
}
