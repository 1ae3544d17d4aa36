// Package contact holds the contact form's state and the boundary where a
// finished message is handed to whatever delivers it.
package contact

import (
	"time"

	"github.com/google/uuid"
)

// Field identifies one of the form's inputs.
type Field int

const (
	FieldName Field = iota
	FieldMessage
)

func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldMessage:
		return "message"
	default:
		return "unknown"
	}
}

// FormState is the pair of values bound to the form inputs.
type FormState struct {
	Name    string
	Message string
}

// WithName returns a copy of s with Name replaced.
func (s FormState) WithName(name string) FormState {
	s.Name = name
	return s
}

// WithMessage returns a copy of s with Message replaced.
func (s FormState) WithMessage(msg string) FormState {
	s.Message = msg
	return s
}

// With returns a copy of s with the given field replaced.
func (s FormState) With(f Field, v string) FormState {
	switch f {
	case FieldName:
		return s.WithName(v)
	case FieldMessage:
		return s.WithMessage(v)
	}
	return s
}

// Value returns the current value of f.
func (s FormState) Value(f Field) string {
	if f == FieldMessage {
		return s.Message
	}
	return s.Name
}

// MissingField returns the first required field that is empty, in form
// order. Values are not trimmed: a single space counts as filled in.
func (s FormState) MissingField() (Field, bool) {
	if s.Name == "" {
		return FieldName, true
	}
	if s.Message == "" {
		return FieldMessage, true
	}
	return 0, false
}

// Submission is a message ready for delivery.
type Submission struct {
	ID          string
	Name        string
	Message     string
	SubmittedAt time.Time
}

// Form tracks the field values and whether the form has been sent.
// Submitted only ever moves from false to true.
type Form struct {
	state     FormState
	submitted bool
	now       func() time.Time
}

// NewForm returns an empty, unsubmitted form.
func NewForm() *Form {
	return &Form{now: time.Now}
}

// State returns the current field values.
func (f *Form) State() FormState { return f.state }

// Submitted reports whether the form has been sent in this session.
func (f *Form) Submitted() bool { return f.submitted }

// Set replaces one field's value.
func (f *Form) Set(field Field, v string) {
	f.state = f.state.With(field, v)
}

// Submit accepts the current values as-is. If a required field is empty
// it returns that field and ok=false without changing anything.
func (f *Form) Submit() (sub Submission, missing Field, ok bool) {
	if m, empty := f.state.MissingField(); empty {
		return Submission{}, m, false
	}
	f.submitted = true
	now := time.Now
	if f.now != nil {
		now = f.now
	}
	return Submission{
		ID:          uuid.NewString(),
		Name:        f.state.Name,
		Message:     f.state.Message,
		SubmittedAt: now(),
	}, 0, true
}
