package addressbook

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package wraps exactly one of them,
// so callers can branch with errors.Is.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrDuplicate  = errors.New("already exists")
)

// Subject names the field or entity an Error refers to.
type Subject string

const (
	SubjectName     Subject = "name"
	SubjectPhone    Subject = "phone"
	SubjectBirthday Subject = "birthday"
	SubjectContact  Subject = "contact"
	SubjectWindow   Subject = "window"
)

// Error describes a rejected address book operation.
type Error struct {
	Kind    error   // ErrValidation, ErrNotFound or ErrDuplicate
	Subject Subject // what was rejected
	Value   string  // offending input, as given
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Subject, e.Value, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func invalid(subject Subject, value string) error {
	return &Error{Kind: ErrValidation, Subject: subject, Value: value}
}

func notFound(subject Subject, value string) error {
	return &Error{Kind: ErrNotFound, Subject: subject, Value: value}
}

func duplicate(subject Subject, value string) error {
	return &Error{Kind: ErrDuplicate, Subject: subject, Value: value}
}
