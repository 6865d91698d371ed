package addressbook

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Record is one contact: a name, an ordered set of phone numbers and an optional birthday.
// The name is the identity key inside a Book and never changes.
type Record struct {
	name     string
	phones   []string
	birthday time.Time
	hasBday  bool
}

// NewRecord creates an empty record. Surrounding whitespace is trimmed from name.
func NewRecord(name string) (*Record, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, invalid(SubjectName, name)
	}
	return &Record{name: trimmed}, nil
}

// Name returns the identity key of the record.
func (r *Record) Name() string {
	return r.name
}

// Phones returns a copy of the phone numbers in insertion order.
func (r *Record) Phones() []string {
	return slices.Clone(r.phones)
}

// HasPhone reports whether number belongs to the record.
func (r *Record) HasPhone(number string) bool {
	return slices.Contains(r.phones, number)
}

// AddPhone validates and appends number. Adding a number twice is a no-op.
func (r *Record) AddPhone(number string) error {
	if err := ValidatePhone(number); err != nil {
		return err
	}
	if !r.HasPhone(number) {
		r.phones = append(r.phones, number)
	}
	return nil
}

// EditPhone replaces oldNumber with newNumber, keeping its position.
// The lookup of oldNumber happens first, so a missing old number is reported
// as ErrNotFound even when newNumber is malformed.
func (r *Record) EditPhone(oldNumber, newNumber string) error {
	idx := slices.Index(r.phones, oldNumber)
	if idx < 0 {
		return notFound(SubjectPhone, oldNumber)
	}
	if err := ValidatePhone(newNumber); err != nil {
		return err
	}
	if newNumber != oldNumber && r.HasPhone(newNumber) {
		return duplicate(SubjectPhone, newNumber)
	}
	r.phones[idx] = newNumber
	return nil
}

// RemovePhone deletes number from the record.
func (r *Record) RemovePhone(number string) error {
	idx := slices.Index(r.phones, number)
	if idx < 0 {
		return notFound(SubjectPhone, number)
	}
	r.phones = slices.Delete(r.phones, idx, idx+1)
	return nil
}

// SetBirthday parses a DD.MM.YYYY string and stores it, replacing any previous value.
func (r *Record) SetBirthday(value string) error {
	t, err := ParseBirthday(value)
	if err != nil {
		return err
	}
	r.birthday = t
	r.hasBday = true
	return nil
}

// Birthday returns the stored date and whether one is set.
func (r *Record) Birthday() (time.Time, bool) {
	return r.birthday, r.hasBday
}

func (r *Record) String() string {
	bday := "not set"
	if r.hasBday {
		bday = FormatDate(r.birthday)
	}
	return fmt.Sprintf("Contact name: %s, birthday: %s, phones: %s",
		r.name, bday, strings.Join(r.phones, "; "))
}
