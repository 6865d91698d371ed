// Package addressbook holds the validated contact records and the birthday logic.
package addressbook

import (
	"log/slog"
	"slices"

	"github.com/tartampluch/contact-assistant/internal/config"
)

// Book is an ordered mapping from contact name to Record.
// It is not safe for concurrent use; the assistant accesses it from a single goroutine.
type Book struct {
	order   []string
	records map[string]*Record
}

// NewBook returns an empty address book.
func NewBook() *Book {
	return &Book{records: make(map[string]*Record)}
}

// AddRecord inserts r under its name. A name already present is rejected.
func (b *Book) AddRecord(r *Record) error {
	if b.Exists(r.Name()) {
		return duplicate(SubjectContact, r.Name())
	}
	b.records[r.Name()] = r
	b.order = append(b.order, r.Name())

	slog.Debug(config.MsgRecordAdded,
		config.LogKeyComponent, config.CompBook,
		config.LogKeyName, r.Name(),
	)
	return nil
}

// Find returns the record stored under name.
func (b *Book) Find(name string) (*Record, error) {
	r, ok := b.records[name]
	if !ok {
		return nil, notFound(SubjectContact, name)
	}
	return r, nil
}

// Exists reports whether a record named name is stored.
func (b *Book) Exists(name string) bool {
	_, ok := b.records[name]
	return ok
}

// Delete removes the record stored under name.
func (b *Book) Delete(name string) error {
	if !b.Exists(name) {
		return notFound(SubjectContact, name)
	}
	delete(b.records, name)
	if idx := slices.Index(b.order, name); idx >= 0 {
		b.order = slices.Delete(b.order, idx, idx+1)
	}

	slog.Debug(config.MsgRecordDeleted,
		config.LogKeyComponent, config.CompBook,
		config.LogKeyName, name,
	)
	return nil
}

// All returns every record in insertion order.
func (b *Book) All() []*Record {
	out := make([]*Record, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, b.records[name])
	}
	return out
}

// Len returns the number of records.
func (b *Book) Len() int {
	return len(b.order)
}
