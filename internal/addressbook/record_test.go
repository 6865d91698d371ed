package addressbook_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/contact-assistant/internal/addressbook"
)

func newRecord(t *testing.T, name string, phones ...string) *addressbook.Record {
	t.Helper()
	r, err := addressbook.NewRecord(name)
	require.NoError(t, err)
	for _, p := range phones {
		require.NoError(t, r.AddPhone(p))
	}
	return r
}

func TestNewRecord(t *testing.T) {
	r, err := addressbook.NewRecord("  John ")
	require.NoError(t, err)
	assert.Equal(t, "John", r.Name())
	assert.Empty(t, r.Phones())

	_, ok := r.Birthday()
	assert.False(t, ok, "A new record has no birthday")
}

func TestNewRecord_BlankNameRejected(t *testing.T) {
	for _, name := range []string{"", "   ", "\t"} {
		_, err := addressbook.NewRecord(name)
		assert.ErrorIs(t, err, addressbook.ErrValidation, "name %q", name)
	}
}

// TestAddPhone_Validation covers the exact 10 digit rule.
func TestAddPhone_Validation(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{"0123456789", true},
		{"9999999999", true},
		{"0000000000", true},
		{"", false},
		{"123456789", false},
		{"01234567890", false},
		{"012345678a", false},
		{"+380123456", false},
		{"012 345 67", false},
		{"０１２３４５６７８９", false}, // full-width digits are not ASCII
		{"-123456789", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			r := newRecord(t, "John")
			err := r.AddPhone(tt.phone)
			if tt.valid {
				require.NoError(t, err)
				assert.Equal(t, []string{tt.phone}, r.Phones())
				return
			}
			assert.ErrorIs(t, err, addressbook.ErrValidation)
			assert.Empty(t, r.Phones(), "A rejected phone must not be stored")
		})
	}
}

// TestAddPhone_AllTenDigitStrings walks a spread of 10 digit numbers.
func TestAddPhone_AllTenDigitStrings(t *testing.T) {
	r := newRecord(t, "John")
	for i := 0; i < 10; i++ {
		phone := strings.Repeat(string(rune('0'+i)), 10)
		assert.NoError(t, r.AddPhone(phone))
	}
	assert.Len(t, r.Phones(), 10)
}

func TestAddPhone_Idempotent(t *testing.T) {
	r := newRecord(t, "John", "0123456789")
	require.NoError(t, r.AddPhone("0123456789"))
	assert.Equal(t, []string{"0123456789"}, r.Phones())
}

func TestPhones_ReturnsCopy(t *testing.T) {
	r := newRecord(t, "John", "0123456789")
	phones := r.Phones()
	phones[0] = "mutated"
	assert.Equal(t, []string{"0123456789"}, r.Phones())
}

func TestEditPhone(t *testing.T) {
	tests := []struct {
		name    string
		old     string
		new     string
		wantErr error
		want    []string
	}{
		{"replace keeps position", "1111111111", "3333333333", nil, []string{"3333333333", "2222222222"}},
		{"same number", "1111111111", "1111111111", nil, []string{"1111111111", "2222222222"}},
		{"old missing", "9999999999", "3333333333", addressbook.ErrNotFound, []string{"1111111111", "2222222222"}},
		{"old missing and new invalid", "9999999999", "bad", addressbook.ErrNotFound, []string{"1111111111", "2222222222"}},
		{"new invalid", "1111111111", "123", addressbook.ErrValidation, []string{"1111111111", "2222222222"}},
		{"new already present", "1111111111", "2222222222", addressbook.ErrDuplicate, []string{"1111111111", "2222222222"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRecord(t, "John", "1111111111", "2222222222")
			err := r.EditPhone(tt.old, tt.new)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Equal(t, tt.want, r.Phones())
		})
	}
}

func TestRemovePhone(t *testing.T) {
	r := newRecord(t, "John", "1111111111", "2222222222")

	require.NoError(t, r.RemovePhone("1111111111"))
	assert.Equal(t, []string{"2222222222"}, r.Phones())

	err := r.RemovePhone("1111111111")
	assert.ErrorIs(t, err, addressbook.ErrNotFound)
}

func TestSetBirthday(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"08.11.2025", time.Date(2025, 11, 8, 0, 0, 0, 0, time.UTC)},
		{"8.11.2025", time.Date(2025, 11, 8, 0, 0, 0, 0, time.UTC)},
		{"1.2.1990", time.Date(1990, 2, 1, 0, 0, 0, 0, time.UTC)},
		{"29.02.2000", time.Date(2000, 2, 29, 0, 0, 0, 0, time.UTC)},
		{" 31.12.1999 ", time.Date(1999, 12, 31, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r := newRecord(t, "John")
			require.NoError(t, r.SetBirthday(tt.input))
			got, ok := r.Birthday()
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetBirthday_Invalid(t *testing.T) {
	inputs := []string{
		"",
		"2025-11-08",
		"08/11/2025",
		"32.01.2000",
		"31.04.2000",
		"29.02.2023", // not a leap year
		"00.01.2000",
		"01.13.2000",
		"01.01.25",
		"tomorrow",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			r := newRecord(t, "John")
			err := r.SetBirthday(in)
			assert.ErrorIs(t, err, addressbook.ErrValidation)

			var abErr *addressbook.Error
			require.True(t, errors.As(err, &abErr))
			assert.Equal(t, addressbook.SubjectBirthday, abErr.Subject)
			assert.Equal(t, in, abErr.Value)

			_, ok := r.Birthday()
			assert.False(t, ok, "A rejected birthday must not be stored")
		})
	}
}

func TestSetBirthday_InvalidKeepsPrevious(t *testing.T) {
	r := newRecord(t, "John")
	require.NoError(t, r.SetBirthday("01.01.2000"))
	require.Error(t, r.SetBirthday("nope"))

	got, ok := r.Birthday()
	assert.True(t, ok)
	assert.Equal(t, "01.01.2000", addressbook.FormatDate(got))
}

func TestRecord_String(t *testing.T) {
	r := newRecord(t, "John", "1111111111", "2222222222")
	assert.Equal(t, "Contact name: John, birthday: not set, phones: 1111111111; 2222222222", r.String())

	require.NoError(t, r.SetBirthday("5.3.1991"))
	assert.Equal(t, "Contact name: John, birthday: 05.03.1991, phones: 1111111111; 2222222222", r.String())
}

func TestError_Message(t *testing.T) {
	r := newRecord(t, "John")
	err := r.AddPhone("123")
	assert.EqualError(t, err, `phone "123": validation failed`)
}
