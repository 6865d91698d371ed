package addressbook

import (
	"strings"
	"time"

	"github.com/tartampluch/contact-assistant/internal/config"
)

// ValidatePhone reports whether number is exactly config.PhoneDigits ASCII digits.
func ValidatePhone(number string) error {
	if len(number) != config.PhoneDigits {
		return invalid(SubjectPhone, number)
	}
	for i := 0; i < len(number); i++ {
		if number[i] < '0' || number[i] > '9' {
			return invalid(SubjectPhone, number)
		}
	}
	return nil
}

// ParseBirthday parses a DD.MM.YYYY date. Single digit day and month are accepted.
// The result is midnight UTC; only the calendar date is meaningful.
func ParseBirthday(value string) (time.Time, error) {
	t, err := time.Parse(config.DateLayoutInput, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, invalid(SubjectBirthday, value)
	}
	return t, nil
}

// FormatDate renders a date as DD.MM.YYYY.
func FormatDate(t time.Time) string {
	return t.Format(config.DateLayoutDisplay)
}
