package addressbook

import (
	"cmp"
	"log/slog"
	"slices"
	"strconv"
	"time"

	"github.com/tartampluch/contact-assistant/internal/config"
)

const hoursPerDay = 24

// UpcomingBirthday is one line of the birthdays report.
type UpcomingBirthday struct {
	Name string

	// Birthday is the stored date of birth.
	Birthday time.Time

	// Date is the next occurrence of the birthday, on or after today.
	Date time.Time

	// CongratulationDate is Date moved to the following Monday when it falls on a weekend.
	CongratulationDate time.Time

	// Age is the age reached on Date.
	Age int
}

// UpcomingBirthdays lists the records whose next birthday falls within windowDays
// of today, both ends included. Entries are sorted by congratulation date; ties keep
// insertion order.
func (b *Book) UpcomingBirthdays(today time.Time, windowDays int) ([]UpcomingBirthday, error) {
	if windowDays < 0 {
		return nil, invalid(SubjectWindow, strconv.Itoa(windowDays))
	}

	var out []UpcomingBirthday
	for _, r := range b.All() {
		bday, ok := r.Birthday()
		if !ok {
			continue
		}

		next, age := nextOccurrence(today, bday)
		if daysBetween(today, next) > windowDays {
			continue
		}

		out = append(out, UpcomingBirthday{
			Name:               r.Name(),
			Birthday:           bday,
			Date:               next,
			CongratulationDate: shiftWeekend(next),
			Age:                age,
		})
	}

	slices.SortStableFunc(out, func(a, b UpcomingBirthday) int {
		return cmp.Compare(a.CongratulationDate.Unix(), b.CongratulationDate.Unix())
	})

	slog.Debug(config.MsgUpcoming,
		config.LogKeyComponent, config.CompBook,
		config.LogKeyWindow, windowDays,
		config.LogKeyCount, len(out),
	)
	return out, nil
}

// nextOccurrence determines the next birthday date on or after the calendar day of now.
// Calendar arithmetic is done in UTC so that DST transitions never shorten a day.
func nextOccurrence(now time.Time, birthDate time.Time) (time.Time, int) {
	todayStart := dateOf(now)
	currentYear := todayStart.Year()

	// time.Date normalizes Feb 29 to March 1st if currentYear is not a leap year.
	candidate := time.Date(currentYear, birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, time.UTC)
	if candidate.Before(todayStart) {
		candidate = time.Date(currentYear+1, birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, time.UTC)
	}

	return candidate, candidate.Year() - birthDate.Year()
}

// shiftWeekend moves Saturday and Sunday to the following Monday.
func shiftWeekend(d time.Time) time.Time {
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDate(0, 0, 2)
	case time.Sunday:
		return d.AddDate(0, 0, 1)
	default:
		return d
	}
}

// dateOf strips the clock and zone from t, keeping its local calendar date.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(dateOf(from)).Hours() / hoursPerDay)
}
