package addressbook

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/contact-assistant/internal/config"
)

// SummaryFunc renders the title of a birthday event.
type SummaryFunc func(UpcomingBirthday) string

// EncodeCalendar writes an iCalendar feed with one all-day event per entry,
// placed on its congratulation date. A nil summary falls back to "Birthday: <name>".
func EncodeCalendar(w io.Writer, entries []UpcomingBirthday, now time.Time, summary SummaryFunc) error {
	// Clients flag a VCALENDAR without components as invalid, so an empty
	// report is written as the stub.
	if len(entries) == 0 {
		_, err := io.WriteString(w, config.StubVCalendar)
		return err
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	refreshProp := ical.NewProp(config.PropRefresh)
	refreshProp.SetDuration(config.DefaultICalRefresh)
	cal.Props.Set(refreshProp)

	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	for _, e := range entries {
		title := fmt.Sprintf("Birthday: %s", e.Name)
		if summary != nil {
			title = summary(e)
		}

		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, eventUID(e))
		event.Props.SetText(config.PropSummary, title)

		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(e.CongratulationDate)
		event.Props.Set(dtStartProp)
		event.Props.Set(dtStampProp)

		cal.Children = append(cal.Children, event.Component)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// eventUID is deterministic so calendar clients update events instead of duplicating them.
func eventUID(e UpcomingBirthday) string {
	input := fmt.Sprintf(config.FormatHashInput, e.Name, e.Birthday.Format(time.DateOnly), config.UIDSalt)
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf(config.FormatUID,
		fmt.Sprintf("%x", hash[:config.UIDHashLength]),
		e.Date.Format(config.DateLayoutVCard),
		config.ICalDomain,
	)
}
