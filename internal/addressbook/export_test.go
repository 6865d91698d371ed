package addressbook_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/emersion/go-ical"
	"github.com/emersion/go-vcard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/contact-assistant/internal/addressbook"
	"github.com/tartampluch/contact-assistant/internal/config"
)

func TestEncodeVCard(t *testing.T) {
	r := newRecord(t, "John", "1111111111", "2222222222")
	require.NoError(t, r.SetBirthday("8.11.1990"))

	var buf bytes.Buffer
	require.NoError(t, addressbook.EncodeVCard(&buf, r))

	card, err := vcard.NewDecoder(&buf).Decode()
	require.NoError(t, err)

	assert.Equal(t, "4.0", card.Value(vcard.FieldVersion))
	assert.Equal(t, "John", card.PreferredValue(vcard.FieldFormattedName))
	assert.Equal(t, []string{"1111111111", "2222222222"}, card.Values(vcard.FieldTelephone))
	assert.Equal(t, "19901108", card.Value(vcard.FieldBirthday))
}

func TestEncodeVCard_WithoutBirthday(t *testing.T) {
	r := newRecord(t, "Jane")

	var buf bytes.Buffer
	require.NoError(t, addressbook.EncodeVCard(&buf, r))

	out := buf.String()
	assert.Contains(t, out, "BEGIN:VCARD")
	assert.Contains(t, out, "FN:Jane")
	assert.NotContains(t, out, "BDAY")
	assert.NotContains(t, out, "TEL")
}

func TestEncodeCalendar(t *testing.T) {
	book := bookWithBirthdays(t, map[string]string{"John": "8.11.1990", "Jane": "6.11.1985"}, "John", "Jane")
	entries, err := book.UpcomingBirthdays(date(2025, 11, 5), 7)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	var buf bytes.Buffer
	summary := func(e addressbook.UpcomingBirthday) string {
		return fmt.Sprintf("%s turns %d", e.Name, e.Age)
	}
	require.NoError(t, addressbook.EncodeCalendar(&buf, entries, date(2025, 11, 5), summary))

	cal, err := ical.NewDecoder(&buf).Decode()
	require.NoError(t, err)

	events := cal.Events()
	require.Len(t, events, 2)

	first, err := events[0].Props.Text(config.PropSummary)
	require.NoError(t, err)
	assert.Equal(t, "Jane turns 40", first)

	start, err := events[1].DateTimeStart(nil)
	require.NoError(t, err)
	assert.Equal(t, "2025-11-10", start.Format("2006-01-02"), "Saturday birthday is celebrated on Monday")

	uid1, _ := events[0].Props.Text(config.PropUID)
	uid2, _ := events[1].Props.Text(config.PropUID)
	assert.NotEqual(t, uid1, uid2)
	assert.True(t, strings.HasSuffix(uid1, "@"+config.ICalDomain))
}

func TestEncodeCalendar_DeterministicUID(t *testing.T) {
	book := bookWithBirthdays(t, map[string]string{"John": "8.11.1990"}, "John")
	entries, err := book.UpcomingBirthdays(date(2025, 11, 5), 7)
	require.NoError(t, err)

	var a, b bytes.Buffer
	require.NoError(t, addressbook.EncodeCalendar(&a, entries, date(2025, 11, 5), nil))
	require.NoError(t, addressbook.EncodeCalendar(&b, entries, date(2025, 11, 5), nil))
	assert.Equal(t, a.String(), b.String())
	assert.Contains(t, a.String(), "SUMMARY:Birthday: John")
}

func TestEncodeCalendar_EmptyWritesStub(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, addressbook.EncodeCalendar(&buf, nil, date(2025, 11, 5), nil))
	assert.Equal(t, config.StubVCalendar, buf.String())
}
