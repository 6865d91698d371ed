package assistant

import (
	"strconv"
	"strings"

	"github.com/tartampluch/contact-assistant/internal/addressbook"
	"github.com/tartampluch/contact-assistant/internal/config"
)

// register builds the dispatch table. Registration order is the help order.
func (d *Dispatcher) register() {
	table := []Command{
		{Name: "hello", run: d.hello},
		{Name: "add", Args: []string{"name", "phone"}, run: d.addContact},
		{Name: "change", Args: []string{"name", "old_phone", "new_phone"}, run: d.changeContact},
		{Name: "phone", Args: []string{"name"}, run: d.showPhone},
		{Name: "remove-phone", Args: []string{"name", "phone"}, run: d.removePhone},
		{Name: "delete", Args: []string{"name"}, run: d.deleteContact},
		{Name: "all", run: d.showAll},
		{Name: "add-birthday", Args: []string{"name", "date"}, run: d.addBirthday},
		{Name: "show-birthday", Args: []string{"name"}, run: d.showBirthday},
		{Name: "birthdays", Optional: []string{"days"}, run: d.birthdays},
		{Name: "export", Args: []string{"name"}, run: d.export},
		{Name: "calendar", Optional: []string{"days"}, run: d.calendar},
		{Name: "help", run: d.help},
	}

	d.commands = make(map[string]Command, len(table))
	d.order = make([]string, 0, len(table))
	for _, c := range table {
		d.commands[c.Name] = c
		d.order = append(d.order, c.Name)
	}
}

func (d *Dispatcher) hello([]string) (string, error) {
	return d.tr.T(config.TKeyHello, nil), nil
}

// addContact creates the contact, or adds the phone when the contact exists.
func (d *Dispatcher) addContact(args []string) (string, error) {
	name, phone := args[0], args[1]

	if !d.book.Exists(name) {
		r, err := addressbook.NewRecord(name)
		if err != nil {
			return "", err
		}
		if err := r.AddPhone(phone); err != nil {
			return "", err
		}
		if err := d.book.AddRecord(r); err != nil {
			return "", err
		}
		return d.tr.T(config.TKeyContactAdded, nil), nil
	}

	r, err := d.book.Find(name)
	if err != nil {
		return "", err
	}
	if r.HasPhone(phone) {
		return d.tr.T(config.TKeyPhoneExists, nil), nil
	}
	if err := r.AddPhone(phone); err != nil {
		return "", err
	}
	return d.tr.T(config.TKeyPhoneAdded, nil), nil
}

func (d *Dispatcher) changeContact(args []string) (string, error) {
	name, oldPhone, newPhone := args[0], args[1], args[2]

	r, err := d.book.Find(name)
	if err != nil {
		return "", err
	}
	if err := r.EditPhone(oldPhone, newPhone); err != nil {
		return "", err
	}
	return d.tr.T(config.TKeyPhoneUpdated, map[string]any{
		"Old":  oldPhone,
		"New":  newPhone,
		"Name": name,
	}), nil
}

func (d *Dispatcher) showPhone(args []string) (string, error) {
	r, err := d.book.Find(args[0])
	if err != nil {
		return "", err
	}
	phones := r.Phones()
	if len(phones) == 0 {
		return d.tr.T(config.TKeyNoPhones, map[string]any{"Name": r.Name()}), nil
	}
	return strings.Join(phones, "; "), nil
}

func (d *Dispatcher) removePhone(args []string) (string, error) {
	name, phone := args[0], args[1]

	r, err := d.book.Find(name)
	if err != nil {
		return "", err
	}
	if err := r.RemovePhone(phone); err != nil {
		return "", err
	}
	return d.tr.T(config.TKeyPhoneRemoved, map[string]any{"Phone": phone, "Name": name}), nil
}

func (d *Dispatcher) deleteContact(args []string) (string, error) {
	if err := d.book.Delete(args[0]); err != nil {
		return "", err
	}
	return d.tr.T(config.TKeyContactDeleted, map[string]any{"Name": args[0]}), nil
}

func (d *Dispatcher) showAll([]string) (string, error) {
	records := d.book.All()
	if len(records) == 0 {
		return d.tr.T(config.TKeyBookEmpty, nil), nil
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		bday := d.tr.T(config.TKeyNotSet, nil)
		if t, ok := r.Birthday(); ok {
			bday = addressbook.FormatDate(t)
		}
		rows = append(rows, []string{r.Name(), strings.Join(r.Phones(), "; "), bday})
	}

	headers := []string{
		d.tr.T(config.TKeyColName, nil),
		d.tr.T(config.TKeyColPhones, nil),
		d.tr.T(config.TKeyColBirthday, nil),
	}
	return d.styles.renderTable(headers, rows), nil
}

func (d *Dispatcher) addBirthday(args []string) (string, error) {
	name, date := args[0], args[1]

	r, err := d.book.Find(name)
	if err != nil {
		return "", err
	}
	if err := r.SetBirthday(date); err != nil {
		return "", err
	}
	return d.tr.T(config.TKeyBirthdayAdded, map[string]any{"Name": name}), nil
}

func (d *Dispatcher) showBirthday(args []string) (string, error) {
	r, err := d.book.Find(args[0])
	if err != nil {
		return "", err
	}
	t, ok := r.Birthday()
	if !ok {
		return d.tr.T(config.TKeyBirthdayNotSet, nil), nil
	}
	return addressbook.FormatDate(t), nil
}

func (d *Dispatcher) birthdays(args []string) (string, error) {
	window, err := d.windowArg(args)
	if err != nil {
		return "", err
	}

	upcoming, err := d.book.UpcomingBirthdays(d.clock.Now(), window)
	if err != nil {
		return "", err
	}
	if len(upcoming) == 0 {
		return d.tr.T(config.TKeyNoUpcoming, nil), nil
	}

	lines := []string{d.tr.Plural(config.TKeyUpcomingHeader, len(upcoming), map[string]any{"Days": window})}
	for _, u := range upcoming {
		lines = append(lines, d.tr.T(config.TKeyUpcomingLine, map[string]any{
			"Name":     u.Name,
			"Birthday": addressbook.FormatDate(u.Birthday),
			"Date":     addressbook.FormatDate(u.CongratulationDate),
		}))
	}
	return strings.Join(lines, "\n"), nil
}

func (d *Dispatcher) export(args []string) (string, error) {
	r, err := d.book.Find(args[0])
	if err != nil {
		return "", err
	}

	var b strings.Builder
	if err := addressbook.EncodeVCard(&b, r); err != nil {
		return "", err
	}
	return strings.TrimRight(b.String(), "\r\n"), nil
}

func (d *Dispatcher) calendar(args []string) (string, error) {
	window, err := d.windowArg(args)
	if err != nil {
		return "", err
	}

	now := d.clock.Now()
	upcoming, err := d.book.UpcomingBirthdays(now, window)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	if err := addressbook.EncodeCalendar(&b, upcoming, now, d.eventSummary); err != nil {
		return "", err
	}
	return strings.TrimRight(b.String(), "\r\n"), nil
}

func (d *Dispatcher) eventSummary(u addressbook.UpcomingBirthday) string {
	data := map[string]any{"Name": u.Name, "Age": u.Age}
	if u.Age == 0 {
		return d.tr.T(config.TKeyEventSummaryZero, data)
	}
	return d.tr.T(config.TKeyEventSummary, data)
}

func (d *Dispatcher) help([]string) (string, error) {
	return d.tr.T(config.TKeyHelpHeader, nil) + "\n" + d.usageList(), nil
}

// windowArg returns the optional days argument, or the configured window.
func (d *Dispatcher) windowArg(args []string) (int, error) {
	if len(args) == 0 {
		return d.window, nil
	}
	days, err := strconv.Atoi(args[0])
	if err != nil || days < 0 || days > config.MaxWindowDays {
		return 0, &addressbook.Error{
			Kind:    addressbook.ErrValidation,
			Subject: addressbook.SubjectWindow,
			Value:   args[0],
		}
	}
	return days, nil
}
