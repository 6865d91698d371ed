// Package seed fills an address book with fake contacts for demos and manual testing.
package seed

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/tartampluch/contact-assistant/internal/addressbook"
	"github.com/tartampluch/contact-assistant/internal/config"
)

// Birth dates are drawn from this range.
var (
	earliestBirth = time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC)
	latestBirth   = time.Date(2010, 12, 31, 0, 0, 0, 0, time.UTC)
)

// Seeder creates fake records: a first name, one 10 digit phone and,
// for about half of them, a birthday.
type Seeder struct {
	faker *gofakeit.Faker
}

// New returns a Seeder. A zero seed picks a random one.
func New(seed uint64) *Seeder {
	return &Seeder{faker: gofakeit.New(seed)}
}

// Populate adds count fake records to book and returns how many were added.
// Generated names may collide with existing contacts; collisions are retried
// up to config.SeedAttemptsFactor times per requested record.
func (s *Seeder) Populate(book *addressbook.Book, count int) (int, error) {
	added := 0
	for attempts := 0; added < count && attempts < count*config.SeedAttemptsFactor; attempts++ {
		r, err := s.record()
		if err != nil {
			return added, fmt.Errorf("%s: %w", config.ErrSeed, err)
		}

		if err := book.AddRecord(r); err != nil {
			if errors.Is(err, addressbook.ErrDuplicate) {
				slog.Debug(config.MsgSeedSkip,
					config.LogKeyComponent, config.CompSeed,
					config.LogKeyName, r.Name(),
				)
				continue
			}
			return added, fmt.Errorf("%s: %w", config.ErrSeed, err)
		}
		added++
	}

	slog.Info(config.MsgSeeded,
		config.LogKeyComponent, config.CompSeed,
		config.LogKeyCount, added,
		config.LogKeyTotal, book.Len(),
	)
	return added, nil
}

func (s *Seeder) record() (*addressbook.Record, error) {
	r, err := addressbook.NewRecord(s.faker.FirstName())
	if err != nil {
		return nil, err
	}
	if err := r.AddPhone(s.faker.Numerify("##########")); err != nil {
		return nil, err
	}
	if s.faker.Bool() {
		bday := s.faker.DateRange(earliestBirth, latestBirth)
		if err := r.SetBirthday(addressbook.FormatDate(bday)); err != nil {
			return nil, err
		}
	}
	return r, nil
}
