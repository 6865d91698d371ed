package addressbook

import (
	"fmt"
	"io"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/contact-assistant/internal/config"
)

// EncodeVCard writes r as a vCard 4.0 object.
func EncodeVCard(w io.Writer, r *Record) error {
	card := make(vcard.Card)
	card.SetValue(vcard.FieldFormattedName, r.Name())
	card.SetName(&vcard.Name{GivenName: r.Name()})

	for _, phone := range r.Phones() {
		card.AddValue(vcard.FieldTelephone, phone)
	}

	if bday, ok := r.Birthday(); ok {
		card.SetValue(vcard.FieldBirthday, bday.Format(config.DateLayoutVCard))
	}

	vcard.ToV4(card)
	if err := vcard.NewEncoder(w).Encode(card); err != nil {
		return fmt.Errorf("%s: %w", config.ErrVCardEncode, err)
	}
	return nil
}
