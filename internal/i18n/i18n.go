// Package i18n loads the embedded locale files and translates user-facing messages.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/contact-assistant/internal/config"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

const (
	localeDir    = "locales"
	localePrefix = "active."
	localeSuffix = ".json"
)

// Translator resolves message keys for one language, falling back to English.
type Translator struct {
	bundle    *goi18n.Bundle
	localizer *goi18n.Localizer
	lang      string
	languages []string
}

// New loads every embedded locale and selects lang.
// An unknown or malformed lang is an error; use config.DefaultLanguage when unsure.
func New(lang string) (*Translator, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", config.ErrLanguage, lang, err)
	}

	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	languages, err := loadLocales(bundle)
	if err != nil {
		return nil, err
	}

	base, _ := tag.Base()
	if !slices.Contains(languages, base.String()) {
		return nil, fmt.Errorf("%s %q", config.ErrLanguage, lang)
	}

	return &Translator{
		bundle:    bundle,
		localizer: goi18n.NewLocalizer(bundle, tag.String()),
		lang:      base.String(),
		languages: languages,
	}, nil
}

// loadLocales registers every locales/active.<lang>.json file and returns the detected languages.
func loadLocales(bundle *goi18n.Bundle) ([]string, error) {
	entries, err := localeFS.ReadDir(localeDir)
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
		return nil, fmt.Errorf("%s: %w", config.ErrLocalesAccess, err)
	}

	var detected []string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, localePrefix) || !strings.HasSuffix(name, localeSuffix) {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		langCode := strings.TrimSuffix(strings.TrimPrefix(name, localePrefix), localeSuffix)
		if langCode == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, localeDir+"/"+name); err != nil {
			return nil, fmt.Errorf("%s %s: %w", config.ErrLocaleLoad, name, err)
		}
		detected = append(detected, langCode)

		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, langCode,
			config.LogKeyFile, name,
		)
	}
	return detected, nil
}

// Language returns the selected ISO 639-1 code.
func (t *Translator) Language() string {
	return t.lang
}

// Languages returns the codes of every embedded locale.
func (t *Translator) Languages() []string {
	return slices.Clone(t.languages)
}

// T translates key, executing its template with data.
// A missing key is logged and returned verbatim so the prompt never goes blank.
func (t *Translator) T(key string, data map[string]any) string {
	return t.localize(&goi18n.LocalizeConfig{MessageID: key, TemplateData: data})
}

// Plural translates key choosing the plural form for count.
// count is also exposed to the template as .Count.
func (t *Translator) Plural(key string, count int, data map[string]any) string {
	td := map[string]any{"Count": count}
	for k, v := range data {
		td[k] = v
	}
	return t.localize(&goi18n.LocalizeConfig{MessageID: key, TemplateData: td, PluralCount: count})
}

func (t *Translator) localize(lc *goi18n.LocalizeConfig) string {
	msg, err := t.localizer.Localize(lc)
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, lc.MessageID,
			config.LogKeyError, err,
		)
		if msg == "" {
			return lc.MessageID
		}
	}
	return msg
}
