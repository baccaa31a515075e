// Package i18n localizes menu labels and UI hints.
package i18n

import (
	"embed"
	"fmt"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var locales embed.FS

// Message IDs looked up by the hosts. Menu labels use LabelID.
const (
	MsgAppTitle   = "app.title"
	MsgAppBye     = "app.bye"
	MsgTraceTitle = "trace.title"
	MsgCardTiles  = "card.tiles"
)

// Translator resolves message IDs for one language, falling back to English.
type Translator struct {
	bundle    *goi18n.Bundle
	localizer *goi18n.Localizer
	lang      language.Tag
}

// New loads the embedded message files and selects lang.
func New(lang string) (*Translator, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := locales.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}
	for _, f := range files {
		name := path.Join("locales", f.Name())
		data, err := locales.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, f.Name()); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
	}

	tr := &Translator{bundle: bundle}
	if err := tr.SetLanguage(lang); err != nil {
		return nil, err
	}
	return tr, nil
}

// SetLanguage switches the active language. An empty code selects English.
func (t *Translator) SetLanguage(code string) error {
	tag := language.English
	if code != "" {
		parsed, err := language.Parse(code)
		if err != nil {
			return fmt.Errorf("parse language %q: %w", code, err)
		}
		tag = parsed
	}
	t.lang = tag
	t.localizer = goi18n.NewLocalizer(t.bundle, tag.String(), language.English.String())
	return nil
}

// Language returns the active language tag.
func (t *Translator) Language() language.Tag { return t.lang }

// Languages lists the tags with embedded translations.
func (t *Translator) Languages() []language.Tag { return t.bundle.LanguageTags() }

// String returns the message for id, or id itself when it is unknown.
func (t *Translator) String(id string) string {
	msg, err := t.localizer.Localize(&goi18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return msg
}

// Plural returns the plural form of id for count.
func (t *Translator) Plural(id string, count int) string {
	msg, err := t.localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    id,
		PluralCount:  count,
		TemplateData: map[string]interface{}{"Count": count},
	})
	if err != nil {
		return fmt.Sprintf("%d %s", count, id)
	}
	return msg
}

// Label localizes a menu label. Labels without a translation are shown as is.
func (t *Translator) Label(label string) string {
	msg, err := t.localizer.Localize(&goi18n.LocalizeConfig{
		DefaultMessage: &goi18n.Message{
			ID:    LabelID(label),
			Other: label,
		},
	})
	if err != nil {
		return label
	}
	return msg
}

// LabelID is the message ID of a menu label.
func LabelID(label string) string {
	return "menu." + strings.ReplaceAll(strings.ToLower(strings.TrimSpace(label)), " ", "_")
}
