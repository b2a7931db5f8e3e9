// Package i18n provides the localized entity type labels.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/drake/stixpick/entity"
)

var supported = []language.Tag{language.English, language.French}

var matcher = language.NewMatcher(supported)

var messages = buildCatalog()

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for t, s := range english {
		if err := b.SetString(language.English, key(string(t)), s); err != nil {
			panic(err)
		}
	}
	for t, s := range french {
		if err := b.SetString(language.French, key(string(t)), s); err != nil {
			panic(err)
		}
	}
	return b
}

func key(t string) string {
	return "entity_" + t
}

// Translator resolves entity type labels for a single language.
type Translator struct {
	tag      language.Tag
	printers []*message.Printer // resolved language first, then English
}

// New creates a translator for a BCP 47 language tag. Unparsable or
// unsupported tags fall back to English.
func New(lang string) *Translator {
	tag := language.English
	if parsed, err := language.Parse(lang); err == nil {
		_, idx, _ := matcher.Match(parsed)
		tag = supported[idx]
	}
	t := &Translator{tag: tag}
	t.printers = append(t.printers, message.NewPrinter(tag, message.Catalog(messages)))
	if tag != language.English {
		t.printers = append(t.printers, message.NewPrinter(language.English, message.Catalog(messages)))
	}
	return t
}

// Language returns the resolved language tag.
func (t *Translator) Language() language.Tag {
	return t.tag
}

// EntityType implements entity.Translator. It returns the raw tag when no
// message exists for it.
func (t *Translator) EntityType(tag string) string {
	if tag == "" {
		return ""
	}
	k := key(tag)
	for _, p := range t.printers {
		if s := p.Sprintf(k); s != k {
			return s
		}
	}
	return tag
}

var _ entity.Translator = (*Translator)(nil)
