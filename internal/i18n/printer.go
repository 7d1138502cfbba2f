// Package i18n holds the console and report strings in Spanish (default) and English.
package i18n

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var supported = []language.Tag{language.Spanish, language.English}

var (
	messages = newCatalog()
	matcher  = language.NewMatcher(supported)
)

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.Spanish))
	for key, msg := range spanish {
		if err := b.SetString(language.Spanish, key, msg); err != nil {
			panic(fmt.Sprintf("i18n: register %q: %v", key, err))
		}
		if err := b.SetString(language.English, key, key); err != nil {
			panic(fmt.Sprintf("i18n: register %q: %v", key, err))
		}
	}
	return b
}

// Printer renders message keys in one language.
type Printer struct {
	tag language.Tag
	p   *message.Printer
}

// New returns a printer for lang ("es", "en", "es-AR", ...). POSIX locale values such as
// "en_US.UTF-8" or a gettext list like "en_US:en" are accepted. Unsupported languages fall back to Spanish.
func New(lang string) *Printer {
	tag := language.Spanish
	if parsed, err := language.Parse(localeTag(lang)); err == nil {
		_, idx, conf := matcher.Match(parsed)
		if conf != language.No {
			tag = supported[idx]
		}
	}
	return &Printer{tag: tag, p: message.NewPrinter(tag, message.Catalog(messages))}
}

// localeTag keeps the first entry of a colon list and drops the codeset and modifier.
func localeTag(lang string) string {
	lang, _, _ = strings.Cut(strings.TrimSpace(lang), ":")
	if i := strings.IndexAny(lang, ".@"); i >= 0 {
		lang = lang[:i]
	}
	return strings.ReplaceAll(lang, "_", "-")
}

// Tag reports the resolved language.
func (p *Printer) Tag() language.Tag {
	return p.tag
}

// Sprintf formats the message for key.
func (p *Printer) Sprintf(key string, args ...any) string {
	return p.p.Sprintf(key, args...)
}

// Println writes the message for key followed by a newline.
func (p *Printer) Println(w io.Writer, key string, args ...any) {
	fmt.Fprintln(w, p.Sprintf(key, args...))
}
