// Package translate renders user-facing messages for the locale of the host.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	mutex   sync.RWMutex
	tag     language.Tag
	printer *message.Printer
)

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("isacodec: locale: %v", err)
	}

	SetLanguage(locales...)
}

// SetLanguage selects the printer for the best match among the locales.
// With no locales, en-US is used.
func SetLanguage(locales ...string) {
	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	matched := message.MatchLanguage(locales...)

	mutex.Lock()
	tag = matched
	printer = message.NewPrinter(matched)
	mutex.Unlock()
}

// Language returns the language of the active printer.
func Language() language.Tag {
	mutex.RLock()
	defer mutex.RUnlock()

	return tag
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	mutex.RLock()
	defer mutex.RUnlock()

	return printer.Sprintf(key, args...)
}
