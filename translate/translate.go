// Package translate renders user-facing message strings in the host
// locale. Every sentinel error and diagnostic string in the module routes
// through From, so message catalogs can be added later without touching
// the call sites that format them.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("gatesim: locale detection: %v", err)
	}

	// Untranslated catalogs fall through to the en-US template text.
	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From formats an en-US Sprintf template in the detected locale.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
