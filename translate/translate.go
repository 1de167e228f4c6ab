// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package translate formats messages for the user's language.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DEFAULT_LANGUAGE is used when the environment names no locale.
const DEFAULT_LANGUAGE = "en-US"

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("optrans: locale: %v", err)
	}

	Use(locales...)
}

// Use selects the best matching language from a list of BCP 47 locales.
// An empty list selects DEFAULT_LANGUAGE.
func Use(locales ...string) (tag language.Tag) {
	if len(locales) == 0 {
		locales = []string{DEFAULT_LANGUAGE}
	}

	tag = message.MatchLanguage(locales...)
	printer = message.NewPrinter(tag)

	return
}

// From formats an en-US Sprintf() style key in the selected language.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
