// Package catalog lists the modifier values offered to clients: suggested
// dialects plus the tone and plurality choices.
package catalog

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/valpere/promptran/internal/translation"
)

type Dialect struct {
	// Name is the value sent as options.dialect.
	Name string `json:"name"`
	// Tag is the BCP 47 tag, empty when no region subtag fits.
	Tag string `json:"tag,omitempty"`
	// Native is the dialect's own name for its language, when known.
	Native string `json:"native,omitempty"`
	// English is the English display name of the tag, when known.
	English string `json:"english,omitempty"`
}

type Catalog struct {
	Dialects    []Dialect               `json:"dialects"`
	Tones       []translation.Tone      `json:"tones"`
	Pluralities []translation.Plurality `json:"pluralities"`
}

// Caribbean Spanish spans several regions and has no single tag.
var dialects = []struct {
	name string
	tag  string
}{
	{"Spanish (Spain)", "es-ES"},
	{"Spanish (Caribbean)", ""},
	{"Mexican Spanish", "es-MX"},
	{"Argentinian Spanish", "es-AR"},
	{"Colombian Spanish", "es-CO"},
	{"Jamaican Patois", "jam"},
}

// Default returns the built-in catalogue. Dialects are suggestions only; any
// dialect string is accepted in a request.
func Default() Catalog {
	english := display.English.Tags()

	c := Catalog{
		Dialects:    make([]Dialect, 0, len(dialects)),
		Tones:       []translation.Tone{translation.ToneFormal, translation.ToneInformal},
		Pluralities: []translation.Plurality{translation.PluralitySingular, translation.PluralityPlural},
	}
	for _, d := range dialects {
		entry := Dialect{Name: d.name}
		if d.tag != "" {
			tag := language.MustParse(d.tag)
			entry.Tag = tag.String()
			entry.Native = display.Self.Name(tag)
			entry.English = english.Name(tag)
		}
		c.Dialects = append(c.Dialects, entry)
	}
	return c
}

// Lookup finds a dialect by its exact name or BCP 47 tag. Tags match
// case-insensitively after canonicalization.
func (c Catalog) Lookup(nameOrTag string) (Dialect, bool) {
	for _, d := range c.Dialects {
		if d.Name == nameOrTag {
			return d, true
		}
	}
	tag, err := language.Parse(nameOrTag)
	if err != nil {
		return Dialect{}, false
	}
	for _, d := range c.Dialects {
		if d.Tag != "" && d.Tag == tag.String() {
			return d, true
		}
	}
	return Dialect{}, false
}
