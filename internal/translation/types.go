// Package translation turns a translation request into an LLM instruction
// prompt, sends it to a completion client, and maps the answer back into a
// result.
package translation

type Tone string

const (
	ToneFormal   Tone = "formal"
	ToneInformal Tone = "informal"
)

type Plurality string

const (
	PluralitySingular Plurality = "singular"
	PluralityPlural   Plurality = "plural"
)

// Options are optional stylistic modifiers. Each non-empty field adds one
// instruction clause to the prompt; values are used verbatim.
type Options struct {
	Dialect   string    `json:"dialect,omitempty"`
	Tone      Tone      `json:"tone,omitempty"`
	Plurality Plurality `json:"plurality,omitempty"`
}

type Request struct {
	Text    string   `json:"text"`
	From    string   `json:"from"`
	To      string   `json:"to"`
	Options *Options `json:"options,omitempty"`
}

// opts returns the request options, or the zero value when none were sent.
func (r Request) opts() Options {
	if r.Options == nil {
		return Options{}
	}
	return *r.Options
}

// Result holds either a translation or an error message, never both.
type Result struct {
	Translation string `json:"translation,omitempty"`
	Error       string `json:"error,omitempty"`
}
