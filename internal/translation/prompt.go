package translation

import (
	"fmt"
	"strings"
)

const (
	// SystemPrompt is sent as the system message of every completion request.
	SystemPrompt = "You are a professional human translator who preserves meaning, tone, and cultural nuance."

	closingClause = "Preserve meaning and cultural nuance. Do not explain the translation."

	// TextDelimiter wraps the source text in the composed prompt.
	TextDelimiter = `"""`
)

// modifierClause adds one instruction sentence when its option is set.
type modifierClause struct {
	name    string
	applies func(Options) bool
	render  func(Options) string
}

// modifierClauses are evaluated in this order; later clauses refine earlier ones.
var modifierClauses = []modifierClause{
	{
		name:    "dialect",
		applies: func(o Options) bool { return o.Dialect != "" },
		render:  func(o Options) string { return fmt.Sprintf("Use the %s dialect.", o.Dialect) },
	},
	{
		name:    "tone",
		applies: func(o Options) bool { return o.Tone != "" },
		render:  func(o Options) string { return fmt.Sprintf("The tone should be %s.", o.Tone) },
	},
	{
		name:    "plurality",
		applies: func(o Options) bool { return o.Plurality != "" },
		render:  func(o Options) string { return fmt.Sprintf("Ensure the translation is %s.", o.Plurality) },
	},
}

// Instructions returns the instruction clauses for req: the base clause, one
// clause per set modifier, and the closing clause.
func Instructions(req Request) []string {
	opts := req.opts()

	clauses := make([]string, 0, len(modifierClauses)+2)
	clauses = append(clauses, fmt.Sprintf("Translate the following text from %s to %s.", req.From, req.To))
	for _, c := range modifierClauses {
		if c.applies(opts) {
			clauses = append(clauses, c.render(opts))
		}
	}
	return append(clauses, closingClause)
}

// ComposePrompt builds the user message for req:
//
//	<instructions joined by spaces>
//	Text:
//	"""<text>"""
//
// The text is embedded verbatim. A text containing the delimiter itself is
// not escaped.
func ComposePrompt(req Request) string {
	var sb strings.Builder

	sb.WriteString(strings.Join(Instructions(req), " "))
	sb.WriteString("\nText:\n")
	sb.WriteString(TextDelimiter)
	sb.WriteString(req.Text)
	sb.WriteString(TextDelimiter)

	return sb.String()
}
