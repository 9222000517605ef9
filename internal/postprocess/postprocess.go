// Package postprocess strips artifacts that chat models add around a
// translation. Cleaning is optional; it only runs when output cleanup is
// enabled.
package postprocess

import (
	"regexp"
	"strings"
)

// The user prompt ends with this scaffold around the source text. Models
// sometimes echo it back around the translation.
const (
	scaffoldLabel = "Text:"
	scaffoldFence = `"""`
)

type phase func(string) string

// phases run in order; each receives trimmed input.
var phases = []phase{
	dropReasoning,
	dropPreamble,
	dropScaffold,
	dropQuotes,
}

// Clean runs every phase and returns the trimmed result.
func Clean(text string) string {
	text = strings.TrimSpace(text)
	for _, p := range phases {
		text = strings.TrimSpace(p(text))
	}
	return text
}

var reasoningTags = []string{"think", "thinking", "reasoning"}

// reasoningRes match a closed block, or an unclosed one running to the end
// when the model was cut off. RE2 has no backreferences.
var reasoningRes = func() []*regexp.Regexp {
	var res []*regexp.Regexp
	for _, tag := range reasoningTags {
		res = append(res, regexp.MustCompile(`(?is)<`+tag+`>(?:.*?</`+tag+`>|.*$)`))
	}
	return res
}()

func dropReasoning(text string) string {
	for _, re := range reasoningRes {
		text = re.ReplaceAllString(text, "")
	}
	return text
}

// preambleRe matches a chatty lead-in such as "Sure, here's your
// translation:" or "Translation:" at the very start.
var preambleRe = regexp.MustCompile(
	`(?i)^(?:(?:certainly|sure|of course)[,.!]?\s+)?(?:here(?:'s| is)(?: the| your)? |the )?translation\s*:`,
)

func dropPreamble(text string) string {
	if loc := preambleRe.FindStringIndex(text); loc != nil {
		return text[loc[1]:]
	}
	return text
}

// dropScaffold undoes an echo of the prompt's tail: an optional "Text:"
// label followed by the fenced text.
func dropScaffold(text string) string {
	if len(text) >= len(scaffoldLabel) && strings.EqualFold(text[:len(scaffoldLabel)], scaffoldLabel) {
		text = strings.TrimSpace(text[len(scaffoldLabel):])
	}
	inner, ok := strings.CutPrefix(text, scaffoldFence)
	if !ok {
		return text
	}
	if inner, ok = strings.CutSuffix(inner, scaffoldFence); !ok {
		return text
	}
	return inner
}

// quotePairs maps an opening quote to the closing quotes that pair with it.
var quotePairs = map[rune]string{
	'"':  `"`,
	'\'': `'`,
	'«':  "»",
	'»':  "«",
	'“':  "”",
	'‘':  "’",
	'„':  "“”",
	'「':  "」",
}

// dropQuotes removes one pair of quotes wrapping the whole text.
func dropQuotes(text string) string {
	runes := []rune(text)
	if len(runes) < 2 {
		return text
	}
	closers, ok := quotePairs[runes[0]]
	if !ok || !strings.ContainsRune(closers, runes[len(runes)-1]) {
		return text
	}
	return string(runes[1 : len(runes)-1])
}
