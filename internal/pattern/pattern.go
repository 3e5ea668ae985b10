// Package pattern recognizes translatable text in single lines of game data.
// Recognition is purely pattern based: a fixed, ordered rule table applied to
// every line, with no knowledge of the surrounding file format.
package pattern

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// rules is the fixed recognition table. Every rule scans the whole line
// independently; a span matched by several rules is reported once per rule.
var rules = []*regexp.Regexp{
	regexp.MustCompile(`"([^"\\]*(\\.[^"\\]*)*)"`),       // double-quoted literal, escape-aware
	regexp.MustCompile(`'([^'\\]*(\\.[^'\\]*)*)'`),       // single-quoted literal, escape-aware
	regexp.MustCompile(`text\s*[:=]\s*["']([^"']+)["']`), // text: "value" / text = 'value'
	regexp.MustCompile(`label\s*[:=]\s*["']([^"']+)["']`),
	regexp.MustCompile(`message\s*[:=]\s*["']([^"']+)["']`),
	regexp.MustCompile(`<text>([^<]+)</text>`),
	regexp.MustCompile(`<string>([^<]+)</string>`),
}

// Match is one recognized occurrence on a line.
type Match struct {
	// Text is the cleaned capture: escape sequences resolved, whitespace
	// trimmed. This is the translatable payload.
	Text string
	// Original is the full matched span including quotes or tags, needed
	// for any later verbatim replacement.
	Original string
}

// Matcher applies the rule table with a minimum-length acceptance gate.
type Matcher struct {
	minLength int
}

// NewMatcher creates a Matcher. Captures shorter than minLength characters
// are discarded; this is the only semantic filter in the component.
func NewMatcher(minLength int) *Matcher {
	return &Matcher{minLength: minLength}
}

// MatchLine returns all rule matches on a single line, in rule order.
func (m *Matcher) MatchLine(line string) []Match {
	var matches []Match

	for _, rule := range rules {
		for _, sm := range rule.FindAllStringSubmatch(line, -1) {
			text := Clean(sm[1])
			if utf8.RuneCountInString(text) < m.minLength {
				continue
			}
			matches = append(matches, Match{
				Text:     text,
				Original: sm[0],
			})
		}
	}

	return matches
}

var unescaper = strings.NewReplacer(
	`\n`, "\n",
	`\t`, "\t",
	`\r`, "\r",
	`\"`, `"`,
	`\'`, `'`,
	`\\`, `\`,
)

// Clean resolves the common escape sequences found in quoted game strings
// and trims surrounding whitespace.
func Clean(text string) string {
	return strings.TrimSpace(unescaper.Replace(text))
}
