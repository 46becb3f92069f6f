package content

import "regexp"

// Cloze spans follow the Anki syntax {{c1::answer}} or {{c1::answer::hint}}
var clozePattern = regexp.MustCompile(`\{\{c(\d+)::([\s\S]*?)(?:::(.*?))?\}\}`)

// MaskCloze replaces every cloze span with a blank, producing the question side
func MaskCloze(text string) string {
	return clozePattern.ReplaceAllString(text, "___")
}

// RenderClozeAnswer reveals the hidden spans, emphasized for HTML display
func RenderClozeAnswer(text string) string {
	return clozePattern.ReplaceAllStringFunc(text, func(match string) string {
		groups := clozePattern.FindStringSubmatch(match)
		return "<b>" + groups[2] + "</b>"
	})
}

// HasCloze reports whether the text contains at least one cloze span
func HasCloze(text string) bool {
	return clozePattern.MatchString(text)
}
