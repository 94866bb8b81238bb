package board

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML replaces the characters &, <, >, " and ' with their entities.
// It is the only sanitization applied to text coming from the activities API.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
