// Package textutil holds the text helpers used when storing and displaying articles.
package textutil

import (
	"html"
	"html/template"
	"regexp"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/microcosm-cc/bluemonday"
)

// DisplayLayout: формат даты в списке статей автора.
const DisplayLayout = "02/01/2006, 15:04:05"

const ellipsis = "..."

var strictPolicy = bluemonday.StrictPolicy()

// blockTag matches tags that start a new line in the rendered body. Inline tags (b, strong, sub,
// a, ...) are not listed: "<b>Bold</b>face" must stay one word.
var blockTag = regexp.MustCompile(`(?i)</?(?:p|div|br|hr|li|ul|ol|h[1-6]|blockquote|pre|table|tr|td|th)\b[^>]*>`)

// StripAndShorten returns the plain text of an HTML fragment, whitespace collapsed and cut
// to limit runes (with a trailing ellipsis). A limit <= 0 keeps the whole text.
func StripAndShorten(body string, limit int) string {
	// bluemonday оставляет сущности экранированными (&amp;), раскрываем их обратно
	// "<p>a</p><p>b</p>" -> "a b", а не "ab"
	spaced := blockTag.ReplaceAllString(body, " $0 ")
	plain := html.UnescapeString(strictPolicy.Sanitize(spaced))
	plain = strings.Join(strings.Fields(plain), " ")
	if limit <= 0 {
		return plain
	}
	runes := []rune(plain)
	if len(runes) <= limit {
		return plain
	}
	return strings.TrimRight(string(runes[:limit]), " ") + ellipsis
}

// LocalDatetime converts a stored UTC timestamp to the display zone.
func LocalDatetime(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(DisplayLayout)
}

// LineBreak escapes s and turns its first ", " into a <br> so date and time render on two lines.
func LineBreak(s string) template.HTML {
	escaped := template.HTMLEscapeString(s)
	return template.HTML(strings.Replace(escaped, ", ", "<br>", 1))
}

// RelativeTime renders t relative to now, e.g. "3 hours ago".
func RelativeTime(t, now time.Time) string {
	return humanize.RelTime(t, now, "ago", "from now")
}
