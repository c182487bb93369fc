package util

import (
	"regexp"
	"strings"
)

var commaSeparator = regexp.MustCompile(`\s*,\s*`)
var lineBreaks = regexp.MustCompile(`\r?\n`)

// SplitList takes a comma-separated list and returns the non-empty values without surrounding blanks
func SplitList(s string) []string {
	res := make([]string, 0)
	for _, v := range commaSeparator.Split(strings.TrimSpace(s), -1) {
		if v != "" {
			res = append(res, v)
		}
	}
	return res
}

// Wrap inserts a newline after every width characters (not bytes). A width of zero or less
// returns the text unchanged.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	res := &strings.Builder{}
	res.Grow(len(text) + len(text)/width + 1)
	n := 0
	for _, r := range text {
		if n == width {
			res.WriteByte('\n')
			n = 0
		}
		res.WriteRune(r)
		n++
	}
	return res.String()
}

// Unwrap removes the line breaks added by Wrap, including Windows-style ones
func Unwrap(text string) string {
	return lineBreaks.ReplaceAllString(text, "")
}
