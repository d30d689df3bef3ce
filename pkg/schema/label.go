package schema

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Nicify turns a Go identifier into a display label:
// "MaxSpeed" -> "Max Speed", "HTTPPort" -> "HTTP Port", "max_speed" -> "Max Speed".
func Nicify(name string) string {
	words := splitWords(name)
	if len(words) == 0 {
		return name
	}
	caser := cases.Title(language.Und, cases.NoLower)
	for i, w := range words {
		words[i] = caser.String(w)
	}
	return strings.Join(words, " ")
}

func splitWords(name string) []string {
	var words []string
	runes := []rune(name)
	start := -1
	flush := func(end int) {
		if start >= 0 && end > start {
			words = append(words, string(runes[start:end]))
		}
		start = -1
	}
	for i, r := range runes {
		if r == '_' || r == '-' || unicode.IsSpace(r) {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
			continue
		}
		prev := runes[i-1]
		switch {
		case unicode.IsUpper(r) && unicode.IsLower(prev):
			// fooBar
			flush(i)
			start = i
		case unicode.IsUpper(r) && unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
			// HTTPPort: split before the P of Port
			flush(i)
			start = i
		case unicode.IsDigit(r) && unicode.IsLetter(prev):
			// Item2
			flush(i)
			start = i
		}
	}
	flush(len(runes))
	return words
}
