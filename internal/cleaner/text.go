// Package cleaner provides text cleanup for award titles and abstracts.
//
// NSF export abstracts carry HTML markup (<br/>, entities) and a statutory
// boilerplate trailer; both must be removed before abstracts are used as
// grouping keys or counted.
package cleaner

import (
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"
	"golang.org/x/net/html"
)

// Cleaner strips markup and boilerplate from text fields.
type Cleaner struct {
	boilerplate []string
}

// NewCleaner creates a cleaner that removes the given boilerplate phrases.
func NewCleaner(boilerplate []string) *Cleaner {
	return &Cleaner{boilerplate: boilerplate}
}

// Clean strips markup, removes boilerplate phrases, and normalizes
// whitespace.
func (c *Cleaner) Clean(s string) string {
	s = StripMarkup(s)

	for _, phrase := range c.boilerplate {
		s = strings.ReplaceAll(s, phrase, " ")
	}

	return NormalizeSpace(s)
}

// StripMarkup removes HTML tags and decodes entities, keeping only text
// content. Tags become single spaces so "<br/>" does not glue words together.
func StripMarkup(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}

	var b strings.Builder

	tokenizer := html.NewTokenizer(strings.NewReader(s))

	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			// io.EOF for well-formed fragments; anything else means the
			// tokenizer gave up, so fall back to what was collected.
			break
		}

		switch tt {
		case html.TextToken:
			b.Write(tokenizer.Text())
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			b.WriteByte(' ')
		}
	}

	return b.String()
}

// NormalizeSpace collapses runs of whitespace into single spaces and trims
// the ends.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// WordCount counts wordlike tokens (containing at least one letter or digit)
// using Unicode word segmentation.
func WordCount(s string) int {
	count := 0

	tokens := words.FromString(s)
	for tokens.Next() {
		if isWordlike(tokens.Value()) {
			count++
		}
	}

	return count
}

func isWordlike(token string) bool {
	for _, r := range token {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}

	return false
}
