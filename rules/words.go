package rules

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ContainsWords returns the words from list found in text, in list order.
// Matching is case-insensitive and respects word boundaries: a word edge
// made of a letter or digit must not touch another letter or digit in
// text. Separator tokens such as "-" therefore match anywhere.
func ContainsWords(text string, words []string) []string {
	folded := fold(text)
	var found []string
	for _, w := range words {
		if containsWord(folded, fold(w)) {
			found = append(found, w)
		}
	}
	return found
}

// containsFold reports whether substr occurs in s ignoring case.
func containsFold(s, substr string) bool {
	return strings.Contains(fold(s), fold(substr))
}

// isUppercased reports whether s has cased letters and all of them are
// upper case.
func isUppercased(s string) bool {
	if caseString(&upperers, s) != s {
		return false
	}
	for _, r := range s {
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			return true
		}
	}
	return false
}

// startsUppercase reports whether the first rune of s is upper case.
func startsUppercase(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r) || unicode.IsTitle(r)
}

// runeCount counts characters the way a reader would, not bytes.
func runeCount(s string) int {
	return utf8.RuneCountInString(s)
}

// cases.Caser is stateful; each call borrows one from a pool.
var (
	folders  = sync.Pool{New: func() any { return cases.Fold() }}
	upperers = sync.Pool{New: func() any { return cases.Upper(language.Und) }}
)

func caseString(pool *sync.Pool, s string) string {
	c := pool.Get().(cases.Caser)
	defer pool.Put(c)
	return c.String(s)
}

func fold(s string) string {
	return caseString(&folders, s)
}

func containsWord(text, word string) bool {
	if word == "" {
		return false
	}
	first, _ := utf8.DecodeRuneInString(word)
	last, _ := utf8.DecodeLastRuneInString(word)
	checkStart := isWordRune(first)
	checkEnd := isWordRune(last)

	offset := 0
	for offset <= len(text) {
		i := strings.Index(text[offset:], word)
		if i < 0 {
			return false
		}
		start := offset + i
		end := start + len(word)
		startOK := !checkStart || !wordRuneBefore(text, start)
		endOK := !checkEnd || !wordRuneAfter(text, end)
		if startOK && endOK {
			return true
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		offset = start + size
	}
	return false
}

func wordRuneBefore(s string, i int) bool {
	if i == 0 {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return isWordRune(r)
}

func wordRuneAfter(s string, i int) bool {
	if i >= len(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
