package snapshot

import (
	"fmt"
	"strings"
	"unicode"
)

const forbiddenChars = `()/\:*?"<>|`

// Filename derives the document name for the counter-th snapshot taken
// in suite/test, e.g. "LoginTests-testSignIn-0.json".
func Filename(suite, test string, counter int) string {
	name := fmt.Sprintf("%s-%s-%d", suite, test, counter)
	name = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || strings.ContainsRune(forbiddenChars, r) {
			return -1
		}
		if r == '_' {
			return '-'
		}
		return r
	}, name)
	return name + ".json"
}

// Namer hands out filenames, numbering repeated snapshots within the
// same suite and test. The counter restarts whenever the pair changes.
type Namer struct {
	suite   string
	test    string
	counter int
	used    bool
}

// Next returns the filename for the next snapshot of suite/test.
func (n *Namer) Next(suite, test string) string {
	if n.used && n.suite == suite && n.test == test {
		n.counter++
	} else {
		n.suite, n.test, n.counter, n.used = suite, test, 0, true
	}
	return Filename(suite, test, n.counter)
}
