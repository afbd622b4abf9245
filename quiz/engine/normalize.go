package engine

import (
	"regexp"
	"strings"
)

// bracketed matches annotation substrings like "[a hint]", non-greedy so
// multiple occurrences are stripped independently.
var bracketed = regexp.MustCompile(`\[.*?\]`)

// asciiPunctuation mirrors the punctuation set removed by answer authors'
// original tooling; only ASCII punctuation is stripped.
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Normalize prepares text for answer comparison: bracketed annotations are
// removed, the result is trimmed and lowercased, punctuation is dropped and
// whitespace runs collapse to single spaces.
func Normalize(text string) string {
	text = bracketed.ReplaceAllString(text, "")
	text = strings.TrimSpace(text)
	text = strings.ToLower(text)
	text = strings.Map(func(r rune) rune {
		if strings.ContainsRune(asciiPunctuation, r) {
			return -1
		}
		return r
	}, text)
	return strings.Join(strings.Fields(text), " ")
}

// AnswerMatches reports whether a submitted answer counts as correct:
// the normalized submission must start with the normalized canonical
// answer, tolerating trailing filler text from the user.
func AnswerMatches(canonical, submitted string) bool {
	return strings.HasPrefix(Normalize(submitted), Normalize(canonical))
}
