package game

import (
	"regexp"
	"strings"
)

var (
	guessPhrasePattern = regexp.MustCompile(`^(?:i guess|my guess is)\s+(.+)$`)
	isItPattern        = regexp.MustCompile(`^is (?:it|this|that)\s+(?:(?:a|an|the)\s+)?([\w\s-]{1,20})$`)
)

// MatchGuess parses lowercased, trimmed user input against the guess
// phrasings and extracts the candidate object name. A trailing question mark
// is stripped before matching.
//
// "is it X" counts as a guess only when X is at most two words; longer
// captures are ordinary property questions ("is it made of wood" must not be
// read as a guess for "wood").
func MatchGuess(text string) (candidate string, ok bool) {
	text = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), "?"))

	if m := guessPhrasePattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), true
	}

	if m := isItPattern.FindStringSubmatch(text); m != nil {
		c := strings.TrimSpace(m[1])
		if len(strings.Fields(c)) <= 2 {
			return c, true
		}
	}

	return "", false
}

// GuessMatches reports whether a guessed candidate names the secret object.
// Matching is a case-insensitive exact comparison; substring containment is
// deliberately not used (secret "cat" must not match guess "category").
func GuessMatches(candidate, secretObject string) bool {
	return strings.EqualFold(strings.TrimSpace(candidate), strings.TrimSpace(secretObject))
}
