// Package nlp classifies free text as question or statement.
package nlp

import (
	"strings"

	prose "github.com/jdkato/prose/v2"
)

// interrogatives are words that mark a question when they open the sentence.
var interrogatives = map[string]struct{}{
	"who": {}, "what": {}, "when": {}, "where": {}, "why": {}, "how": {},
	"is": {}, "does": {}, "do": {}, "can": {}, "could": {}, "would": {},
	"should": {}, "will": {}, "are": {}, "was": {}, "were": {},
}

// auxiliaries are verb forms that signal subject-auxiliary inversion when
// they show up mid-sentence directly before a subject ("so can it fly").
var auxiliaries = map[string]struct{}{
	"is": {}, "am": {}, "are": {}, "was": {}, "were": {},
	"do": {}, "does": {}, "did": {},
	"have": {}, "has": {}, "had": {},
	"can": {}, "could": {}, "will": {}, "would": {},
	"shall": {}, "should": {}, "may": {}, "might": {}, "must": {},
}

// IsQuestion reports whether the input is phrased as a question.
// The input must contain at least one token; callers validate non-empty
// text before calling.
//
// Checks are applied in order, first hit wins: a leading interrogative
// word, a trailing question mark, then an auxiliary verb immediately
// preceding a subject (POS-tag approximation of the inverted
// aux-before-subject construction).
func IsQuestion(text string) bool {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return false
	}

	first := strings.ToLower(strings.TrimRight(fields[0], "?,.!"))
	if _, ok := interrogatives[first]; ok {
		return true
	}

	if strings.HasSuffix(strings.TrimSpace(text), "?") {
		return true
	}

	return hasInvertedAuxiliary(text)
}

// hasInvertedAuxiliary tags the sentence and looks for an auxiliary verb
// followed by a subject token (pronoun or noun, with an optional
// determiner in between).
func hasInvertedAuxiliary(text string) bool {
	doc, err := prose.NewDocument(text,
		prose.WithExtraction(false),
		prose.WithSegmentation(false))
	if err != nil {
		return false
	}

	toks := doc.Tokens()
	for i, tok := range toks {
		if !isAuxiliary(tok) {
			continue
		}
		j := i + 1
		if j < len(toks) && toks[j].Tag == "DT" {
			j++
		}
		if j < len(toks) && isSubject(toks[j]) {
			return true
		}
	}
	return false
}

func isAuxiliary(tok prose.Token) bool {
	if tok.Tag == "MD" {
		return true
	}
	if !strings.HasPrefix(tok.Tag, "VB") {
		return false
	}
	_, ok := auxiliaries[strings.ToLower(tok.Text)]
	return ok
}

func isSubject(tok prose.Token) bool {
	return tok.Tag == "PRP" || strings.HasPrefix(tok.Tag, "NN")
}
