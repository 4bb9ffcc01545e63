package game

import "testing"

func TestMatchGuess(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input         string
		wantCandidate string
		wantOK        bool
	}{
		{"i guess umbrella", "umbrella", true},
		{"i guess umbrella?", "umbrella", true},
		{"my guess is eiffel tower", "eiffel tower", true},
		{"is it a cat", "cat", true},
		{"is it an umbrella?", "umbrella", true},
		{"is this the eiffel tower", "eiffel tower", true},
		{"is that superman", "superman", true},
		// Longer captures are property questions, not guesses.
		{"is it made of wood", "", false},
		{"is it used in the rain", "", false},
		// Ordinary questions.
		{"can it fly", "", false},
		{"does it have wheels?", "", false},
		{"what color is it", "", false},
	}

	for _, tc := range cases {
		candidate, ok := MatchGuess(tc.input)
		if ok != tc.wantOK || candidate != tc.wantCandidate {
			t.Errorf("MatchGuess(%q) = (%q, %v), want (%q, %v)",
				tc.input, candidate, ok, tc.wantCandidate, tc.wantOK)
		}
	}
}

func TestGuessMatchesExact(t *testing.T) {
	t.Parallel()

	if !GuessMatches("Umbrella", "umbrella") {
		t.Error("expected case-insensitive match")
	}
	if GuessMatches("umbrellas", "umbrella") {
		t.Error("plural must not match")
	}
	if GuessMatches("category", "cat") {
		t.Error("substring containment must not match")
	}
	if !GuessMatches(" cat ", "cat") {
		t.Error("surrounding whitespace should be ignored")
	}
}
