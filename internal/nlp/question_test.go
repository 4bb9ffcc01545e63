package nlp

import "testing"

func TestIsQuestion(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  bool
	}{
		{"what color is it?", true},
		{"can it fly", true},
		{"is it round", true},
		{"does it have wheels", true},
		{"tell me, could it be alive", true},
		{"it is blue, right?", true},
		{"the cat sat", false},
		{"umbrella", false},
		{"i like trains", false},
	}

	for _, tc := range cases {
		if got := IsQuestion(tc.input); got != tc.want {
			t.Errorf("IsQuestion(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestIsQuestionLeadingInterrogativeBeatsParse(t *testing.T) {
	t.Parallel()

	// First-token check must fire without needing the tagger.
	for _, input := range []string{"who took it", "How big", "WILL it break"} {
		if !IsQuestion(input) {
			t.Errorf("IsQuestion(%q) = false, want true", input)
		}
	}
}
