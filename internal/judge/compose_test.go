package judge

import "testing"

func TestMarginLabel(t *testing.T) {
	tests := []struct {
		diff int
		want string
	}{
		{0, "very close"},
		{2, "very close"},
		{-2, "very close"},
		{3, "close but clear"},
		{5, "close but clear"},
		{6, "clear win"},
		{10, "clear win"},
		{11, "dominant win"},
		{20, "dominant win"},
		{21, "overwhelming win"},
		{-50, "overwhelming win"},
		{350, "overwhelming win"},
	}
	for _, tt := range tests {
		if got := MarginLabel(tt.diff); got != tt.want {
			t.Errorf("MarginLabel(%d) = %q, want %q", tt.diff, got, tt.want)
		}
	}
}

func TestComposeFinalStatement(t *testing.T) {
	tests := []struct {
		name     string
		aff, neg int
		want     string
	}{
		{
			"zero tie",
			0, 0,
			"The round is a TIE. Final (/100): AFF 0.0 - NEG 0.0.",
		},
		{
			"equal nonzero tie",
			200, 200,
			"The round is a TIE. Final (/100): AFF 57.1 - NEG 57.1.",
		},
		{
			"affirmative overwhelming",
			300, 250,
			"Congratulations, Team AFFIRMATIVE! You win by 14.3 points (overwhelming win). Final (/100): AFF 85.7 - NEG 71.4.",
		},
		{
			"negative narrow",
			298, 300,
			"Congratulations, Team NEGATIVE! You win by 0.6 points (very close). Final (/100): AFF 85.1 - NEG 85.7.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &Verdict{Totals: Totals{Affirmative: tt.aff, Negative: tt.neg}}
			ComposeFinalStatement(v)
			if v.FinalStatement != tt.want {
				t.Errorf("FinalStatement =\n  %q\nwant\n  %q", v.FinalStatement, tt.want)
			}
		})
	}
}
