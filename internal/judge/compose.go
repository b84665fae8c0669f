package judge

import (
	"fmt"
	"math"
	"strconv"
)

// MarginLabel classifies the absolute raw point difference between the sides.
func MarginLabel(diff int) string {
	d := diff
	if d < 0 {
		d = -d
	}
	switch {
	case d <= 2:
		return "very close"
	case d <= 5:
		return "close but clear"
	case d <= 10:
		return "clear win"
	case d <= 20:
		return "dominant win"
	default:
		return "overwhelming win"
	}
}

// ComposeFinalStatement derives the human-readable outcome sentence from the
// raw totals. Equal totals yield the TIE sentence; otherwise the winner, the
// scaled point gap, and the margin classification.
func ComposeFinalStatement(v *Verdict) {
	affScaled := ScaleTo100(v.Totals.Affirmative)
	negScaled := ScaleTo100(v.Totals.Negative)
	diffRaw := v.Totals.Affirmative - v.Totals.Negative

	if diffRaw == 0 {
		v.FinalStatement = fmt.Sprintf("The round is a TIE. Final (/100): AFF %s - NEG %s.",
			formatScaled(affScaled), formatScaled(negScaled))
		return
	}

	winner := WinnerAffirmative
	if diffRaw < 0 {
		winner = WinnerNegative
	}
	gap := round1(math.Abs(affScaled - negScaled))
	v.FinalStatement = fmt.Sprintf("Congratulations, Team %s! You win by %s points (%s). Final (/100): AFF %s - NEG %s.",
		winner, formatScaled(gap), MarginLabel(diffRaw), formatScaled(affScaled), formatScaled(negScaled))
}

// formatScaled renders a /100 score with one decimal place ("0.0", "85.7").
func formatScaled(f float64) string {
	return strconv.FormatFloat(f, 'f', 1, 64)
}
