package judge

import "math"

// speakerTotal sums one substantive speech (max 100).
func speakerTotal(s *SpeakerScore) int {
	return int(s.Matter) + int(s.Manner) + int(s.Method)
}

// replyTotal sums the reply speech (max 50).
func replyTotal(r *ReplyScore) int {
	return int(r.Matter) + int(r.Manner) + int(r.Method)
}

func sideTotal(s *SideScores) int {
	return speakerTotal(&s.Speaker1) +
		speakerTotal(&s.Speaker2) +
		speakerTotal(&s.Speaker3) +
		replyTotal(&s.Reply)
}

// ComputeTotals returns the raw per-side sums. Call after Sanitize so every
// component is already within its rubric cap.
func ComputeTotals(v *Verdict) Totals {
	return Totals{
		Affirmative: sideTotal(&v.Scores.Affirmative),
		Negative:    sideTotal(&v.Scores.Negative),
	}
}

// ScaleTo100 maps a raw side total onto /100 with one decimal: 350/3.5 = 100.
func ScaleTo100(raw int) float64 {
	return round1(float64(raw) / ScaleDivisor)
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}

// ApplyTotals stores the raw totals on the verdict and resolves a declared
// TIE against them: if the totals differ by at least one point the winner is
// overridden to the higher side. Exact equality is the only condition under
// which a TIE survives.
func ApplyTotals(v *Verdict) {
	v.Totals = ComputeTotals(v)
	if v.Winner != WinnerTie {
		return
	}
	diff := v.Totals.Affirmative - v.Totals.Negative
	switch {
	case diff >= 1:
		v.Winner = WinnerAffirmative
	case diff <= -1:
		v.Winner = WinnerNegative
	}
}
