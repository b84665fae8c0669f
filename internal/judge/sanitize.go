package judge

import "math"

// Sanitize coerces every rubric score into its declared bounds, in place.
// Values that failed numeric coercion (NaN) become the lower bound, then
// everything is clamped to [lo,hi] and truncated to whole points. Missing
// fields are already zero. Sanitization never fails; no field is rejected
// outright at this stage.
func Sanitize(v *Verdict) {
	sanitizeSide(&v.Scores.Affirmative)
	sanitizeSide(&v.Scores.Negative)
}

func sanitizeSide(s *SideScores) {
	for _, sp := range []*SpeakerScore{&s.Speaker1, &s.Speaker2, &s.Speaker3} {
		sp.Matter = clamp(sp.Matter, 0, MaxSpeakerMatter)
		sp.Manner = clamp(sp.Manner, 0, MaxSpeakerManner)
		sp.Method = clamp(sp.Method, 0, MaxSpeakerMethod)
	}
	s.Reply.Matter = clamp(s.Reply.Matter, 0, MaxReplyMatter)
	s.Reply.Manner = clamp(s.Reply.Manner, 0, MaxReplyManner)
	s.Reply.Method = clamp(s.Reply.Method, 0, MaxReplyMethod)
}

func clamp(n Number, lo, hi float64) Number {
	f := float64(n)
	if math.IsNaN(f) {
		return Number(lo)
	}
	f = math.Max(lo, math.Min(hi, f))
	return Number(math.Trunc(f))
}
