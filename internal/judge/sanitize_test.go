package judge

import (
	"math"
	"testing"
)

func TestSanitizeClampsToRubricCaps(t *testing.T) {
	v := validVerdict()
	v.Scores.Affirmative.Speaker1.Matter = 999
	v.Scores.Affirmative.Speaker1.Manner = -5
	v.Scores.Affirmative.Reply.Matter = 50
	v.Scores.Negative.Speaker2.Method = Number(math.NaN())

	Sanitize(v)

	if got := float64(v.Scores.Affirmative.Speaker1.Matter); got != MaxSpeakerMatter {
		t.Errorf("overrange matter = %v, want %v", got, MaxSpeakerMatter)
	}
	if got := float64(v.Scores.Affirmative.Speaker1.Manner); got != 0 {
		t.Errorf("negative manner = %v, want 0", got)
	}
	if got := float64(v.Scores.Affirmative.Reply.Matter); got != MaxReplyMatter {
		t.Errorf("overrange reply matter = %v, want %v", got, MaxReplyMatter)
	}
	if got := float64(v.Scores.Negative.Speaker2.Method); got != 0 {
		t.Errorf("NaN method = %v, want 0 (lower bound)", got)
	}
}

func TestSanitizeTruncatesToWholePoints(t *testing.T) {
	v := validVerdict()
	v.Scores.Affirmative.Speaker1.Matter = 35.9
	v.Scores.Negative.Reply.Manner = 12.2

	Sanitize(v)

	if got := float64(v.Scores.Affirmative.Speaker1.Matter); got != 35 {
		t.Errorf("matter = %v, want 35", got)
	}
	if got := float64(v.Scores.Negative.Reply.Manner); got != 12 {
		t.Errorf("reply manner = %v, want 12", got)
	}
}

func TestSanitizeLeavesInRangeScoresAlone(t *testing.T) {
	v := validVerdict()
	before := v.Scores
	Sanitize(v)
	if v.Scores != before {
		t.Errorf("in-range scores changed: %+v -> %+v", before, v.Scores)
	}
}

func TestSanitizedVerdictPassesRangeValidation(t *testing.T) {
	v := validVerdict()
	v.Scores.Affirmative.Speaker1.Matter = 12345
	v.Scores.Negative.Speaker3.Method = Number(math.NaN())
	v.Scores.Negative.Reply.Method = -99

	Sanitize(v)

	if err := Validate(v); err != nil {
		t.Errorf("Validate() after Sanitize = %v, want nil", err)
	}
}
