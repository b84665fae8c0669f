// Package judge turns an untrusted model judgment into a valid, numerically
// bounded debate scorecard. The model is treated as an unreliable oracle: its
// output is parsed strictly, sanitized, normalized, validated, and then the
// notable-move labels are overwritten so the distribution always matches the
// final winner.
package judge

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Side identifies a debating team.
type Side string

const (
	SideAffirmative Side = "affirmative"
	SideNegative    Side = "negative"
)

// Winner is the declared outcome of a round.
type Winner string

const (
	WinnerAffirmative Winner = "AFFIRMATIVE"
	WinnerNegative    Winner = "NEGATIVE"
	WinnerTie         Winner = "TIE"
)

// Valid reports whether w is a recognized outcome.
func (w Winner) Valid() bool {
	switch w {
	case WinnerAffirmative, WinnerNegative, WinnerTie:
		return true
	}
	return false
}

// Format is the debate format declared by the model.
type Format string

const (
	FormatPolicy         Format = "Policy"
	FormatBP             Format = "BP"
	FormatWSDC           Format = "WSDC"
	FormatLincolnDouglas Format = "Lincoln-Douglas"
	FormatOther          Format = "Other"
)

// Valid reports whether f is a recognized format.
func (f Format) Valid() bool {
	switch f {
	case FormatPolicy, FormatBP, FormatWSDC, FormatLincolnDouglas, FormatOther:
		return true
	}
	return false
}

// Label classifies a notable move.
type Label string

const (
	LabelBrilliant  Label = "brilliant"
	LabelGreat      Label = "great"
	LabelGood       Label = "good"
	LabelInaccuracy Label = "inaccuracy"
	LabelBlunder    Label = "blunder"
)

// Valid reports whether l is a recognized label.
func (l Label) Valid() bool {
	switch l {
	case LabelBrilliant, LabelGreat, LabelGood, LabelInaccuracy, LabelBlunder:
		return true
	}
	return false
}

// Positive reports whether l counts toward the winning side's majority.
func (l Label) Positive() bool { return l == LabelBrilliant || l == LabelGreat }

// Negative reports whether l counts toward the losing side's majority.
func (l Label) Negative() bool { return l == LabelInaccuracy || l == LabelBlunder }

// Slot is one of the four fixed speech slots a notable move is pinned to.
type Slot string

const (
	SlotFirst  Slot = "First Speech"
	SlotSecond Slot = "Second Speech"
	SlotThird  Slot = "Third Speech"
	SlotReply  Slot = "Reply"
)

// SpeechSlots lists the four slots in fixed order. Move times are always
// reassigned positionally from this list; ordering claimed by the model is
// discarded.
var SpeechSlots = [4]Slot{SlotFirst, SlotSecond, SlotThird, SlotReply}

// Number is a rubric score as produced by the model. It tolerates numbers
// encoded as JSON strings; any other shape decodes to NaN, which the
// sanitizer later replaces with the field's lower bound. Missing fields
// decode to zero, which is every field's lower bound already.
type Number float64

// UnmarshalJSON accepts a JSON number or a numeric string. Non-numeric
// values become NaN rather than a decode error so that a structurally sound
// response stays inside the sanitizer's jurisdiction.
func (n *Number) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		*n = Number(math.NaN())
		return nil
	}
	*n = Number(f)
	return nil
}

// MarshalJSON renders NaN as 0 so an unsanitized verdict still serializes.
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		f = 0
	}
	return json.Marshal(f)
}

// Rubric caps. Substantive speeches: Matter 40, Manner 30, Method 30.
// Reply caps are half because no new matter is permitted.
const (
	MaxSpeakerMatter = 40
	MaxSpeakerManner = 30
	MaxSpeakerMethod = 30
	MaxReplyMatter   = 20
	MaxReplyManner   = 15
	MaxReplyMethod   = 15

	// MaxSideTotal is 3 substantive speeches at 100 plus a reply at 50.
	MaxSideTotal = 350

	// ScaleDivisor maps a raw side total onto /100: 350 / 3.5 = 100.
	ScaleDivisor = 3.5

	MaxRationaleChars = 700
	MaxKeyClashes     = 6
	MovesPerSide      = 4
)

// SpeakerScore is the rubric breakdown of one substantive speech.
type SpeakerScore struct {
	Matter Number `json:"matter"`
	Manner Number `json:"manner"`
	Method Number `json:"method"`
	Notes  string `json:"notes"`
}

// ReplyScore is the rubric breakdown of the comparative closing speech.
type ReplyScore struct {
	Matter Number `json:"matter"`
	Manner Number `json:"manner"`
	Method Number `json:"method"`
	Notes  string `json:"notes"`
}

// SideScores holds all scored speeches for one side.
type SideScores struct {
	Speaker1 SpeakerScore `json:"speaker1"`
	Speaker2 SpeakerScore `json:"speaker2"`
	Speaker3 SpeakerScore `json:"speaker3"`
	Reply    ReplyScore   `json:"reply"`
}

// Scores holds both sides.
type Scores struct {
	Affirmative SideScores `json:"affirmative"`
	Negative    SideScores `json:"negative"`
}

// Meta describes the round as the model understood it.
type Meta struct {
	Format Format `json:"format"`
	Rules  string `json:"rules"`
}

// Rationale is the model's stated reasoning for the outcome.
type Rationale struct {
	Summary    string   `json:"summary"`
	WhyWinner  string   `json:"why_winner"`
	KeyClashes []string `json:"key_clashes"`
}

// Move is a labeled highlight of the round pinned to a speech slot.
type Move struct {
	Time        Slot   `json:"time"`
	Label       Label  `json:"label"`
	Explanation string `json:"explanation"`
}

// SideAnalysis is the narrative feedback for one side.
type SideAnalysis struct {
	Overview     string `json:"overview"`
	Improvements string `json:"improvements"`
	NotableMoves []Move `json:"notable_moves"`
}

// Analysis holds both sides' narrative feedback.
type Analysis struct {
	Affirmative SideAnalysis `json:"affirmative"`
	Negative    SideAnalysis `json:"negative"`
}

// Totals are the raw per-side sums (max 350 each).
type Totals struct {
	Affirmative int `json:"affirmative"`
	Negative    int `json:"negative"`
}

// Verdict is the complete scorecard for one judged round. It is built fresh
// per transcript, mutated only by the pipeline stages in order, and never
// persisted.
type Verdict struct {
	Meta           Meta      `json:"meta"`
	Scores         Scores    `json:"scores"`
	Winner         Winner    `json:"winner"`
	Rationale      Rationale `json:"rationale"`
	Analysis       Analysis  `json:"analysis"`
	Totals         Totals    `json:"totals"`
	FinalStatement string    `json:"final_statement"`
}

// SideAnalysisFor returns the analysis blob for side, for mutation.
func (v *Verdict) SideAnalysisFor(side Side) *SideAnalysis {
	if side == SideNegative {
		return &v.Analysis.Negative
	}
	return &v.Analysis.Affirmative
}

// Validate checks the verdict against the contract: enum membership, numeric
// bounds, rationale limits, and exactly four notable moves per side carrying
// the fixed slot names in order. It reports every violation it finds. The
// contract is never relaxed; callers get one repair attempt and a second
// failure is fatal.
func Validate(v *Verdict) error {
	var fields []string

	if !v.Meta.Format.Valid() {
		fields = append(fields, fmt.Sprintf("meta.format: %q not in enum", v.Meta.Format))
	}
	if !v.Winner.Valid() {
		fields = append(fields, fmt.Sprintf("winner: %q not in enum", v.Winner))
	}

	fields = append(fields, validateSideScores("scores.affirmative", &v.Scores.Affirmative)...)
	fields = append(fields, validateSideScores("scores.negative", &v.Scores.Negative)...)

	// Rationale limits are character counts, not byte counts.
	if n := utf8.RuneCountInString(v.Rationale.Summary); n > MaxRationaleChars {
		fields = append(fields, fmt.Sprintf("rationale.summary: %d chars exceeds %d", n, MaxRationaleChars))
	}
	if n := utf8.RuneCountInString(v.Rationale.WhyWinner); n > MaxRationaleChars {
		fields = append(fields, fmt.Sprintf("rationale.why_winner: %d chars exceeds %d", n, MaxRationaleChars))
	}
	if n := len(v.Rationale.KeyClashes); n > MaxKeyClashes {
		fields = append(fields, fmt.Sprintf("rationale.key_clashes: %d items exceeds %d", n, MaxKeyClashes))
	}

	fields = append(fields, validateSideAnalysis("analysis.affirmative", &v.Analysis.Affirmative)...)
	fields = append(fields, validateSideAnalysis("analysis.negative", &v.Analysis.Negative)...)

	if len(fields) > 0 {
		return &SchemaValidationError{Fields: fields}
	}
	return nil
}

func validateSideScores(path string, s *SideScores) []string {
	var fields []string
	speakers := []struct {
		name string
		sp   *SpeakerScore
	}{
		{"speaker1", &s.Speaker1},
		{"speaker2", &s.Speaker2},
		{"speaker3", &s.Speaker3},
	}
	for _, e := range speakers {
		fields = append(fields, checkRange(path+"."+e.name+".matter", e.sp.Matter, 0, MaxSpeakerMatter)...)
		fields = append(fields, checkRange(path+"."+e.name+".manner", e.sp.Manner, 0, MaxSpeakerManner)...)
		fields = append(fields, checkRange(path+"."+e.name+".method", e.sp.Method, 0, MaxSpeakerMethod)...)
	}
	fields = append(fields, checkRange(path+".reply.matter", s.Reply.Matter, 0, MaxReplyMatter)...)
	fields = append(fields, checkRange(path+".reply.manner", s.Reply.Manner, 0, MaxReplyManner)...)
	fields = append(fields, checkRange(path+".reply.method", s.Reply.Method, 0, MaxReplyMethod)...)
	return fields
}

func validateSideAnalysis(path string, a *SideAnalysis) []string {
	var fields []string
	if len(a.NotableMoves) != MovesPerSide {
		fields = append(fields, fmt.Sprintf("%s.notable_moves: %d moves, want %d", path, len(a.NotableMoves), MovesPerSide))
		return fields
	}
	for i, m := range a.NotableMoves {
		if m.Time != SpeechSlots[i] {
			fields = append(fields, fmt.Sprintf("%s.notable_moves[%d].time: %q, want %q", path, i, m.Time, SpeechSlots[i]))
		}
		if !m.Label.Valid() {
			fields = append(fields, fmt.Sprintf("%s.notable_moves[%d].label: %q not in enum", path, i, m.Label))
		}
	}
	return fields
}

func checkRange(path string, n Number, lo, hi float64) []string {
	f := float64(n)
	if math.IsNaN(f) || f < lo || f > hi {
		return []string{fmt.Sprintf("%s: %v outside [%v,%v]", path, f, lo, hi)}
	}
	return nil
}
