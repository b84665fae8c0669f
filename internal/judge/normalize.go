package judge

import (
	"fmt"
	"strings"
)

// Minimum narrative richness guaranteed per side regardless of how terse the
// model was: four sentences of overview and improvements, two per move
// explanation.
const (
	minNarrativeSentences = 4
	minMoveSentences      = 2
)

// defaultMoveSeed seeds padded moves and empty explanations.
const defaultMoveSeed = "A generally solid contribution with clear structure and relevance."

// fillerSentences are appended, in order, to narrative text that falls short
// of the sentence minimum.
var fillerSentences = []string{
	"They framed the weighing early and attempted to collapse the round onto the decisive clashes.",
	"Comparative analysis connected claims to explicit impacts, although some links could be clearer.",
	"Time allocation and signposting generally supported flow and judge comprehension.",
}

// elaborations are the fixed label-specific clauses appended to every move
// explanation.
var elaborations = map[Label]string{
	LabelBrilliant:  " It combined clean warranting with timing that flipped a contested issue. The downstream impact shaped the judge's weighing.",
	LabelGreat:      " It advanced the team's win condition with precise comparative work. The explanation connected claim to impact without new matter.",
	LabelGood:       " Solid structure and relevance maintained flow control. A clearer explicit impact link could make it round-deciding.",
	LabelInaccuracy: " A factual/comparative slip reduced credibility and opened room for opponent leverage. Correct sourcing and line-by-line precision would fix this.",
	LabelBlunder:    " Dropping or mishandling a critical line ceded weighing to the opponent. Always address the win-condition clash before extending new material.",
}

// NormalizeAnalysis guarantees narrative richness for both sides: overview
// and improvements reach the sentence minimum (falling back to deterministic
// paragraphs when empty), move labels collapse to the enum, explanations are
// elaborated, and the move list becomes exactly four entries pinned to the
// fixed speech slots.
func NormalizeAnalysis(v *Verdict) {
	for _, side := range []Side{SideAffirmative, SideNegative} {
		a := v.SideAnalysisFor(side)
		name := strings.ToUpper(string(side))

		ov := strings.TrimSpace(a.Overview)
		if ov == "" {
			ov = overviewFallback(name)
		}
		a.Overview = ensureMinSentences(ov, minNarrativeSentences)

		imp := strings.TrimSpace(a.Improvements)
		if imp == "" {
			imp = improvementsFallback(name)
		}
		a.Improvements = ensureMinSentences(imp, minNarrativeSentences)

		norm := make([]Move, 0, MovesPerSide)
		for _, m := range a.NotableMoves {
			label := Label(strings.ToLower(strings.TrimSpace(string(m.Label))))
			if !label.Valid() {
				label = LabelGood
			}
			norm = append(norm, Move{
				Time:        Slot(strings.TrimSpace(string(m.Time))),
				Label:       label,
				Explanation: ExpandMove(label, strings.TrimSpace(m.Explanation)),
			})
		}
		for len(norm) < MovesPerSide {
			norm = append(norm, Move{
				Label:       LabelGood,
				Explanation: ExpandMove(LabelGood, defaultMoveSeed),
			})
		}
		a.NotableMoves = assignSlots(norm)
	}
}

// assignSlots pads or truncates moves to exactly four entries and overwrites
// each Time positionally with the fixed slot names. Whatever ordering or
// timing the model claimed is discarded, not trusted.
func assignSlots(moves []Move) []Move {
	for len(moves) < MovesPerSide {
		moves = append(moves, Move{
			Label:       LabelGood,
			Explanation: defaultMoveSeed,
		})
	}
	if len(moves) > MovesPerSide {
		moves = moves[:MovesPerSide]
	}
	for i := range moves {
		moves[i].Time = SpeechSlots[i]
	}
	return moves
}

// ExpandMove appends the label-specific elaboration clause to seed and
// re-applies the two-sentence minimum. An empty seed gets a neutral opener.
func ExpandMove(label Label, seed string) string {
	if seed == "" {
		seed = "A notable contribution occurred at a pivotal moment."
	}
	extra, ok := elaborations[label]
	if !ok {
		extra = elaborations[LabelGood]
	}
	return ensureMinSentences(seed+extra, minMoveSentences)
}

// ensureMinSentences counts sentence-terminal punctuation delimiting
// non-empty segments and appends filler sentences until min is met or the
// filler pool runs out.
func ensureMinSentences(text string, min int) string {
	t := strings.TrimSpace(text)
	count := countSentences(t)
	for i := 0; count < min && i < len(fillerSentences); i++ {
		t = strings.TrimSpace(t + " " + fillerSentences[i])
		count++
	}
	return t
}

func countSentences(text string) int {
	replacer := strings.NewReplacer("!", ".", "?", ".")
	count := 0
	for _, seg := range strings.Split(replacer.Replace(text), ".") {
		if strings.TrimSpace(seg) != "" {
			count++
		}
	}
	return count
}

func overviewFallback(sideName string) string {
	base := fmt.Sprintf("The %s team presented a coherent case with clear signposting and "+
		"attempted to control the weighing mechanism. They engaged core clashes, "+
		"extending key material while addressing opponent pressure. Evidence use was "+
		"directionally sound, though several claims would benefit from tighter warrants "+
		"and explicit impact calculus tied to feasibility, risk, and timeframe.", sideName)
	return ensureMinSentences(base, minNarrativeSentences)
}

func improvementsFallback(sideName string) string {
	base := fmt.Sprintf("%s can improve by tightening comparative weighing earlier, "+
		"frontloading the round-winning mechanism, and backing asserted links with a "+
		"concrete warrant (study, example, or model). They should also avoid "+
		"assertion-by-repetition by collapsing onto the strongest contention and "+
		"making explicit, line-by-line resolution of the main clashes.", sideName)
	return ensureMinSentences(base, minNarrativeSentences)
}
