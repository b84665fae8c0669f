package judge

// Canonical label sequences keyed to slot position. The winning side always
// shows two positives, one neutral, and one negative; the losing side two
// negatives, one positive, and one neutral. Re-running the rebalancer with
// the same winner reproduces the same sequences.
var (
	winnerTemplate = [MovesPerSide]Label{LabelBrilliant, LabelGreat, LabelGood, LabelInaccuracy}
	loserTemplate  = [MovesPerSide]Label{LabelInaccuracy, LabelBlunder, LabelGood, LabelGreat}
)

// RebalanceMoves replaces each side's notable moves with the canonical
// sequence for its outcome, making the label-distribution invariant true by
// construction no matter what the model produced. The prior move at the same
// slot index seeds the new explanation.
//
// On a TIE neither side matches the finalized winner, so both sides receive
// the losing template. That asymmetry is inherited, deliberately preserved
// behavior; only an explicit AFFIRMATIVE or NEGATIVE winner earns the
// winning template.
func RebalanceMoves(v *Verdict) {
	for _, side := range []Side{SideAffirmative, SideNegative} {
		a := v.SideAnalysisFor(side)
		prior := assignSlots(a.NotableMoves)

		isWinner := v.Winner != WinnerTie &&
			((v.Winner == WinnerAffirmative && side == SideAffirmative) ||
				(v.Winner == WinnerNegative && side == SideNegative))

		template := loserTemplate
		if isWinner {
			template = winnerTemplate
		}

		replaced := make([]Move, MovesPerSide)
		for i, label := range template {
			seed := ""
			if i < len(prior) {
				seed = prior[i].Explanation
			}
			replaced[i] = Move{
				Time:        SpeechSlots[i],
				Label:       label,
				Explanation: ExpandMove(label, seed),
			}
		}
		a.NotableMoves = replaced
	}
}
