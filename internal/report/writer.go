// Package report renders a judged verdict as console text: scaled /100
// scores, the final statement, and per-side overview, improvements, and
// labeled notable moves.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"debattle/internal/judge"
)

// prettyLabel maps a move label to its display form.
func prettyLabel(l judge.Label) string {
	switch l {
	case judge.LabelBrilliant:
		return "BRILLIANT MOVE!"
	case judge.LabelGreat:
		return "GREAT MOVE!"
	case judge.LabelGood:
		return "GOOD MOVE"
	case judge.LabelInaccuracy:
		return "INACCURACY"
	case judge.LabelBlunder:
		return "BLUNDER"
	}
	return strings.ToUpper(string(l))
}

func scaled(raw int) string {
	return strconv.FormatFloat(judge.ScaleTo100(raw), 'f', 1, 64)
}

// Write renders the verdict to w.
func Write(w io.Writer, v *judge.Verdict) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Team AFFIRMATIVE: %s/100\n", scaled(v.Totals.Affirmative))
	fmt.Fprintf(&b, "Team NEGATIVE:   %s/100\n", scaled(v.Totals.Negative))
	fmt.Fprintf(&b, "Final verdict: %s\n", v.FinalStatement)

	b.WriteString("\n-- Per-Team Analysis --\n")
	writeSide(&b, "AFFIRMATIVE", &v.Analysis.Affirmative)
	writeSide(&b, "NEGATIVE", &v.Analysis.Negative)

	_, err := io.WriteString(w, b.String())
	return err
}

func writeSide(b *strings.Builder, name string, a *judge.SideAnalysis) {
	fmt.Fprintf(b, "\n[%s] OVERVIEW:\n%s\n", name, orNone(a.Overview))
	fmt.Fprintf(b, "\n[%s] IMPROVEMENTS:\n%s\n", name, orNone(a.Improvements))

	if len(a.NotableMoves) == 0 {
		fmt.Fprintf(b, "\n[%s] NOTABLE MOVES: (none)\n", name)
		return
	}
	fmt.Fprintf(b, "\n[%s] NOTABLE MOVES:\n", name)
	for _, m := range a.NotableMoves {
		prefix := ""
		if m.Time != "" {
			prefix = fmt.Sprintf("[%s] ", m.Time)
		}
		fmt.Fprintf(b, "  - %s%s: %s\n", prefix, prettyLabel(m.Label), strings.TrimSpace(m.Explanation))
	}
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "(none)"
	}
	return s
}
