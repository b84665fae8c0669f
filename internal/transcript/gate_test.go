package transcript

import (
	"strings"
	"testing"
)

const sampleRound = `[00:00 AFF-1] Defines key terms clearly; claims policy X reduces emissions using Smith (2023).
[03:00 NEG-1] Challenges definition scope; says Smith uses extreme scenario; presents alternative evidence.
[06:00 AFF-2] Extends with infrastructure risk and cost-benefit; rebuts scenario critique.
`

func TestIsLowContent(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"empty", "", true},
		{"whitespace only", "   \n\t\n", true},
		{"untagged prose", "Hello there.\nThis is not a debate.\nNo tags anywhere at all in this text.", true},
		{
			"two tagged lines",
			"[00:00 AFF-1] A long substantive opening argument about policy and evidence standards overall.\n" +
				"[03:00 NEG-1] An equally long substantive response engaging the definition and the evidence base.",
			true,
		},
		{
			"three tagged lines, thin payload",
			"[00:00 AFF-1] hi\n[03:00 NEG-1] ok\n[06:00 AFF-2] sure",
			true,
		},
		{"three substantive tagged lines", sampleRound, false},
		{
			"tagged lines mixed with noise",
			"judge notes follow\n" + sampleRound + "end of round\n",
			false,
		},
	}

	g := NewGate(DefaultGateConfig())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.IsLowContent(tt.text); got != tt.want {
				t.Errorf("IsLowContent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsLowContentCountsCharacters(t *testing.T) {
	g := NewGate(DefaultGateConfig())

	line := func(tag string, runes int) string {
		return tag + " " + strings.Repeat("辩", runes)
	}

	// 63 payload characters across three lines is under the 120-character
	// threshold even though the UTF-8 encoding is three bytes per character.
	short := line("[00:00 AFF-1]", 21) + "\n" + line("[03:00 NEG-1]", 21) + "\n" + line("[06:00 AFF-2]", 21)
	if !g.IsLowContent(short) {
		t.Error("63 payload characters should be low content regardless of byte length")
	}

	long := line("[00:00 AFF-1]", 45) + "\n" + line("[03:00 NEG-1]", 45) + "\n" + line("[06:00 AFF-2]", 45)
	if g.IsLowContent(long) {
		t.Error("135 payload characters should clear the threshold")
	}
}

func TestGateConfigurableThresholds(t *testing.T) {
	strict := NewGate(GateConfig{MinSpeechLines: 5, MinPayloadChars: 120})
	if !strict.IsLowContent(sampleRound) {
		t.Error("5-line threshold should reject a 3-line transcript")
	}

	lax := NewGate(GateConfig{MinSpeechLines: 1, MinPayloadChars: 10})
	if lax.IsLowContent("[00:00 AFF-1] A single but real opening speech.") {
		t.Error("1-line threshold should accept a single substantive line")
	}
}

func TestNewGateZeroFallsBackToDefaults(t *testing.T) {
	g := NewGate(GateConfig{})
	def := DefaultGateConfig()
	if g.Config() != def {
		t.Errorf("Config() = %+v, want defaults %+v", g.Config(), def)
	}
}

func TestStrip(t *testing.T) {
	got := Strip("[00:00 AFF-1] Opening claim.\n[03:00 NEG-Reply] Closing comparison.")
	if strings.Contains(got, "[") || strings.Contains(got, "AFF") {
		t.Errorf("Strip() left tag fragments: %q", got)
	}
	if !strings.Contains(got, "Opening claim.") || !strings.Contains(got, "Closing comparison.") {
		t.Errorf("Strip() lost payload: %q", got)
	}
}
