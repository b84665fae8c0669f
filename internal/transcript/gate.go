// Package transcript classifies raw debate transcripts before judging.
// Transcripts are UTF-8 text whose speech lines look like
// "[MM:SS SIDE-N] payload" with SIDE in {AFF,NEG}; anything else is ignored
// by the gate but preserved for the prompt sent to the model.
package transcript

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Speech line tag: "[00:00 AFF-1] ..." / "[18:00 NEG-Reply] ...".
var (
	tagLinePattern  = regexp.MustCompile(`^\[\d{2}:\d{2}\s+(AFF|NEG)-`)
	tagStripPattern = regexp.MustCompile(`\[\d{2}:\d{2}\s+(AFF|NEG)-[^\]]*\]\s*`)
)

// GateConfig names the low-content thresholds. Fewer matched speech lines
// than MinSpeechLines, or less stripped payload than MinPayloadChars,
// classifies the transcript as low-content.
type GateConfig struct {
	MinSpeechLines  int
	MinPayloadChars int
}

// DefaultGateConfig returns the standard thresholds.
func DefaultGateConfig() GateConfig {
	return GateConfig{
		MinSpeechLines:  3,
		MinPayloadChars: 120,
	}
}

// Gate decides whether a transcript carries enough real speech to judge.
type Gate struct {
	cfg GateConfig
}

// NewGate creates a Gate; zero thresholds fall back to the defaults.
func NewGate(cfg GateConfig) *Gate {
	def := DefaultGateConfig()
	if cfg.MinSpeechLines <= 0 {
		cfg.MinSpeechLines = def.MinSpeechLines
	}
	if cfg.MinPayloadChars <= 0 {
		cfg.MinPayloadChars = def.MinPayloadChars
	}
	return &Gate{cfg: cfg}
}

// Config returns the effective thresholds.
func (g *Gate) Config() GateConfig { return g.cfg }

// IsLowContent reports whether text is too sparse to evaluate meaningfully.
// Only lines matching the speech tag pattern count; their stripped payload is
// measured in characters, not bytes, against the threshold.
func (g *Gate) IsLowContent(text string) bool {
	if strings.TrimSpace(text) == "" {
		return true
	}
	var speechLines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if tagLinePattern.MatchString(line) {
			speechLines = append(speechLines, line)
		}
	}
	payload := Strip(strings.Join(speechLines, "\n"))
	return len(speechLines) < g.cfg.MinSpeechLines || utf8.RuneCountInString(payload) < g.cfg.MinPayloadChars
}

// Strip removes all speech tags, retaining only payload text.
func Strip(text string) string {
	return strings.TrimSpace(tagStripPattern.ReplaceAllString(text, ""))
}
