package caseprep

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"go.uber.org/zap"
)

// ModelClient is the minimal interface the generator uses to call an LLM.
// Mirrors judge.ModelClient to avoid an import cycle.
type ModelClient interface {
	CompleteWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

const (
	maxChosenExtracts = 3
	maxExtractChars   = 2500
)

const promptTemplate = `You are drafting concise AU debate hypotheticals.
Read the excerpts below (from AU judgments). Create ONE short, hypothetical case
for the selected area: %s. DO NOT copy facts; invent new facts inspired by themes.
Output bullets only, <=150 words.

EXCERPTS:
%s

FORMAT:
- Title:
- Jurisdiction/Area:
- Core facts (3-5 bullets):
- Key issues (3-4):
- Relevant precedents (2-3): {Case - 3-10 word principle}
- Affirmative (3 bullets):
- Negative (3 bullets):
- Suggested debate motion (1):`

// Generator turns source extracts into a hypothetical debate case.
type Generator struct {
	client ModelClient
	logger *zap.Logger
}

// NewGenerator creates a Generator. A nil logger disables logging.
func NewGenerator(client ModelClient, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{client: client, logger: logger}
}

// Generate picks up to three extracts and prompts the model for a
// hypothetical case in the given area.
func (g *Generator) Generate(ctx context.Context, area Area, extracts []Extract) (*Case, error) {
	if len(extracts) == 0 {
		return nil, fmt.Errorf("no extracts to generate from")
	}

	chosen := make([]Extract, len(extracts))
	copy(chosen, extracts)
	rand.Shuffle(len(chosen), func(i, j int) { chosen[i], chosen[j] = chosen[j], chosen[i] })
	if len(chosen) > maxChosenExtracts {
		chosen = chosen[:maxChosenExtracts]
	}

	var b strings.Builder
	for i, e := range chosen {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "### %s\n%s", e.Title, truncateRunes(e.Text, maxExtractChars))
	}

	prompt := fmt.Sprintf(promptTemplate, titleCase(string(area)), b.String())

	g.logger.Debug("generating hypothetical case",
		zap.String("area", string(area)), zap.Int("extracts", len(chosen)))

	body, err := g.client.CompleteWithSystem(ctx, "", prompt)
	if err != nil {
		return nil, fmt.Errorf("case generation failed: %w", err)
	}

	return &Case{Area: area, Body: strings.TrimSpace(body), Sources: chosen}, nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func truncateRunes(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
