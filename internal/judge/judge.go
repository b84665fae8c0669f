package judge

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"debattle/internal/transcript"
)

// ModelClient is the minimal interface the judge uses to call an LLM.
// Implementations must honor the context deadline; the pipeline performs no
// transport-level retries.
type ModelClient interface {
	CompleteWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Judge runs the verdict pipeline: gate, model call, strict parse, sanitize,
// normalize, validate (one repair cycle), aggregate, rebalance, compose.
// A Judge is safe for sequential reuse; each Evaluate builds its own Verdict.
type Judge struct {
	client ModelClient
	gate   *transcript.Gate
	logger *zap.Logger
}

// New creates a Judge. A nil logger disables logging.
func New(client ModelClient, gateCfg transcript.GateConfig, logger *zap.Logger) *Judge {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Judge{
		client: client,
		gate:   transcript.NewGate(gateCfg),
		logger: logger,
	}
}

// Evaluate judges one transcript and returns a fully enforced verdict. On any
// fatal error no partial verdict is returned. Low-content transcripts
// short-circuit to the canonical empty verdict without a model call; that is
// a deterministic branch, not an error.
func (j *Judge) Evaluate(ctx context.Context, transcriptText string) (*Verdict, error) {
	roundID := uuid.NewString()
	log := j.logger.With(zap.String("round_id", roundID))

	if j.gate.IsLowContent(transcriptText) {
		log.Info("low-content transcript, skipping model call")
		return EmptyVerdict(), nil
	}

	raw, err := j.client.CompleteWithSystem(ctx, SystemPrompt, BuildUserPrompt(transcriptText))
	if err != nil {
		log.Error("model call failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrModelTransport, err)
	}

	v := new(Verdict)
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), v); err != nil {
		log.Error("model response is not a JSON verdict", zap.Error(err), zap.Int("response_len", len(raw)))
		return nil, fmt.Errorf("%w: %v", ErrMalformedModelOutput, err)
	}

	Sanitize(v)
	NormalizeAnalysis(v)

	if err := Validate(v); err != nil {
		// One local repair cycle against the same response; never a second
		// model call.
		log.Warn("verdict failed validation, attempting repair", zap.Error(err))
		Sanitize(v)
		NormalizeAnalysis(v)
		if err := Validate(v); err != nil {
			log.Error("verdict failed validation after repair", zap.Error(err))
			return nil, err
		}
	}

	ApplyTotals(v)
	RebalanceMoves(v)
	ComposeFinalStatement(v)

	log.Info("verdict complete",
		zap.String("winner", string(v.Winner)),
		zap.Int("aff_total", v.Totals.Affirmative),
		zap.Int("neg_total", v.Totals.Negative))
	return v, nil
}

// EmptyVerdict is the canonical zero-filled verdict for low-content input:
// all scores zero, TIE, fixed rationale and analysis text, no notable moves.
// It is cost-free and deterministic, so degenerate input always gets the same
// response.
func EmptyVerdict() *Verdict {
	v := &Verdict{
		Meta: Meta{
			Format: FormatPolicy,
			Rules:  "No new matter in 3rd speeches; reply is comparative only.",
		},
		Winner: WinnerTie,
		Rationale: Rationale{
			Summary:    "Insufficient material: there were not enough substantive speeches to evaluate the round.",
			WhyWinner:  "No winner — both teams provided insufficient content.",
			KeyClashes: []string{},
		},
		Analysis: Analysis{
			Affirmative: SideAnalysis{
				Overview:     "No substantive speeches recorded for AFF.",
				Improvements: "Deliver required speeches with claims, warrants, and comparison.",
				NotableMoves: []Move{},
			},
			Negative: SideAnalysis{
				Overview:     "No substantive speeches recorded for NEG.",
				Improvements: "Deliver required speeches with claims, warrants, and comparison.",
				NotableMoves: []Move{},
			},
		},
		Totals: Totals{},
	}
	ComposeFinalStatement(v)
	return v
}
