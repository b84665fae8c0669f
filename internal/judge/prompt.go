package judge

import (
	"fmt"
	"strings"
)

// SystemPrompt is the fixed judging instruction sent with every request.
const SystemPrompt = "You are an impartial debate judge. Judge arguments, not identity."

// DemoTranscript is a complete sample round used when no transcript is
// supplied.
const DemoTranscript = `[00:00 AFF-1] Defines key terms clearly; claims policy X reduces emissions using Smith (2023).
[03:00 NEG-1] Challenges definition scope; says Smith uses extreme scenario; presents alternative evidence.
[06:00 AFF-2] Extends with infrastructure risk and cost-benefit; rebuts scenario critique.
[09:00 NEG-2] Pushes adaptation argument with Jones (2024); says costs lower than claimed.
[12:00 AFF-3] Heavy rebuttal on adaptation residual risk; synthesises case; no new matter.
[15:00 NEG-3] Rebuttal on feasibility; (no new matter).
[18:00 AFF-Reply] Compares feasibility vs residual risk; frames why AFF wins.
[20:00 NEG-Reply] Compares on costs and realism; claims NEG wins on practicality.
`

const userPromptTemplate = `RUBRIC (weights):
- Substantive speeches: Matter 40, Manner 30, Method 30 (speaker1/2/3 both sides).
- Reply: Matter 20, Manner 15, Method 15 (comparative only, NO new matter).
- POIs fold into the three categories.

REQUIREMENTS:
- Output STRICT JSON only (no prose).
- MUST include: meta, scores{affirmative{speaker1,2,3,reply}, negative{speaker1,2,3,reply}}, winner, rationale{summary, why_winner, key_clashes}, analysis{affirmative{overview, improvements, notable_moves[]}, negative{overview, improvements, notable_moves[]}}.
- All numeric fields must be within allowed ranges. If any computed value would exceed the cap, set it to the cap.
- notable_moves: label in ["brilliant","great","good","inaccuracy","blunder"], explanation 2-5 sentences, >=4 items per team, preferably mapped to First/Second/Third/Reply.

FILL THIS EXACT TEMPLATE (replace zeros/strings; keep keys exactly as written):
{
  "meta": {
    "format": "Policy",
    "rules": "No new matter in 3rd speeches; reply is comparative only."
  },
  "scores": {
    "affirmative": {
      "speaker1": {"matter": 0, "manner": 0, "method": 0, "notes": ""},
      "speaker2": {"matter": 0, "manner": 0, "method": 0, "notes": ""},
      "speaker3": {"matter": 0, "manner": 0, "method": 0, "notes": ""},
      "reply":   {"matter": 0, "manner": 0, "method": 0, "notes": ""}
    },
    "negative": {
      "speaker1": {"matter": 0, "manner": 0, "method": 0, "notes": ""},
      "speaker2": {"matter": 0, "manner": 0, "method": 0, "notes": ""},
      "speaker3": {"matter": 0, "manner": 0, "method": 0, "notes": ""},
      "reply":   {"matter": 0, "manner": 0, "method": 0, "notes": ""}
    }
  },
  "winner": "AFFIRMATIVE",
  "rationale": {
    "summary": "",
    "why_winner": "",
    "key_clashes": ["", "", ""]
  },
  "analysis": {
    "affirmative": {
      "overview": "",
      "improvements": "",
      "notable_moves": [{"time":"", "label":"good", "explanation":""}]
    },
    "negative": {
      "overview": "",
      "improvements": "",
      "notable_moves": [{"time":"", "label":"good", "explanation":""}]
    }
  }
}

TRANSCRIPT:
%s

Return ONLY the completed JSON object. Do not add any text before or after it.`

// BuildUserPrompt embeds the rubric and transcript into the judging prompt.
// Tags outside the gate's pattern are left untouched; the model sees the
// transcript as-is.
func BuildUserPrompt(transcript string) string {
	return strings.TrimSpace(fmt.Sprintf(userPromptTemplate, transcript))
}
