package guru

import "github.com/vgn96186/Guru-sub000/internal/llm"

// SessionPlanSchema defines the JSON schema for session planning.
var SessionPlanSchema = &llm.Schema{
	Name:        "session-plan",
	Description: "A study session plan: which topics to study and a short focus note",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"selected_topic_ids": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "IDs of the chosen topics, in study order, drawn from the candidate list",
			},
			"focus_note": map[string]any{
				"type":        "string",
				"description": "One sentence telling the student what to focus on this session",
			},
			"guru_message": map[string]any{
				"type":        "string",
				"description": "A short, warm motivational message (1-2 sentences)",
			},
		},
		"required":             []any{"selected_topic_ids", "focus_note", "guru_message"},
		"additionalProperties": false,
	},
}

// ContentSchema defines the JSON schema for study-material generation.
var ContentSchema = &llm.Schema{
	Name:        "study-content",
	Description: "Study material for one topic in the requested format",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Short title for the material (3-8 words)",
			},
			"body": map[string]any{
				"type":        "string",
				"description": "The study material itself, plain text with simple formatting",
			},
		},
		"required":             []any{"title", "body"},
		"additionalProperties": false,
	},
}
