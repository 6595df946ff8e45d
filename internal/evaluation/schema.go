package evaluation

import "github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/llm"

func criterionSchema(desc string) map[string]any {
	return map[string]any{
		"type":        "number",
		"minimum":     0.0,
		"maximum":     9.0,
		"description": desc,
	}
}

// WritingSchema defines the JSON schema for writing evaluation responses:
// the four marking criteria, an overall band, and prose feedback.
var WritingSchema = &llm.Schema{
	Name:        "writing-evaluation",
	Description: "Band scores and feedback for a candidate's writing task",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"task_achievement":       criterionSchema("How fully the response addresses the task"),
			"coherence_and_cohesion": criterionSchema("Organization, paragraphing, and linking"),
			"lexical_resource":       criterionSchema("Range and accuracy of vocabulary"),
			"grammatical_range":      criterionSchema("Range and accuracy of grammar"),
			"overall_band": map[string]any{
				"type":        "number",
				"minimum":     0.0,
				"maximum":     9.0,
				"description": "Overall band for this task, half-point steps",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "Two to four sentences of actionable feedback for the candidate",
			},
		},
		"required": []any{
			"task_achievement", "coherence_and_cohesion",
			"lexical_resource", "grammatical_range",
			"overall_band", "feedback",
		},
		"additionalProperties": false,
	},
}

// SpeakingSchema defines the JSON schema for speaking evaluation responses.
var SpeakingSchema = &llm.Schema{
	Name:        "speaking-evaluation",
	Description: "Band scores and feedback for a candidate's speaking transcript",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"fluency_and_coherence": criterionSchema("Flow of speech and development of ideas"),
			"lexical_resource":      criterionSchema("Range and accuracy of vocabulary"),
			"grammatical_range":     criterionSchema("Range and accuracy of grammar"),
			"pronunciation":         criterionSchema("Intelligibility as far as the transcript allows"),
			"overall_band": map[string]any{
				"type":        "number",
				"minimum":     0.0,
				"maximum":     9.0,
				"description": "Overall band for this part, half-point steps",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "Two to four sentences of actionable feedback for the candidate",
			},
		},
		"required": []any{
			"fluency_and_coherence", "lexical_resource",
			"grammatical_range", "pronunciation",
			"overall_band", "feedback",
		},
		"additionalProperties": false,
	},
}
