package llm

import (
	"fmt"

	anthropic "github.com/anthropics/anthropic-sdk-go"

	"github.com/heartmarshall/leximind/internal/domain"
)

// buildPrompt creates the instruction text for a single word.
func buildPrompt(word string) string {
	return fmt.Sprintf(`Provide learning insights for the English word "%s".
1. Hindi meaning: a concise translation in Devanagari script.
2. Provide EXACTLY 5 diverse example sentences showing how the word is used in different contexts (formal, casual, workplace, academic).
   Each example must have the English sentence and its Hindi translation.
3. A creative mnemonic to remember the word.
4. A brief etymology (origin of the word).
5. A practical usage tip for learners.

Record the result with the %s tool.`, word, insightsTool)
}

// insightsToolParam describes the response schema. The model is forced to
// call this tool, so its input is the structured answer.
func insightsToolParam() *anthropic.ToolParam {
	str := func(desc string) map[string]any {
		return map[string]any{"type": "string", "description": desc}
	}

	return &anthropic.ToolParam{
		Name:        insightsTool,
		Description: anthropic.String("Record Hindi meaning, examples, mnemonic, etymology and a usage tip for an English word."),
		InputSchema: anthropic.ToolInputSchemaParam{
			Properties: map[string]any{
				"hindiMeaning": str("Hindi translation in Devanagari script"),
				"examples": map[string]any{
					"type":     "array",
					"minItems": domain.InsightExampleCount,
					"maxItems": domain.InsightExampleCount,
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"english": str("Example sentence in English"),
							"hindi":   str("Hindi translation of the sentence"),
						},
						"required": []string{"english", "hindi"},
					},
				},
				"mnemonic":  str("Memory aid for the word"),
				"etymology": str("Origin of the word"),
				"usageTip":  str("Practical advice on using the word"),
			},
			Required: []string{"hindiMeaning", "examples", "mnemonic", "etymology", "usageTip"},
		},
	}
}
