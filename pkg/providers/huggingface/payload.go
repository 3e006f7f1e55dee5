package huggingface

import "strings"

// buildPayload shapes the inference payload for one model. The Inference
// API accepts different parameter sets per model family, keyed here by a
// substring match on the model name.
func buildPayload(model string, prompt string, maxTokens int, temperature float64) map[string]any {
	name := strings.ToLower(model)

	var params map[string]any
	switch {
	case strings.Contains(name, "gpt"):
		params = map[string]any{"max_new_tokens": maxTokens}
	case strings.Contains(name, "bart"), strings.Contains(name, "pegasus"):
		params = map[string]any{"max_length": maxTokens, "min_length": 10}
	default:
		params = map[string]any{
			"max_length":  maxTokens,
			"temperature": clampTemperature(temperature),
		}
	}

	return map[string]any{"inputs": prompt, "parameters": params}
}

// clampTemperature bounds sampling temperature to [0.1, 1.0].
func clampTemperature(t float64) float64 {
	if t < 0.1 {
		return 0.1
	}
	if t > 1.0 {
		return 1.0
	}
	return t
}
