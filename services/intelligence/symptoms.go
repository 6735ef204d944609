package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"careinsight/models"
)

var quoteReplacer = strings.NewReplacer("“", `"`, "”", `"`)

func (s *DefaultAIService) AnalyzeSymptoms(ctx context.Context, req models.SymptomRequest) (*models.SymptomAnalysis, error) {
	prompt := fmt.Sprintf(symptomPromptTemplate, strings.TrimSpace(req.Symptoms), strings.TrimSpace(req.Description))

	raw, err := s.gen.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("symptom analysis: %w", err)
	}
	return ParseSymptomAnalysis(raw)
}

// ParseSymptomAnalysis decodes model output into a SymptomAnalysis. It tolerates
// typographic quotes and text or code fences around the JSON object.
func ParseSymptomAnalysis(raw string) (*models.SymptomAnalysis, error) {
	text := quoteReplacer.Replace(raw)

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("symptom analysis: no JSON object in model output")
	}

	var analysis models.SymptomAnalysis
	if err := json.Unmarshal([]byte(text[start:end+1]), &analysis); err != nil {
		return nil, fmt.Errorf("symptom analysis: decode: %w", err)
	}
	analysis.Urgency = strings.ToLower(strings.TrimSpace(analysis.Urgency))
	if len(analysis.ProbableConditions) > 3 {
		analysis.ProbableConditions = analysis.ProbableConditions[:3]
	}
	return &analysis, nil
}
