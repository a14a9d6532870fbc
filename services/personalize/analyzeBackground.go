package personalize

import (
	"context"
	"log"

	"safetypath/models"

	"github.com/samber/lo"
)

var personaAnalysisContract = []requiredField{
	{name: "persona", kind: kindString},
	{name: "role", kind: kindString},
	{name: "reasoning", kind: kindString},
}

// AnalyzeBackground classifies a free-text background description into one of
// the catalog personas.
func (s *Service) AnalyzeBackground(ctx context.Context, req *models.AnalyzeBackgroundRequest) (*models.PersonaAnalysis, error) {
	if err := requireText("background", req.Background); err != nil {
		return nil, err
	}

	log.Printf("[INFO] Starting background analysis")
	prompt := buildAnalyzeBackgroundPrompt(req, s.personaIDs)

	completion, err := s.completer.Complete(ctx, ANALYZE_SYSTEM_PROMPT, prompt)
	if err != nil {
		return nil, err
	}

	result, err := extractInto[models.PersonaAnalysis](completion, personaAnalysisContract)
	if err != nil {
		log.Printf("[ERROR] Background analysis extraction failed: %v, raw reply: %s", err, completion)
		return nil, err
	}

	if !lo.Contains(s.personaIDs, result.Persona) {
		log.Printf("[ERROR] Background analysis returned off-catalog persona %q, raw reply: %s", result.Persona, completion)
		return nil, &ExtractionError{Kind: InvalidField, Field: "persona"}
	}

	log.Printf("[INFO] Background analysis completed: persona=%s role=%s", result.Persona, result.Role)
	return result, nil
}
