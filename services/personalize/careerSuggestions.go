package personalize

import (
	"context"
	"log"

	"safetypath/models"
)

var careerSuggestionsContract = []requiredField{
	{name: "suggestions", kind: kindArray},
}

// CareerSuggestions maps a career profile onto AI safety career trajectories.
func (s *Service) CareerSuggestions(ctx context.Context, req *models.CareerSuggestionsRequest) (*models.CareerSuggestions, error) {
	if err := requireText("currentRole", req.CurrentRole); err != nil {
		return nil, err
	}
	if err := requireText("background", req.Background); err != nil {
		return nil, err
	}

	log.Printf("[INFO] Starting career suggestions for role %q", req.CurrentRole)
	prompt := buildCareerSuggestionsPrompt(req)

	completion, err := s.completer.Complete(ctx, CAREER_SYSTEM_PROMPT, prompt)
	if err != nil {
		return nil, err
	}

	result, err := extractInto[models.CareerSuggestions](completion, careerSuggestionsContract)
	if err != nil {
		log.Printf("[ERROR] Career suggestions extraction failed: %v, raw reply: %s", err, completion)
		return nil, err
	}

	log.Printf("[INFO] Career suggestions completed with %d suggestions", len(result.Suggestions))
	return result, nil
}
