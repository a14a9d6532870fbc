package personalize

import (
	"context"
	"log"

	"safetypath/models"
)

var unitCustomizationContract = []requiredField{
	{name: "customizedUnit", kind: kindObject},
}

// CustomizeUnit customizes one imported course unit for the learner,
// including a role-play exercise and relevant news items.
func (s *Service) CustomizeUnit(ctx context.Context, req *models.CustomizeUnitRequest) (*models.UnitCustomization, error) {
	if err := requireText("url", req.URL); err != nil {
		return nil, err
	}
	if err := requireText("background", req.Background); err != nil {
		return nil, err
	}

	log.Printf("[INFO] Starting unit customization for %s", req.URL)
	prompt := buildCustomizeUnitPrompt(req)

	completion, err := s.completer.Complete(ctx, UNIT_SYSTEM_PROMPT, prompt)
	if err != nil {
		return nil, err
	}

	result, err := extractInto[models.UnitCustomization](completion, unitCustomizationContract)
	if err != nil {
		log.Printf("[ERROR] Unit customization extraction failed: %v, raw reply: %s", err, completion)
		return nil, err
	}

	log.Printf("[INFO] Unit customization completed: %s", result.CustomizedUnit.Title)
	return result, nil
}
