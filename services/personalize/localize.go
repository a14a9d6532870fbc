package personalize

import (
	"context"
	"log"

	"safetypath/models"
)

const maxKnownResources = 5

var localizedContentContract = []requiredField{
	{name: "resources", kind: kindArray},
	{name: "caseStudies", kind: kindArray},
}

// Localize generates region-specific resources and case studies for a
// learning node. When a resource index is configured, catalog resources
// matching the node and the learner's interests are offered to the model as
// known candidates.
func (s *Service) Localize(ctx context.Context, req *models.LocalizeRequest) (*models.LocalizedContent, error) {
	if err := requireText("nodeTitle", req.NodeTitle); err != nil {
		return nil, err
	}
	if err := requireText("context.region", req.Context.Region); err != nil {
		return nil, err
	}

	var knownResources []models.Resource
	if s.resources != nil {
		query := req.NodeTitle + " " + req.Context.Interests
		found, err := s.resources.FindRelevantResources(ctx, query, maxKnownResources)
		if err != nil {
			// Enrichment only; localization proceeds without it.
			log.Printf("[ERROR] Resource index lookup failed: %v", err)
		} else {
			knownResources = found
		}
	}

	log.Printf("[INFO] Starting localization for node %q (region %s, %d known resources)",
		req.NodeTitle, req.Context.Region, len(knownResources))
	prompt := buildLocalizePrompt(req, knownResources)

	completion, err := s.completer.Complete(ctx, LOCALIZE_SYSTEM_PROMPT, prompt)
	if err != nil {
		return nil, err
	}

	result, err := extractInto[models.LocalizedContent](completion, localizedContentContract)
	if err != nil {
		log.Printf("[ERROR] Localization extraction failed: %v, raw reply: %s", err, completion)
		return nil, err
	}

	log.Printf("[INFO] Localization completed: %d resources, %d case studies",
		len(result.Resources), len(result.CaseStudies))
	return result, nil
}
