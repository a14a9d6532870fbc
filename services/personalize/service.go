package personalize

import (
	"context"
	"strings"

	"safetypath/models"
)

// ResourceFinder looks up catalog resources relevant to a free-text query.
// The localize flow uses it to feed known resources into the prompt; a nil
// finder disables that enrichment.
type ResourceFinder interface {
	FindRelevantResources(ctx context.Context, query string, limit int) ([]models.Resource, error)
}

// Service orchestrates the personalization use cases: validate the request,
// build the prompt, run the completion, extract the typed result.
type Service struct {
	completer  Completer
	personaIDs []string
	resources  ResourceFinder
}

// NewService creates the personalization service. resources may be nil.
func NewService(completer Completer, personaIDs []string, resources ResourceFinder) *Service {
	return &Service{
		completer:  completer,
		personaIDs: personaIDs,
		resources:  resources,
	}
}

func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Message: "is required"}
	}
	return nil
}
