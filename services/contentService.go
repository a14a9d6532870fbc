package services

import (
	"fmt"
	"log"
	"strings"

	"safetypath/db"
	"safetypath/models"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ContentService serves the read-only pathway, tool, and resource catalogs.
type ContentService struct {
	pathways  db.PathwayRepository
	tools     db.ToolRepository
	resources db.ResourceRepository
}

func NewContentService(pathways db.PathwayRepository, tools db.ToolRepository, resources db.ResourceRepository) *ContentService {
	return &ContentService{
		pathways:  pathways,
		tools:     tools,
		resources: resources,
	}
}

// GetPathways returns the pathway catalog, optionally filtered to a persona.
// Embedded resources are attached from the standalone resource records.
func (s *ContentService) GetPathways(personaFilter string) ([]models.Pathway, error) {
	log.Printf("[INFO] Starting get pathways (persona filter: %q)", personaFilter)

	var pathways []models.Pathway
	var err error
	if personaFilter != "" {
		if !IsValidPersona(personaFilter) {
			return nil, fmt.Errorf("unknown persona: %s", personaFilter)
		}
		pathways, err = s.pathways.GetPathwaysByPersona(personaFilter)
	} else {
		pathways, err = s.pathways.GetPathways()
	}
	if err != nil {
		log.Printf("[ERROR] Failed to get pathways: %v", err)
		return nil, fmt.Errorf("failed to get pathways: %w", err)
	}

	for i := range pathways {
		resources, err := s.resources.GetResourcesByPathway(pathways[i].ID)
		if err != nil {
			log.Printf("[ERROR] Failed to get resources for pathway %d: %v", pathways[i].ID, err)
			return nil, fmt.Errorf("failed to get pathway resources: %w", err)
		}
		pathways[i].Resources = resources
	}

	log.Printf("[INFO] Successfully retrieved %d pathways", len(pathways))
	return pathways, nil
}

func (s *ContentService) GetPathwayByID(id int) (*models.Pathway, error) {
	log.Printf("[INFO] Starting get pathway by ID %d", id)

	if id <= 0 {
		return nil, fmt.Errorf("invalid pathway ID: %d", id)
	}

	pathway, err := s.pathways.GetPathwayByID(id)
	if err != nil {
		log.Printf("[ERROR] Failed to get pathway by ID %d: %v", id, err)
		return nil, err
	}

	resources, err := s.resources.GetResourcesByPathway(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get pathway resources: %w", err)
	}
	pathway.Resources = resources

	return pathway, nil
}

func (s *ContentService) GetTools() ([]models.Tool, error) {
	log.Printf("[INFO] Starting get tools")

	tools, err := s.tools.GetTools()
	if err != nil {
		log.Printf("[ERROR] Failed to get tools: %v", err)
		return nil, fmt.Errorf("failed to get tools: %w", err)
	}

	log.Printf("[INFO] Successfully retrieved %d tools", len(tools))
	return tools, nil
}

func (s *ContentService) GetResources(pathwayID int) ([]models.Resource, error) {
	log.Printf("[INFO] Starting get resources (pathway filter: %d)", pathwayID)

	if pathwayID > 0 {
		return s.resources.GetResourcesByPathway(pathwayID)
	}
	return s.resources.GetResources()
}

// SearchResources returns catalog resources fuzzily matching the query
// against title, description, provider, and tags.
func (s *ContentService) SearchResources(query string) ([]models.Resource, error) {
	log.Printf("[INFO] Starting resource search for %q", query)

	resources, err := s.resources.GetResources()
	if err != nil {
		return nil, fmt.Errorf("failed to get resources for search: %w", err)
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return resources, nil
	}

	var matching []models.Resource
	for _, resource := range resources {
		if resourceMatchesQuery(resource, query) {
			matching = append(matching, resource)
		}
	}

	log.Printf("[INFO] Found %d resources matching %q", len(matching), query)
	return matching, nil
}

func resourceMatchesQuery(resource models.Resource, query string) bool {
	for _, term := range strings.Fields(strings.ToLower(query)) {
		if fuzzy.MatchFold(term, resource.Title) ||
			fuzzy.MatchFold(term, resource.Description) ||
			fuzzy.MatchFold(term, resource.Provider) {
			return true
		}
		if len(fuzzy.Find(term, resource.Tags)) > 0 {
			return true
		}
	}
	return false
}
