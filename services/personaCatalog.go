package services

import (
	"safetypath/models"

	"github.com/samber/lo"
)

// The persona catalog is fixed at compile time; the ids double as the routing
// keys the personalization endpoints validate against.
var personaCatalog = []models.Persona{
	{
		ID:          "learner",
		Question:    "Why do we need AI safety?",
		Description: "Learn about AI safety fundamentals and career paths",
		Image:       "https://images.unsplash.com/photo-1519452575417-564c1401ecc0",
	},
	{
		ID:          "parent",
		Question:    "Would AI be safe for my family?",
		Description: "Understand AI's impact on future generations",
		Image:       "https://images.unsplash.com/photo-1510932742089-bef92acabb5b",
	},
	{
		ID:          "policymaker",
		Question:    "How can policymakers benefit from AI safety?",
		Description: "Learn to create effective AI safety policies",
		Image:       "https://images.unsplash.com/photo-1472220625704-91e1462799b2",
	},
}

var safetyStats = []models.SafetyStat{
	{
		Title:       "AI Safety Research Growth",
		Value:       "300%",
		Description: "Increase in AI safety research papers since 2020",
	},
	{
		Title:       "Global Impact",
		Value:       "180+",
		Description: "Countries developing AI governance frameworks",
	},
	{
		Title:       "Industry Adoption",
		Value:       "87%",
		Description: "Of tech companies prioritizing AI safety measures",
	},
}

// PersonaCatalog returns the static persona definitions.
func PersonaCatalog() []models.Persona {
	return personaCatalog
}

// SafetyStats returns the aggregate landing-page statistics.
func SafetyStats() []models.SafetyStat {
	return safetyStats
}

// PersonaIDs returns the valid persona ids.
func PersonaIDs() []string {
	return lo.Map(personaCatalog, func(p models.Persona, _ int) string {
		return p.ID
	})
}

// IsValidPersona reports whether id names a catalog persona.
func IsValidPersona(id string) bool {
	return lo.ContainsBy(personaCatalog, func(p models.Persona) bool {
		return p.ID == id
	})
}
