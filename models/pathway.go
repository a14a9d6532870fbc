package models

// PathwayStep is one ordered learning step inside a pathway.
type PathwayStep struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Pathway is a named, ordered sequence of learning steps with metadata.
type Pathway struct {
	ID                 int            `json:"id" db:"id"`
	Title              string         `json:"title" db:"title"`
	Description        string         `json:"description" db:"description"`
	Difficulty         string         `json:"difficulty" db:"difficulty"`
	Duration           string         `json:"duration" db:"duration"`
	Category           string         `json:"category" db:"category"`
	Persona            string         `json:"persona,omitempty" db:"persona"`
	Steps              []PathwayStep  `json:"steps" db:"steps"`
	Dependencies       []int          `json:"dependencies,omitempty" db:"dependencies"`
	SkillsRequired     []string       `json:"skills_required,omitempty" db:"skills_required"`
	SkillsGained       []string       `json:"skills_gained,omitempty" db:"skills_gained"`
	Resources          []Resource     `json:"resources,omitempty" db:"resources"`
	CompletionCriteria map[string]any `json:"completion_criteria,omitempty" db:"completion_criteria"`
}

// Resource is a linked learning material, either embedded in a pathway or
// standing alone with a pathway reference.
type Resource struct {
	ID          int      `json:"id" db:"id"`
	Title       string   `json:"title" db:"title"`
	Type        string   `json:"type" db:"type"`
	URL         string   `json:"url" db:"url"`
	Description string   `json:"description,omitempty" db:"description"`
	Provider    string   `json:"provider,omitempty" db:"provider"`
	Tags        []string `json:"tags,omitempty" db:"tags"`
	Difficulty  string   `json:"difficulty,omitempty" db:"difficulty"`
	PathwayID   int      `json:"pathway_id,omitempty" db:"pathway_id"`
}
