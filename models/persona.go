package models

// Persona is a coarse self-reported visitor category used to select which
// pathway content a visitor sees.
type Persona struct {
	ID          string `json:"id"`
	Question    string `json:"question"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// SafetyStat is an aggregate figure shown on the landing page next to the
// persona cards.
type SafetyStat struct {
	Title       string `json:"title"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

// PersonaCatalogResponse bundles the static persona catalog with its stats.
type PersonaCatalogResponse struct {
	Personas []Persona    `json:"personas"`
	Stats    []SafetyStat `json:"stats"`
}
