package models

// Tool is a static catalog entry describing an interactive learning tool.
type Tool struct {
	ID          int            `json:"id" db:"id"`
	Name        string         `json:"name" db:"name"`
	Type        string         `json:"type" db:"type"`
	Description string         `json:"description" db:"description"`
	Template    map[string]any `json:"template,omitempty" db:"template"`
}
