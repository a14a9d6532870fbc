package models

// User is a registered visitor. PasswordHash never leaves the server; the
// json tag strips it from every response body.
type User struct {
	ID           int            `json:"id" db:"id"`
	Username     string         `json:"username" db:"username"`
	PasswordHash string         `json:"-" db:"password"`
	Persona      string         `json:"persona,omitempty" db:"persona"`
	Region       string         `json:"region,omitempty" db:"region"`
	Progress     map[string]any `json:"progress,omitempty" db:"progress"`
	Skills       []string       `json:"skills,omitempty" db:"skills"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Persona  string `json:"persona,omitempty"`
	Region   string `json:"region,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse carries the user record plus the opaque session token the
// client sends back as a bearer credential.
type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type SetPersonaRequest struct {
	Persona string `json:"persona"`
}
