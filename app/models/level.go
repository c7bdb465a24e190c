package models

// Level is an academic level, e.g. "Primaria" or "Secundaria".
type Level struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
