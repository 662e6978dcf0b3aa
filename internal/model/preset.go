package model

import "time"

// Preset is a named, saved set of generation options owned by a user.
// Generated passwords are never stored alongside it.
type Preset struct {
	ID        string
	UserID    int64
	Name      string
	Length    int
	Uppercase bool
	Lowercase bool
	Numbers   bool
	Symbols   bool
	Exclude   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PresetRequest represents a preset create or update request. It carries the
// same options as GenerateRequest but no count: a preset stores options only.
type PresetRequest struct {
	Name      string `json:"name"`
	Length    int    `json:"length"`
	Uppercase *bool  `json:"uppercase"`
	Lowercase *bool  `json:"lowercase"`
	Numbers   *bool  `json:"numbers"`
	Symbols   *bool  `json:"symbols"`
	Exclude   string `json:"exclude"`
}

// Options converts the request into the equivalent single-password GenerateRequest.
func (r PresetRequest) Options() GenerateRequest {
	return GenerateRequest{
		Length:    r.Length,
		Uppercase: r.Uppercase,
		Lowercase: r.Lowercase,
		Numbers:   r.Numbers,
		Symbols:   r.Symbols,
		Exclude:   r.Exclude,
	}
}

// PresetResponse represents a preset in API responses.
type PresetResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Length    int       `json:"length"`
	Uppercase bool      `json:"uppercase"`
	Lowercase bool      `json:"lowercase"`
	Numbers   bool      `json:"numbers"`
	Symbols   bool      `json:"symbols"`
	Exclude   string    `json:"exclude"`
	UpdatedAt time.Time `json:"updated_at"`
}
