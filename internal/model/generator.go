package model

import "github.com/mypass/mypass-go/internal/crypto"

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type GenerateRequest struct {
	Length    int    `json:"length"`
	Uppercase *bool  `json:"uppercase"`
	Lowercase *bool  `json:"lowercase"`
	Numbers   *bool  `json:"numbers"`
	Symbols   *bool  `json:"symbols"`
	Exclude   string `json:"exclude"`
	Count     int    `json:"count"`
}

// GeneratedPassword is a single generated password with its strength verdict.
type GeneratedPassword struct {
	Password string          `json:"password"`
	Length   int             `json:"length"`
	Strength crypto.Strength `json:"strength"`
}

// GenerateResponse represents a password generation response.
// The top-level fields mirror the first password for single-password clients.
type GenerateResponse struct {
	Password  string              `json:"password"`
	Length    int                 `json:"length"`
	Strength  crypto.Strength     `json:"strength"`
	Passwords []GeneratedPassword `json:"passwords"`
}

// StrengthRequest represents a strength evaluation request.
type StrengthRequest struct {
	Password string `json:"password"`
}

// StrengthResponse represents a strength evaluation response.
type StrengthResponse = crypto.Analysis
