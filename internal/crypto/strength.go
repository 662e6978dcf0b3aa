package crypto

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Strength is a coarse password strength verdict.
type Strength int

const (
	Weak Strength = iota
	Medium
	Strong
)

func (s Strength) String() string {
	switch s {
	case Strong:
		return "strong"
	case Medium:
		return "medium"
	default:
		return "weak"
	}
}

// MarshalText encodes the verdict as its lowercase name.
func (s Strength) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a lowercase verdict name.
func (s *Strength) UnmarshalText(text []byte) error {
	switch string(text) {
	case "weak":
		*s = Weak
	case "medium":
		*s = Medium
	case "strong":
		*s = Strong
	default:
		return fmt.Errorf("unknown strength %q", text)
	}
	return nil
}

// Analysis is the class composition of a password and the verdict derived from it.
type Analysis struct {
	Length    int      `json:"length"`
	HasUpper  bool     `json:"has_uppercase"`
	HasLower  bool     `json:"has_lowercase"`
	HasDigit  bool     `json:"has_digit"`
	HasSymbol bool     `json:"has_symbol"`
	Strength  Strength `json:"strength"`
}

// Analyze inspects a password of any origin. Length is counted in characters.
func Analyze(password string) Analysis {
	a := Analysis{Length: utf8.RuneCountInString(password)}
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			a.HasLower = true
		case unicode.IsUpper(r):
			a.HasUpper = true
		case unicode.IsDigit(r):
			a.HasDigit = true
		case r < utf8.RuneSelf && strings.ContainsRune(symbolChars, r):
			a.HasSymbol = true
		}
	}
	a.Strength = a.verdict()
	return a
}

func (a Analysis) verdict() Strength {
	switch {
	case a.Length >= 12 && a.HasLower && a.HasUpper && a.HasDigit && a.HasSymbol:
		return Strong
	case a.Length >= 8 && ((a.HasLower && a.HasUpper) || (a.HasDigit && a.HasSymbol)):
		return Medium
	default:
		return Weak
	}
}

// EvaluateStrength returns the strength verdict for password.
func EvaluateStrength(password string) Strength {
	return Analyze(password).Strength
}
