package crypto

import (
	"encoding/json"
	"testing"
)

func TestEvaluateStrength(t *testing.T) {
	tests := []struct {
		password string
		want     Strength
	}{
		{"", Weak},
		{"abcdefgh", Weak},
		{"ABCDEFGHIJKLMNOP", Weak},
		{"Abcdefg", Weak},
		{"Abcdefgh", Medium},
		{"Abcdefgh12", Medium},
		{"12345!@#", Medium},
		{"1234567!", Medium},
		{"Abcdef12!@", Medium},
		{"Abcdefghijk1", Medium},
		{"Abcdefghijk1!", Strong},
		{"aB3$aB3$aB3$", Strong},
		{"abcdefghij1!", Medium},
		{"ÀÉÎõüñ12!@#$", Strong},
		// Only decimal digits (Nd) count: superscripts do not, Arabic-Indic digits do.
		{"abcdefg²!", Weak},
		{"abcdefg٣!", Medium},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			if got := EvaluateStrength(tt.password); got != tt.want {
				t.Errorf("EvaluateStrength(%q) = %v, want %v", tt.password, got, tt.want)
			}
		})
	}
}

func TestEvaluateStrengthIsDeterministic(t *testing.T) {
	for _, pw := range []string{"", "abcdefgh", "Abcdefghijk1!", "Abcdef12!@"} {
		first := EvaluateStrength(pw)
		for i := 0; i < 10; i++ {
			if got := EvaluateStrength(pw); got != first {
				t.Fatalf("EvaluateStrength(%q) changed from %v to %v", pw, first, got)
			}
		}
	}
}

func TestAnalyze(t *testing.T) {
	a := Analyze("Abc 1~")
	if a.Length != 6 {
		t.Errorf("Analyze() length = %d, want 6", a.Length)
	}
	if !a.HasUpper || !a.HasLower || !a.HasDigit || !a.HasSymbol {
		t.Errorf("Analyze() = %+v, want every class present", a)
	}
	if a.Strength != Weak {
		t.Errorf("Analyze() strength = %v, want %v", a.Strength, Weak)
	}

	if Analyze("ab cd").HasSymbol {
		t.Error("Analyze() space should not count as a symbol")
	}
}

func TestStrengthJSON(t *testing.T) {
	data, err := json.Marshal(Analyze("Abcdefghijk1!"))
	if err != nil {
		t.Fatalf("json.Marshal() unexpected error: %v", err)
	}

	var decoded struct {
		Strength Strength `json:"strength"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal() unexpected error: %v", err)
	}
	if decoded.Strength != Strong {
		t.Errorf("decoded strength = %v, want %v", decoded.Strength, Strong)
	}

	var s Strength
	if err := s.UnmarshalText([]byte("excellent")); err == nil {
		t.Error("UnmarshalText() expected error for unknown verdict")
	}
}
