package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/mypass/mypass-go/internal/crypto"
	"github.com/mypass/mypass-go/internal/model"
)

func boolPtr(b bool) *bool { return &b }

func TestGenerate_Defaults(t *testing.T) {
	svc := NewGeneratorService(nil)
	resp, err := svc.Generate(model.GenerateRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 12 {
		t.Errorf("expected length 12, got %d", resp.Length)
	}
	if len(resp.Password) != 12 {
		t.Errorf("expected password length 12, got %d", len(resp.Password))
	}
	if len(resp.Passwords) != 1 {
		t.Fatalf("expected 1 password, got %d", len(resp.Passwords))
	}
	// Twelve characters covering all four classes is always strong.
	if resp.Strength != crypto.Strong {
		t.Errorf("expected strong verdict, got %v", resp.Strength)
	}
}

func TestGenerate_CustomOptions(t *testing.T) {
	svc := NewGeneratorService(nil)
	resp, err := svc.Generate(model.GenerateRequest{
		Length:    32,
		Uppercase: boolPtr(true),
		Lowercase: boolPtr(true),
		Numbers:   boolPtr(false),
		Symbols:   boolPtr(false),
		Exclude:   "aeiouAEIOU",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 32 {
		t.Errorf("expected length 32, got %d", resp.Length)
	}
	for _, c := range resp.Password {
		if !((c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')) {
			t.Errorf("unexpected character %q in password with only uppercase+lowercase", c)
		}
		if strings.ContainsRune("aeiouAEIOU", c) {
			t.Errorf("excluded character %q in password", c)
		}
	}
}

func TestGenerate_Count(t *testing.T) {
	svc := NewGeneratorService(crypto.NewGenerator(crypto.NewSeededSource(7)))
	resp, err := svc.Generate(model.GenerateRequest{Length: 10, Count: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Passwords) != 5 {
		t.Fatalf("expected 5 passwords, got %d", len(resp.Passwords))
	}
	if resp.Password != resp.Passwords[0].Password {
		t.Errorf("top-level password should mirror the first entry")
	}
	for _, p := range resp.Passwords {
		if p.Length != 10 {
			t.Errorf("expected length 10, got %d", p.Length)
		}
		if p.Strength != crypto.EvaluateStrength(p.Password) {
			t.Errorf("strength %v does not match password %q", p.Strength, p.Password)
		}
	}
}

func TestGenerate_CountOutOfRange(t *testing.T) {
	svc := NewGeneratorService(nil)
	for _, count := range []int{-1, MaxCount + 1} {
		_, err := svc.Generate(model.GenerateRequest{Count: count})
		if !errors.Is(err, ErrCountOutOfRange) {
			t.Errorf("count %d: expected ErrCountOutOfRange, got %v", count, err)
		}
	}
}

func TestGenerate_LengthTooLong(t *testing.T) {
	svc := NewGeneratorService(nil)
	_, err := svc.Generate(model.GenerateRequest{Length: 200})
	if !errors.Is(err, crypto.ErrLengthTooLong) {
		t.Fatalf("expected ErrLengthTooLong, got %v", err)
	}
}

func TestGenerate_NoCharacterTypes(t *testing.T) {
	svc := NewGeneratorService(nil)
	_, err := svc.Generate(model.GenerateRequest{
		Length:    16,
		Uppercase: boolPtr(false),
		Lowercase: boolPtr(false),
		Numbers:   boolPtr(false),
		Symbols:   boolPtr(false),
	})
	if !errors.Is(err, crypto.ErrEmptyPool) {
		t.Fatalf("expected ErrEmptyPool, got %v", err)
	}
	if !IsValidationError(err) {
		t.Error("empty pool should be a validation error")
	}
}

func TestGenerate_Infeasible(t *testing.T) {
	svc := NewGeneratorService(nil)
	_, err := svc.Generate(model.GenerateRequest{Length: 2})
	if !errors.Is(err, crypto.ErrInfeasibleConstraints) {
		t.Fatalf("expected ErrInfeasibleConstraints, got %v", err)
	}
}

func TestGenerate_ExcludeTooLong(t *testing.T) {
	svc := NewGeneratorService(nil)
	_, err := svc.Generate(model.GenerateRequest{Exclude: strings.Repeat("#", crypto.MaxExcludeLength+1)})
	if !errors.Is(err, crypto.ErrExcludeTooLong) {
		t.Fatalf("expected ErrExcludeTooLong, got %v", err)
	}
	if !IsValidationError(err) {
		t.Error("oversized exclusion list should be a validation error")
	}
}

func TestGenerate_RetryLimitIsNotValidation(t *testing.T) {
	if IsValidationError(crypto.ErrRetryLimitExceeded) {
		t.Error("retry limit should not be reported as a validation error")
	}
}

func TestEvaluateStrength(t *testing.T) {
	svc := NewGeneratorService(nil)
	resp := svc.EvaluateStrength(model.StrengthRequest{Password: "Abcdefgh12"})
	if resp.Strength != crypto.Medium {
		t.Errorf("expected medium, got %v", resp.Strength)
	}
	if resp.Length != 10 {
		t.Errorf("expected length 10, got %d", resp.Length)
	}
}
