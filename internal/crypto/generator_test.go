package crypto

import (
	"errors"
	"strings"
	"testing"
)

// constSource always returns the same index.
type constSource int

func (c constSource) Intn(n int) (int, error) { return int(c) % n, nil }

type failingSource struct{}

func (failingSource) Intn(int) (int, error) { return 0, errors.New("entropy unavailable") }

func TestGenerate(t *testing.T) {
	tests := []struct {
		name    string
		opts    GeneratorOptions
		wantErr error
	}{
		{
			name:    "default options",
			opts:    DefaultOptions(),
			wantErr: nil,
		},
		{
			name: "all options enabled",
			opts: GeneratorOptions{
				Length: 32, Uppercase: true, Lowercase: true, Numbers: true, Symbols: true,
			},
			wantErr: nil,
		},
		{
			name:    "uppercase only",
			opts:    GeneratorOptions{Length: 16, Uppercase: true},
			wantErr: nil,
		},
		{
			name:    "symbols only",
			opts:    GeneratorOptions{Length: 16, Symbols: true},
			wantErr: nil,
		},
		{
			name:    "single character",
			opts:    GeneratorOptions{Length: 1, Numbers: true},
			wantErr: nil,
		},
		{
			name: "length equals class count",
			opts: GeneratorOptions{
				Length: 4, Uppercase: true, Lowercase: true, Numbers: true, Symbols: true,
			},
			wantErr: nil,
		},
		{
			name:    "maximum length",
			opts:    GeneratorOptions{Length: MaxLength, Uppercase: true, Lowercase: true},
			wantErr: nil,
		},
		{
			name:    "zero length",
			opts:    GeneratorOptions{Length: 0, Lowercase: true},
			wantErr: ErrLengthTooShort,
		},
		{
			name:    "negative length",
			opts:    GeneratorOptions{Length: -5, Lowercase: true},
			wantErr: ErrLengthTooShort,
		},
		{
			name:    "length too long",
			opts:    GeneratorOptions{Length: 200, Uppercase: true},
			wantErr: ErrLengthTooLong,
		},
		{
			name:    "no character types selected",
			opts:    GeneratorOptions{Length: 16},
			wantErr: ErrEmptyPool,
		},
		{
			name:    "every selected character excluded",
			opts:    GeneratorOptions{Length: 16, Uppercase: true, Numbers: true, Exclude: uppercaseChars + numberChars},
			wantErr: ErrEmptyPool,
		},
		{
			name: "length shorter than class count",
			opts: GeneratorOptions{
				Length: 2, Uppercase: true, Lowercase: true, Numbers: true, Symbols: true,
			},
			wantErr: ErrInfeasibleConstraints,
		},
		{
			name:    "selected class fully excluded",
			opts:    GeneratorOptions{Length: 16, Lowercase: true, Numbers: true, Exclude: numberChars},
			wantErr: ErrInfeasibleConstraints,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Generate(tt.opts)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Generate() error = %v, want %v", err, tt.wantErr)
				}
				if result != "" {
					t.Error("Generate() should return empty string on error")
				}
				return
			}

			if err != nil {
				t.Fatalf("Generate() unexpected error: %v", err)
			}
			if len(result) != tt.opts.Length {
				t.Errorf("Generate() length = %d, want %d", len(result), tt.opts.Length)
			}
		})
	}
}

func TestGenerateContainsRequiredTypes(t *testing.T) {
	opts := GeneratorOptions{
		Length:    8,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
	}

	for i := 0; i < 50; i++ {
		password, err := Generate(opts)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}

		if !strings.ContainsAny(password, uppercaseChars) {
			t.Errorf("password %q missing uppercase character", password)
		}
		if !strings.ContainsAny(password, lowercaseChars) {
			t.Errorf("password %q missing lowercase character", password)
		}
		if !strings.ContainsAny(password, numberChars) {
			t.Errorf("password %q missing number character", password)
		}
		if !strings.ContainsAny(password, symbolChars) {
			t.Errorf("password %q missing symbol character", password)
		}
	}
}

func TestGenerateSingleTypeContainsOnlyThatType(t *testing.T) {
	tests := []struct {
		name    string
		opts    GeneratorOptions
		charset string
	}{
		{
			name:    "uppercase only",
			opts:    GeneratorOptions{Length: 32, Uppercase: true},
			charset: uppercaseChars,
		},
		{
			name:    "lowercase only",
			opts:    GeneratorOptions{Length: 32, Lowercase: true},
			charset: lowercaseChars,
		},
		{
			name:    "numbers only",
			opts:    GeneratorOptions{Length: 32, Numbers: true},
			charset: numberChars,
		},
		{
			name:    "symbols only",
			opts:    GeneratorOptions{Length: 32, Symbols: true},
			charset: symbolChars,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			password, err := Generate(tt.opts)
			if err != nil {
				t.Fatalf("Generate() unexpected error: %v", err)
			}
			for _, ch := range password {
				if !strings.ContainsRune(tt.charset, ch) {
					t.Errorf("password contains unexpected character %q (not in %q)", string(ch), tt.charset)
				}
			}
		})
	}
}

func TestGenerateHonoursExclusions(t *testing.T) {
	opts := DefaultOptions()
	opts.Length = 64
	opts.Exclude = "O0Il1|`'\""

	for i := 0; i < 20; i++ {
		password, err := Generate(opts)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if strings.ContainsAny(password, opts.Exclude) {
			t.Fatalf("password %q contains an excluded character", password)
		}
	}
}

func TestGeneratorSeededSourceIsReproducible(t *testing.T) {
	opts := DefaultOptions()

	a, err := NewGenerator(NewSeededSource(42)).Generate(opts)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	b, err := NewGenerator(NewSeededSource(42)).Generate(opts)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if a != b {
		t.Errorf("same seed produced %q and %q", a, b)
	}
}

func TestGeneratorRetryLimitExceeded(t *testing.T) {
	// Index 0 is always 'A', so the lowercase requirement is never met.
	g := NewGenerator(constSource(0), WithMaxAttempts(5))

	password, attempts, err := g.GenerateWithStats(GeneratorOptions{Length: 4, Uppercase: true, Lowercase: true})
	if !errors.Is(err, ErrRetryLimitExceeded) {
		t.Fatalf("GenerateWithStats() error = %v, want %v", err, ErrRetryLimitExceeded)
	}
	if password != "" {
		t.Errorf("GenerateWithStats() password = %q, want empty", password)
	}
	if attempts != 5 {
		t.Errorf("GenerateWithStats() attempts = %d, want 5", attempts)
	}
}

func TestGeneratorReportsAttempts(t *testing.T) {
	g := NewGenerator(constSource(0))

	password, attempts, err := g.GenerateWithStats(GeneratorOptions{Length: 3, Uppercase: true})
	if err != nil {
		t.Fatalf("GenerateWithStats() unexpected error: %v", err)
	}
	if password != "AAA" {
		t.Errorf("GenerateWithStats() password = %q, want %q", password, "AAA")
	}
	if attempts != 1 {
		t.Errorf("GenerateWithStats() attempts = %d, want 1", attempts)
	}
}

func TestGeneratorSourceError(t *testing.T) {
	g := NewGenerator(failingSource{})

	_, err := g.Generate(DefaultOptions())
	if err == nil {
		t.Fatal("Generate() expected error from failing source")
	}
	if errors.Is(err, ErrRetryLimitExceeded) {
		t.Errorf("Generate() source failure should not be reported as retry limit: %v", err)
	}
}

func TestGenerateProducesUniquePasswords(t *testing.T) {
	opts := DefaultOptions()
	opts.Length = 16
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		password, err := Generate(opts)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if seen[password] {
			t.Errorf("duplicate password generated: %q", password)
		}
		seen[password] = true
	}
}

func TestValidateOptions(t *testing.T) {
	if err := ValidateOptions(DefaultOptions()); err != nil {
		t.Errorf("ValidateOptions() unexpected error: %v", err)
	}
	if err := ValidateOptions(GeneratorOptions{Length: 3, Uppercase: true, Lowercase: true, Numbers: true, Symbols: true}); !errors.Is(err, ErrInfeasibleConstraints) {
		t.Errorf("ValidateOptions() error = %v, want %v", err, ErrInfeasibleConstraints)
	}
	if err := ValidateOptions(GeneratorOptions{Length: 8, Exclude: "abc"}); !errors.Is(err, ErrEmptyPool) {
		t.Errorf("ValidateOptions() error = %v, want %v", err, ErrEmptyPool)
	}
	long := DefaultOptions()
	long.Exclude = strings.Repeat("a", MaxExcludeLength+1)
	if err := ValidateOptions(long); !errors.Is(err, ErrExcludeTooLong) {
		t.Errorf("ValidateOptions() error = %v, want %v", err, ErrExcludeTooLong)
	}
	long.Exclude = strings.Repeat("a", MaxExcludeLength)
	if err := ValidateOptions(long); err != nil {
		t.Errorf("ValidateOptions() unexpected error at the exclusion limit: %v", err)
	}
}
