package crypto

import (
	"errors"
	"fmt"
)

const (
	MinLength = 1
	MaxLength = 128

	DefaultLength      = 12
	DefaultMaxAttempts = 10000

	// MaxExcludeLength bounds the raw exclusion list accepted from callers.
	MaxExcludeLength = 1024
)

var (
	ErrLengthTooShort        = errors.New("password length must be at least 1")
	ErrLengthTooLong         = errors.New("password length must be at most 128")
	ErrInfeasibleConstraints = errors.New("password length cannot cover every selected character type")
	ErrRetryLimitExceeded    = errors.New("password generation exceeded its retry limit")
	ErrExcludeTooLong        = errors.New("exclusion list must be at most 1024 characters")
)

// GeneratorOptions configures the password generator.
type GeneratorOptions struct {
	Length    int
	Uppercase bool
	Lowercase bool
	Numbers   bool
	Symbols   bool
	// Exclude lists characters that must never appear. Order and duplicates are ignored.
	Exclude string
}

// DefaultOptions returns 12 characters with all types enabled and nothing excluded.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:    DefaultLength,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

// Generator draws passwords from a Source by rejection sampling.
type Generator struct {
	source      Source
	maxAttempts int
}

// GeneratorOption customizes a Generator.
type GeneratorOption func(*Generator)

// WithMaxAttempts bounds the number of whole-password draws before giving up.
func WithMaxAttempts(n int) GeneratorOption {
	return func(g *Generator) {
		if n > 0 {
			g.maxAttempts = n
		}
	}
}

// NewGenerator creates a Generator over the given source. A nil source falls back to crypto/rand.
func NewGenerator(source Source, opts ...GeneratorOption) *Generator {
	if source == nil {
		source = NewCryptoSource()
	}
	g := &Generator{source: source, maxAttempts: DefaultMaxAttempts}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var defaultGenerator = NewGenerator(NewCryptoSource())

// Generate creates a random password with the default crypto/rand backed generator.
func Generate(opts GeneratorOptions) (string, error) {
	return defaultGenerator.Generate(opts)
}

// Generate creates a random password based on the given options.
func (g *Generator) Generate(opts GeneratorOptions) (string, error) {
	password, _, err := g.GenerateWithStats(opts)
	return password, err
}

// GenerateWithStats behaves like Generate and also reports how many candidate
// passwords were drawn before one satisfied every selected character type.
func (g *Generator) GenerateWithStats(opts GeneratorOptions) (string, int, error) {
	pool, required, err := prepare(opts)
	if err != nil {
		return "", 0, err
	}

	candidate := make([]byte, opts.Length)
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		for i := range candidate {
			idx, err := g.source.Intn(len(pool))
			if err != nil {
				return "", attempt, fmt.Errorf("drawing random character: %w", err)
			}
			candidate[i] = pool[idx]
		}

		if coversAll(candidate, required) {
			return string(candidate), attempt, nil
		}
	}

	return "", g.maxAttempts, ErrRetryLimitExceeded
}

// ValidateOptions reports whether opts can ever produce a password, without drawing one.
func ValidateOptions(opts GeneratorOptions) error {
	_, _, err := prepare(opts)
	return err
}

// prepare checks opts in order: length bounds, pool, then class coverage feasibility.
func prepare(opts GeneratorOptions) (Pool, []charClass, error) {
	if opts.Length < MinLength {
		return nil, nil, ErrLengthTooShort
	}
	if opts.Length > MaxLength {
		return nil, nil, ErrLengthTooLong
	}
	if len(opts.Exclude) > MaxExcludeLength {
		return nil, nil, ErrExcludeTooLong
	}

	pool, err := BuildPool(opts)
	if err != nil {
		return nil, nil, err
	}

	required := activeClasses(opts)
	if opts.Length < len(required) {
		return nil, nil, ErrInfeasibleConstraints
	}
	for _, class := range required {
		if !pool.coversAny(class) {
			return nil, nil, fmt.Errorf("%w: every %s character is excluded", ErrInfeasibleConstraints, class.name)
		}
	}
	return pool, required, nil
}

func (p Pool) coversAny(class charClass) bool {
	for _, ch := range p {
		if class.contains(ch) {
			return true
		}
	}
	return false
}

// coversAll reports whether candidate holds at least one character of every class.
func coversAll(candidate []byte, classes []charClass) bool {
	for _, class := range classes {
		found := false
		for _, ch := range candidate {
			if class.contains(ch) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
