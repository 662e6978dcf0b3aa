package service

import (
	"errors"

	"github.com/mypass/mypass-go/internal/crypto"
	"github.com/mypass/mypass-go/internal/metrics"
	"github.com/mypass/mypass-go/internal/model"
)

const MaxCount = 50

var ErrCountOutOfRange = errors.New("count must be between 1 and 50")

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	generator *crypto.Generator
}

// NewGeneratorService creates a new GeneratorService. A nil generator uses crypto/rand.
func NewGeneratorService(gen *crypto.Generator) *GeneratorService {
	if gen == nil {
		gen = crypto.NewGenerator(nil)
	}
	return &GeneratorService{generator: gen}
}

// Generate produces one or more passwords based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	count := req.Count
	if count == 0 {
		count = 1
	}
	if count < 1 || count > MaxCount {
		return model.GenerateResponse{}, ErrCountOutOfRange
	}

	return s.generate(OptionsFromRequest(req), count)
}

// EvaluateStrength classifies a password of any origin.
func (s *GeneratorService) EvaluateStrength(req model.StrengthRequest) model.StrengthResponse {
	analysis := crypto.Analyze(req.Password)
	metrics.StrengthEvaluations.WithLabelValues(analysis.Strength.String()).Inc()
	return analysis
}

func (s *GeneratorService) generate(opts crypto.GeneratorOptions, count int) (model.GenerateResponse, error) {
	passwords := make([]model.GeneratedPassword, 0, count)
	for i := 0; i < count; i++ {
		password, attempts, err := s.generator.GenerateWithStats(opts)
		if err != nil {
			metrics.ObserveFailure(err)
			return model.GenerateResponse{}, err
		}

		strength := crypto.EvaluateStrength(password)
		metrics.ObserveGenerated(strength, attempts)
		passwords = append(passwords, model.GeneratedPassword{
			Password: password,
			Length:   len(password),
			Strength: strength,
		})
	}

	return model.GenerateResponse{
		Password:  passwords[0].Password,
		Length:    passwords[0].Length,
		Strength:  passwords[0].Strength,
		Passwords: passwords,
	}, nil
}

// OptionsFromRequest applies defaults: unset character types are enabled and
// a zero length becomes crypto.DefaultLength.
func OptionsFromRequest(req model.GenerateRequest) crypto.GeneratorOptions {
	opts := crypto.GeneratorOptions{
		Length:    req.Length,
		Uppercase: boolOrDefault(req.Uppercase, true),
		Lowercase: boolOrDefault(req.Lowercase, true),
		Numbers:   boolOrDefault(req.Numbers, true),
		Symbols:   boolOrDefault(req.Symbols, true),
		Exclude:   req.Exclude,
	}

	if opts.Length == 0 {
		opts.Length = crypto.DefaultLength
	}
	return opts
}

// IsValidationError reports whether err is caused by the request rather than the server.
func IsValidationError(err error) bool {
	return errors.Is(err, crypto.ErrLengthTooShort) ||
		errors.Is(err, crypto.ErrLengthTooLong) ||
		errors.Is(err, crypto.ErrEmptyPool) ||
		errors.Is(err, crypto.ErrInfeasibleConstraints) ||
		errors.Is(err, crypto.ErrExcludeTooLong) ||
		errors.Is(err, ErrCountOutOfRange)
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
