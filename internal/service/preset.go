package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mypass/mypass-go/internal/crypto"
	"github.com/mypass/mypass-go/internal/model"
	"github.com/mypass/mypass-go/internal/repository"
)

const maxPresetNameLength = 64

var (
	ErrPresetNameRequired = errors.New("name is required")
	ErrPresetNameTooLong  = errors.New("name must be at most 64 characters")
	ErrPresetNotFound     = errors.New("preset not found")
	ErrPresetNameTaken    = errors.New("preset name already taken")
)

// PresetStore persists presets. Every lookup is scoped to the owning user;
// a preset owned by someone else is reported as repository.ErrPresetNotFound.
type PresetStore interface {
	Create(ctx context.Context, preset *model.Preset) error
	GetByID(ctx context.Context, userID int64, id string) (*model.Preset, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Preset, error)
	Update(ctx context.Context, preset *model.Preset) error
	Delete(ctx context.Context, userID int64, id string) error
}

var _ PresetStore = (*repository.PresetRepository)(nil)

// PresetService handles saved generation presets.
type PresetService struct {
	repo      PresetStore
	generator *GeneratorService
}

// NewPresetService creates a new PresetService.
func NewPresetService(repo PresetStore, gen *GeneratorService) *PresetService {
	return &PresetService{repo: repo, generator: gen}
}

// CreatePreset validates and stores a new preset. Options that could never
// produce a password are rejected before anything is saved.
func (s *PresetService) CreatePreset(ctx context.Context, userID int64, req model.PresetRequest) (model.PresetResponse, error) {
	preset, err := presetFromRequest(userID, req)
	if err != nil {
		return model.PresetResponse{}, err
	}

	if err := s.repo.Create(ctx, &preset); err != nil {
		return model.PresetResponse{}, mapPresetError(err)
	}
	preset.UpdatedAt = time.Now().UTC()

	return presetResponse(preset), nil
}

// UpdatePreset replaces the name and options of an existing preset.
func (s *PresetService) UpdatePreset(ctx context.Context, userID int64, id string, req model.PresetRequest) (model.PresetResponse, error) {
	preset, err := presetFromRequest(userID, req)
	if err != nil {
		return model.PresetResponse{}, err
	}

	existing, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return model.PresetResponse{}, mapPresetError(err)
	}

	preset.ID = existing.ID
	preset.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, &preset); err != nil {
		return model.PresetResponse{}, mapPresetError(err)
	}
	preset.UpdatedAt = time.Now().UTC()

	return presetResponse(preset), nil
}

// DeletePreset removes a preset.
func (s *PresetService) DeletePreset(ctx context.Context, userID int64, id string) error {
	return mapPresetError(s.repo.Delete(ctx, userID, id))
}

// ListPresets returns all presets owned by a user.
func (s *PresetService) ListPresets(ctx context.Context, userID int64) ([]model.PresetResponse, error) {
	presets, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]model.PresetResponse, len(presets))
	for i, p := range presets {
		result[i] = presetResponse(p)
	}
	return result, nil
}

// GenerateFromPreset generates count passwords using a saved preset.
func (s *PresetService) GenerateFromPreset(ctx context.Context, userID int64, id string, count int) (model.GenerateResponse, error) {
	preset, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return model.GenerateResponse{}, mapPresetError(err)
	}

	return s.generator.Generate(model.GenerateRequest{
		Length:    preset.Length,
		Uppercase: &preset.Uppercase,
		Lowercase: &preset.Lowercase,
		Numbers:   &preset.Numbers,
		Symbols:   &preset.Symbols,
		Exclude:   preset.Exclude,
		Count:     count,
	})
}

func presetFromRequest(userID int64, req model.PresetRequest) (model.Preset, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return model.Preset{}, ErrPresetNameRequired
	}
	if utf8.RuneCountInString(name) > maxPresetNameLength {
		return model.Preset{}, ErrPresetNameTooLong
	}

	opts := OptionsFromRequest(req.Options())
	if err := crypto.ValidateOptions(opts); err != nil {
		return model.Preset{}, err
	}
	opts.Exclude = crypto.NormalizeExclude(opts.Exclude)

	return model.Preset{
		UserID:    userID,
		Name:      name,
		Length:    opts.Length,
		Uppercase: opts.Uppercase,
		Lowercase: opts.Lowercase,
		Numbers:   opts.Numbers,
		Symbols:   opts.Symbols,
		Exclude:   opts.Exclude,
	}, nil
}

func mapPresetError(err error) error {
	switch {
	case errors.Is(err, repository.ErrPresetNotFound):
		return ErrPresetNotFound
	case errors.Is(err, repository.ErrDuplicatePresetName):
		return ErrPresetNameTaken
	default:
		return err
	}
}

func presetResponse(p model.Preset) model.PresetResponse {
	return model.PresetResponse{
		ID:        p.ID,
		Name:      p.Name,
		Length:    p.Length,
		Uppercase: p.Uppercase,
		Lowercase: p.Lowercase,
		Numbers:   p.Numbers,
		Symbols:   p.Symbols,
		Exclude:   p.Exclude,
		UpdatedAt: p.UpdatedAt,
	}
}
