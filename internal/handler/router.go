package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/mypass/mypass-go/internal/metrics"
	"github.com/mypass/mypass-go/internal/middleware"
)

// RouterConfig wires handlers into the API router. Auth and Preset are nil when
// no database is available, which disables the account routes.
type RouterConfig struct {
	Generator      *GeneratorHandler
	Auth           *AuthHandler
	Preset         *PresetHandler
	JWTSecret      string
	RateLimitRPS   float64
	RateLimitBurst int
	Metrics        bool
}

// NewRouter builds the HTTP API.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	if cfg.Metrics {
		r.Handle("/metrics", metrics.Handler())
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
		r.Post("/api/v1/generate", cfg.Generator.HandleGenerate)
		r.Post("/api/v1/strength", cfg.Generator.HandleStrength)
	})

	if cfg.Auth == nil || cfg.Preset == nil {
		return r
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/api/v1/auth/register", cfg.Auth.HandleRegister)
		r.Post("/api/v1/auth/login", cfg.Auth.HandleLogin)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))
		r.Get("/api/v1/auth/me", cfg.Auth.HandleMe)

		r.Route("/api/v1/presets", func(r chi.Router) {
			r.Get("/", cfg.Preset.HandleListPresets)
			r.Post("/", cfg.Preset.HandleCreatePreset)
			r.Put("/{id}", cfg.Preset.HandleUpdatePreset)
			r.Delete("/{id}", cfg.Preset.HandleDeletePreset)
			r.Post("/{id}/generate", cfg.Preset.HandleGenerateFromPreset)
		})
	})

	return r
}
