package metrics

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mypass/mypass-go/internal/crypto"
)

var (
	PasswordsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mypass_passwords_generated_total",
			Help: "Total number of generated passwords by strength verdict",
		},
		[]string{"strength"},
	)

	GenerationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mypass_generation_failures_total",
			Help: "Total number of failed generation requests by reason",
		},
		[]string{"reason"},
	)

	GenerationAttempts = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mypass_generation_attempts",
			Help:    "Candidate passwords drawn per successful generation",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		},
	)

	StrengthEvaluations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mypass_strength_evaluations_total",
			Help: "Total number of strength evaluations by verdict",
		},
		[]string{"strength"},
	)
)

// ObserveGenerated records a successful generation.
func ObserveGenerated(strength crypto.Strength, attempts int) {
	PasswordsGenerated.WithLabelValues(strength.String()).Inc()
	GenerationAttempts.Observe(float64(attempts))
}

// ObserveFailure records a failed generation under a bounded reason label.
func ObserveFailure(err error) {
	GenerationFailures.WithLabelValues(FailureReason(err)).Inc()
}

// FailureReason maps a generation error to a metric label.
func FailureReason(err error) string {
	switch {
	case errors.Is(err, crypto.ErrEmptyPool):
		return "empty_pool"
	case errors.Is(err, crypto.ErrInfeasibleConstraints):
		return "infeasible"
	case errors.Is(err, crypto.ErrRetryLimitExceeded):
		return "retry_limit"
	case errors.Is(err, crypto.ErrLengthTooShort), errors.Is(err, crypto.ErrLengthTooLong):
		return "length"
	case errors.Is(err, crypto.ErrExcludeTooLong):
		return "exclude"
	default:
		return "internal"
	}
}

// Handler exposes the default registry for scraping.
func Handler() http.Handler {
	return promhttp.Handler()
}
