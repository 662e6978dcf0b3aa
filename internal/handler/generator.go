package handler

import (
	"errors"
	"net/http"

	"github.com/mypass/mypass-go/internal/crypto"
	"github.com/mypass/mypass-go/internal/model"
	"github.com/mypass/mypass-go/internal/service"
)

// GeneratorHandler handles HTTP requests for password generation and strength checks.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandleGenerate handles POST /api/v1/generate requests. An empty body uses the defaults.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if !decodeJSON(w, r, &req, true) {
		return
	}

	resp, err := h.service.Generate(req)
	if err != nil {
		writeGenerateError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleStrength handles POST /api/v1/strength requests.
func (h *GeneratorHandler) HandleStrength(w http.ResponseWriter, r *http.Request) {
	var req model.StrengthRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	writeJSON(w, http.StatusOK, h.service.EvaluateStrength(req))
}

// writeGenerateError maps generation failures to status codes.
func writeGenerateError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case service.IsValidationError(err):
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, crypto.ErrRetryLimitExceeded):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse(err.Error()))
	default:
		internalError(w, r, err)
	}
}
