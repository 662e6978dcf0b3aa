package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mypass/mypass-go/internal/crypto"
	"github.com/mypass/mypass-go/internal/middleware"
	"github.com/mypass/mypass-go/internal/model"
	"github.com/mypass/mypass-go/internal/service"
)

// PresetHandler handles HTTP requests for saved generation presets.
type PresetHandler struct {
	service *service.PresetService
}

// NewPresetHandler creates a new PresetHandler.
func NewPresetHandler(svc *service.PresetService) *PresetHandler {
	return &PresetHandler{service: svc}
}

// HandleListPresets handles GET /api/v1/presets requests.
func (h *PresetHandler) HandleListPresets(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	presets, err := h.service.ListPresets(r.Context(), userID)
	if err != nil {
		internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, presets)
}

// HandleCreatePreset handles POST /api/v1/presets requests.
func (h *PresetHandler) HandleCreatePreset(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.PresetRequest
	if !decodeStrictJSON(w, r, &req) {
		return
	}

	resp, err := h.service.CreatePreset(r.Context(), userID, req)
	if err != nil {
		writePresetError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleUpdatePreset handles PUT /api/v1/presets/{id} requests.
func (h *PresetHandler) HandleUpdatePreset(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	id, ok := presetID(w, r)
	if !ok {
		return
	}

	var req model.PresetRequest
	if !decodeStrictJSON(w, r, &req) {
		return
	}

	resp, err := h.service.UpdatePreset(r.Context(), userID, id, req)
	if err != nil {
		writePresetError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleDeletePreset handles DELETE /api/v1/presets/{id} requests.
func (h *PresetHandler) HandleDeletePreset(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	id, ok := presetID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeletePreset(r.Context(), userID, id); err != nil {
		writePresetError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleGenerateFromPreset handles POST /api/v1/presets/{id}/generate?count=N requests.
func (h *PresetHandler) HandleGenerateFromPreset(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	id, ok := presetID(w, r)
	if !ok {
		return
	}

	count := 1
	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse("invalid count"))
			return
		}
		count = n
	}

	resp, err := h.service.GenerateFromPreset(r.Context(), userID, id, count)
	if err != nil {
		writePresetError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// presetID validates the {id} URL parameter as a UUID.
func presetID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid preset id"))
		return "", false
	}
	return id.String(), true
}

func writePresetError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrPresetNameRequired),
		errors.Is(err, service.ErrPresetNameTooLong),
		service.IsValidationError(err):
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, service.ErrPresetNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
	case errors.Is(err, service.ErrPresetNameTaken):
		writeJSON(w, http.StatusConflict, errorResponse(err.Error()))
	case errors.Is(err, crypto.ErrRetryLimitExceeded):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse(err.Error()))
	default:
		internalError(w, r, err)
	}
}
