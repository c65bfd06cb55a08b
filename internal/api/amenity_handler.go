package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/hbnb-api/internal/api/shared"
	"github.com/phrazzld/hbnb-api/internal/domain"
	"github.com/phrazzld/hbnb-api/internal/platform/logger"
)

// AmenityHandler handles amenity-related HTTP requests
type AmenityHandler struct {
	amenities AmenityService
	logger    *slog.Logger
}

// NewAmenityHandler creates a new AmenityHandler
func NewAmenityHandler(amenities AmenityService, logger *slog.Logger) *AmenityHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for AmenityHandler")
	}

	return &AmenityHandler{
		amenities: amenities,
		logger:    logger.With(slog.String("component", "amenity_handler")),
	}
}

// CreateAmenity handles POST /amenities requests
func (h *AmenityHandler) CreateAmenity(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateAmenityRequest
	if !decodeRequest(w, r, &req, log) {
		return
	}

	amenity, err := h.amenities.CreateAmenity(r.Context(), req.Name, req.Description)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create amenity")
		return
	}

	log.Debug("amenity created", slog.String("amenity_id", amenity.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, amenityToResponse(amenity))
}

// ListAmenities handles GET /amenities requests
func (h *AmenityHandler) ListAmenities(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, amenitiesToResponse(h.amenities.GetAllAmenities(r.Context())))
}

// GetAmenity handles GET /amenities/{id} requests
func (h *AmenityHandler) GetAmenity(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathUUID(w, r, "id", domain.ErrAmenityNotFound, log)
	if !ok {
		return
	}

	amenity, err := h.amenities.GetAmenity(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get amenity")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, amenityToResponse(amenity))
}

// UpdateAmenity handles PUT /amenities/{id} requests
func (h *AmenityHandler) UpdateAmenity(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathUUID(w, r, "id", domain.ErrAmenityNotFound, log)
	if !ok {
		return
	}

	var req UpdateAmenityRequest
	if !decodeRequest(w, r, &req, log) {
		return
	}
	patch := req.toPatch()
	if patch.IsEmpty() {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgNoData)
		return
	}

	amenity, err := h.amenities.UpdateAmenity(r.Context(), id, patch)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update amenity")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, amenityToResponse(amenity))
}

// DeleteAmenity handles DELETE /amenities/{id} requests
func (h *AmenityHandler) DeleteAmenity(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathUUID(w, r, "id", domain.ErrAmenityNotFound, log)
	if !ok {
		return
	}

	if err := h.amenities.DeleteAmenity(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete amenity")
		return
	}

	log.Debug("amenity deleted", slog.String("amenity_id", id.String()))
	shared.RespondWithNoContent(w)
}
