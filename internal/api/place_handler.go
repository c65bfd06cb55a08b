package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/hbnb-api/internal/api/shared"
	"github.com/phrazzld/hbnb-api/internal/domain"
	"github.com/phrazzld/hbnb-api/internal/platform/logger"
)

// PlaceHandler handles place-related HTTP requests, including the place's
// amenity and review sub-collections.
type PlaceHandler struct {
	places PlaceService
	logger *slog.Logger
}

// NewPlaceHandler creates a new PlaceHandler
func NewPlaceHandler(places PlaceService, logger *slog.Logger) *PlaceHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for PlaceHandler")
	}

	return &PlaceHandler{
		places: places,
		logger: logger.With(slog.String("component", "place_handler")),
	}
}

// CreatePlace handles POST /places requests
func (h *PlaceHandler) CreatePlace(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreatePlaceRequest
	if !decodeRequest(w, r, &req, log) {
		return
	}

	place, err := h.places.CreatePlace(r.Context(), req.toInput())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create place")
		return
	}

	log.Debug("place created",
		slog.String("place_id", place.ID.String()),
		slog.String("owner_id", place.OwnerID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, placeToResponse(place))
}

// ListPlaces handles GET /places requests
func (h *PlaceHandler) ListPlaces(w http.ResponseWriter, r *http.Request) {
	details := h.places.GetAllPlaceDetails(r.Context())

	response := make([]PlaceDetailsResponse, len(details))
	for i, d := range details {
		response[i] = placeDetailsToResponse(d)
	}
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// GetPlace handles GET /places/{id} requests
func (h *PlaceHandler) GetPlace(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathUUID(w, r, "id", domain.ErrPlaceNotFound, log)
	if !ok {
		return
	}

	details, err := h.places.GetPlaceDetails(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get place")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, placeDetailsToResponse(details))
}

// UpdatePlace handles PUT /places/{id} requests
func (h *PlaceHandler) UpdatePlace(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathUUID(w, r, "id", domain.ErrPlaceNotFound, log)
	if !ok {
		return
	}

	var req UpdatePlaceRequest
	if !decodeRequest(w, r, &req, log) {
		return
	}
	in := req.toInput()
	if in.IsEmpty() {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgNoData)
		return
	}

	place, err := h.places.UpdatePlace(r.Context(), id, in)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update place")
		return
	}

	log.Debug("place updated", slog.String("place_id", place.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, placeToResponse(place))
}

// DeletePlace handles DELETE /places/{id} requests. The place's reviews are
// deleted with it.
func (h *PlaceHandler) DeletePlace(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathUUID(w, r, "id", domain.ErrPlaceNotFound, log)
	if !ok {
		return
	}

	if err := h.places.DeletePlace(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete place")
		return
	}

	log.Debug("place deleted", slog.String("place_id", id.String()))
	shared.RespondWithNoContent(w)
}

// ListAmenities handles GET /places/{id}/amenities requests
func (h *PlaceHandler) ListAmenities(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathUUID(w, r, "id", domain.ErrPlaceNotFound, log)
	if !ok {
		return
	}

	amenities, err := h.places.GetPlaceAmenities(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list place amenities")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, amenitiesToResponse(amenities))
}

// AddAmenity handles POST /places/{id}/amenities/{amenity_id} requests.
// Linking an amenity that is already linked succeeds without changes.
func (h *PlaceHandler) AddAmenity(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	placeID, ok := handlePathUUID(w, r, "id", domain.ErrPlaceNotFound, log)
	if !ok {
		return
	}
	amenityID, ok := handlePathUUID(w, r, "amenity_id", domain.ErrAmenityNotFound, log)
	if !ok {
		return
	}

	if _, err := h.places.AddAmenityToPlace(r.Context(), placeID, amenityID); err != nil {
		HandleAPIError(w, r, err, "Failed to add amenity to place")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AmenityLinkResponse{
		Message:   "Amenity added to place",
		PlaceID:   placeID.String(),
		AmenityID: amenityID.String(),
	})
}

// ListReviews handles GET /places/{id}/reviews requests
func (h *PlaceHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathUUID(w, r, "id", domain.ErrPlaceNotFound, log)
	if !ok {
		return
	}

	reviews, err := h.places.GetPlaceReviews(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list place reviews")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, reviewsToResponse(reviews))
}
