package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/hbnb-api/internal/api/shared"
	"github.com/phrazzld/hbnb-api/internal/domain"
	"github.com/phrazzld/hbnb-api/internal/platform/logger"
)

// ReviewHandler handles review-related HTTP requests
type ReviewHandler struct {
	reviews ReviewService
	logger  *slog.Logger
}

// NewReviewHandler creates a new ReviewHandler
func NewReviewHandler(reviews ReviewService, logger *slog.Logger) *ReviewHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ReviewHandler")
	}

	return &ReviewHandler{
		reviews: reviews,
		logger:  logger.With(slog.String("component", "review_handler")),
	}
}

// CreateReview handles POST /reviews requests
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateReviewRequest
	if !decodeRequest(w, r, &req, log) {
		return
	}

	review, err := h.reviews.CreateReview(r.Context(), req.toInput())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create review")
		return
	}

	log.Debug("review created",
		slog.String("review_id", review.ID.String()),
		slog.String("place_id", review.PlaceID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, reviewToResponse(review))
}

// ListReviews handles GET /reviews requests
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, reviewsToResponse(h.reviews.GetAllReviews(r.Context())))
}

// GetReview handles GET /reviews/{id} requests
func (h *ReviewHandler) GetReview(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathUUID(w, r, "id", domain.ErrReviewNotFound, log)
	if !ok {
		return
	}

	review, err := h.reviews.GetReview(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get review")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, reviewToResponse(review))
}

// UpdateReview handles PUT /reviews/{id} requests
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathUUID(w, r, "id", domain.ErrReviewNotFound, log)
	if !ok {
		return
	}

	var req UpdateReviewRequest
	if !decodeRequest(w, r, &req, log) {
		return
	}
	patch := req.toPatch()
	if patch.IsEmpty() {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgNoData)
		return
	}

	review, err := h.reviews.UpdateReview(r.Context(), id, patch)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update review")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, reviewToResponse(review))
}

// DeleteReview handles DELETE /reviews/{id} requests
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathUUID(w, r, "id", domain.ErrReviewNotFound, log)
	if !ok {
		return
	}

	if err := h.reviews.DeleteReview(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete review")
		return
	}

	log.Debug("review deleted", slog.String("review_id", id.String()))
	shared.RespondWithNoContent(w)
}
