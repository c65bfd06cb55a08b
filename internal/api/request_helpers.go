package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/hbnb-api/internal/api/shared"
	"github.com/phrazzld/hbnb-api/internal/domain"
)

// getPathUUID extracts a UUID from the URL path parameters. A missing or
// malformed value cannot name a stored entity, so it reports notFound.
func getPathUUID(r *http.Request, paramName string, notFound error) (uuid.UUID, error) {
	id, ok := domain.ParseID(chi.URLParam(r, paramName))
	if !ok {
		return uuid.Nil, notFound
	}
	return id, nil
}

// handlePathUUID is getPathUUID that writes the error response itself.
// It returns false if a response has been written.
func handlePathUUID(
	w http.ResponseWriter,
	r *http.Request,
	paramName string,
	notFound error,
	log *slog.Logger,
) (uuid.UUID, bool) {
	id, err := getPathUUID(r, paramName, notFound)
	if err != nil {
		log.Debug("unresolvable path parameter",
			slog.String("param_name", paramName),
			slog.String("value", chi.URLParam(r, paramName)))
		HandleAPIError(w, r, err, "")
		return uuid.Nil, false
	}
	return id, true
}

// decodeRequest decodes and validates a JSON body into req, writing a 400
// response on failure. It returns false if a response has been written.
func decodeRequest(w http.ResponseWriter, r *http.Request, req interface{}, log *slog.Logger) bool {
	if err := shared.DecodeJSON(r, req); err != nil {
		log.Debug("failed to decode request body", slog.String("error", err.Error()))
		switch {
		case errors.Is(err, io.EOF):
			shared.RespondWithError(w, r, http.StatusBadRequest, msgNoData)
		case domain.IsValidation(err):
			HandleAPIError(w, r, err, "")
		default:
			shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, msgInvalidRequest, err)
		}
		return false
	}

	if n, ok := req.(normalizer); ok {
		n.normalize()
	}

	if err := shared.ValidateRequest(req); err != nil {
		HandleAPIError(w, r, err, "")
		return false
	}
	return true
}

// normalizer is implemented by requests that accept alias fields.
type normalizer interface {
	normalize()
}
