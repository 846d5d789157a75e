// Package v1handler implements the v1 HTTP handlers: scan intake and
// queries, calibration profiles, predictions and recommendations. Handlers
// stay thin; they decode, call the intake service and map semantic errors to
// status codes.
package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"bodycomp/internal/intake"
	"bodycomp/pkg/logger"
	"bodycomp/pkg/serrors"

	"github.com/go-chi/chi/v5"
)

// DefaultLimit is the page size used when a list request does not set one.
const DefaultLimit = 20

// MaxLimit caps the page size a caller may request.
const MaxLimit = 100

// Deps are the collaborators handlers need.
type Deps struct {
	Intake intake.Intake
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes mounts every v1 endpoint on the given router. Authentication is the
// caller's concern; all routes assume a user ID in the request context.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/scans", h.CreateScan)
	r.Get("/scans", h.ListScans)
	r.Get("/scans/{scanID}", h.GetScan)
	r.Delete("/scans/{scanID}", h.DeleteScan)

	r.Get("/profile", h.GetProfile)
	r.Get("/calibration", h.GetCalibration)

	r.Post("/predictions", h.CreatePrediction)
	r.Post("/predictions/timeline", h.CreateTimeline)
	r.Post("/recommendations", h.CreateRecommendations)
}

// ErrorResponse is the JSON error envelope of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error(ctx, "could not encode response: "+err.Error())
	}
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return nil
}

// statusFor maps a semantic error kind to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, serrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, serrors.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, serrors.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, serrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, serrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, serrors.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, serrors.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders an error response. Client-caused errors carry their
// message through; everything else is logged and masked as an internal error
// so no storage or queue detail leaks.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error(ctx, err.Error())
		writeJSON(ctx, w, status, ErrorResponse{Error: "internal error"})

		return
	}

	msg := err.Error()
	var sErr *serrors.Error
	if errors.As(err, &sErr) && sErr.Message() != "" {
		msg = sErr.Message()
	}

	writeJSON(ctx, w, status, ErrorResponse{Error: msg})
}
