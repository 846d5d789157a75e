package v1handler

import (
	"net/http"

	"bodycomp/internal/intake"
	"bodycomp/internal/recommend"
)

// CreatePrediction projects the user's composition at a target weight.
func (h *Handler) CreatePrediction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req intake.PredictionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)

		return
	}

	report, err := h.deps.Intake.Predict(ctx, GetUserIDFromContext(ctx), req)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, report)
}

// CreateTimeline answers duration questions around a weight target.
func (h *Handler) CreateTimeline(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req intake.TimelineRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)

		return
	}

	report, err := h.deps.Intake.Timeline(ctx, GetUserIDFromContext(ctx), req)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, report)
}

// RecommendationList wraps suggestions so the payload stays extensible.
type RecommendationList struct {
	Items []recommend.Suggestion `json:"items"`
}

// CreateRecommendations derives prioritized coaching suggestions from the
// user's latest scan and the submitted behavior.
func (h *Handler) CreateRecommendations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var behavior intake.Behavior
	if err := decodeJSON(r, &behavior); err != nil {
		writeError(ctx, w, err)

		return
	}

	suggestions, err := h.deps.Intake.Recommend(ctx, GetUserIDFromContext(ctx), behavior)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	if suggestions == nil {
		suggestions = []recommend.Suggestion{}
	}
	writeJSON(ctx, w, http.StatusOK, RecommendationList{Items: suggestions})
}
