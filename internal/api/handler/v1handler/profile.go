package v1handler

import "net/http"

// GetProfile returns the user's calibration profile with scan history
// attached. Uncalibrated users get a fresh profile, not a 404.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	profile, err := h.deps.Intake.Profile(ctx, GetUserIDFromContext(ctx))
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, profile)
}

// GetCalibration returns the full calibration report: a fresh run over the
// current history with every pair analysis, and the scans still needed per
// confidence level.
func (h *Handler) GetCalibration(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	report, err := h.deps.Intake.Calibration(ctx, GetUserIDFromContext(ctx))
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, report)
}
