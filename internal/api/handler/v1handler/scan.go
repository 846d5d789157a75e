package v1handler

import (
	"net/http"
	"strconv"

	"bodycomp/internal/intake"
	"bodycomp/pkg/domain"
	"bodycomp/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ScanList is a page of scans plus the cursor of the next page, empty when
// this is the last one.
type ScanList struct {
	Items      []domain.ScanRecord `json:"items"`
	NextCursor string              `json:"nextCursor,omitempty"`
}

// CreateScan stores a new scan based on the provided request payload.
func (h *Handler) CreateScan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var submission intake.ScanSubmission
	if err := decodeJSON(r, &submission); err != nil {
		writeError(ctx, w, err)

		return
	}

	scan, err := h.deps.Intake.Submit(ctx, GetUserIDFromContext(ctx), submission)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusCreated, scan)
}

// ListScans returns a paginated list of the user's scans, newest first.
func (h *Handler) ListScans(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := uint(DefaultLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || parsed == 0 || parsed > MaxLimit {
			writeError(ctx, w, serrors.With(serrors.ErrBadRequest, "invalid limit"))

			return
		}
		limit = uint(parsed)
	}

	scans, nextCursor, err := h.deps.Intake.UserScans(ctx,
		GetUserIDFromContext(ctx),
		r.URL.Query().Get("cursor"),
		limit)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	if scans == nil {
		scans = []domain.ScanRecord{}
	}
	writeJSON(ctx, w, http.StatusOK, ScanList{Items: scans, NextCursor: nextCursor})
}

// GetScan returns details of a scan by ID.
func (h *Handler) GetScan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	scanID, err := scanIDParam(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	scan, err := h.deps.Intake.Scan(ctx, GetUserIDFromContext(ctx), scanID)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, scan)
}

// DeleteScan deletes a scan by ID.
func (h *Handler) DeleteScan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	scanID, err := scanIDParam(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	if err := h.deps.Intake.Delete(ctx, GetUserIDFromContext(ctx), scanID); err != nil {
		writeError(ctx, w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func scanIDParam(r *http.Request) (domain.ScanID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "scanID"))
	if err != nil {
		return domain.ScanID{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid scan id")
	}

	return domain.ScanID(id), nil
}
