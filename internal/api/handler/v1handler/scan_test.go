package v1handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bodycomp/internal/api/handler/v1handler"
	"bodycomp/internal/intake"
	"bodycomp/internal/recommend"
	"bodycomp/pkg/domain"
	"bodycomp/pkg/serrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_CreateScan(t *testing.T) {
	m, r := newTestRouter(t)

	submission := intake.ScanSubmission{
		Date:          time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC),
		TotalMassKg:   90,
		FatMassKg:     27,
		LeanMassKg:    60,
		BoneMineralKg: 3,
		Conditions: domain.ScanConditions{
			TimeOfDay:    domain.TimeOfDayMorning,
			Hydration:    domain.HydrationNormal,
			SameProvider: true,
		},
	}

	stored := domain.ScanRecord{
		ID:          domain.ScanID(uuid.New()),
		Date:        submission.Date,
		TotalMassKg: 90,
		FatMassKg:   27,
		LeanMassKg:  60,
		Confidence:  domain.ScanConfidenceHigh,
	}
	m.EXPECT().Submit(gomock.Any(), domain.UserID{}, gomock.Any()).DoAndReturn(
		func(_ any, _ domain.UserID, got intake.ScanSubmission) (*domain.ScanRecord, error) {
			require.True(t, got.Date.Equal(submission.Date))
			require.InDelta(t, 90, got.TotalMassKg, 1e-9)
			require.Equal(t, domain.TimeOfDayMorning, got.Conditions.TimeOfDay)

			return &stored, nil
		},
	)

	body, err := json.Marshal(submission)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/scans", bytes.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	var got domain.ScanRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, stored.ID, got.ID)
	require.Equal(t, domain.ScanConfidenceHigh, got.Confidence)
}

func TestHandler_CreateScan_InvalidBody(t *testing.T) {
	_, r := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/scans", bytes.NewReader([]byte("{not json"))))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_CreateScan_ValidationFailure(t *testing.T) {
	m, r := newTestRouter(t)

	m.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, serrors.With(serrors.ErrValidation, "component masses exceed total mass"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/scans", bytes.NewReader([]byte("{}"))))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.JSONEq(t, `{"error":"component masses exceed total mass"}`, rec.Body.String())
}

func TestHandler_GetScan(t *testing.T) {
	m, r := newTestRouter(t)

	id := uuid.New()
	m.EXPECT().Scan(gomock.Any(), domain.UserID{}, domain.ScanID(id)).
		Return(&domain.ScanRecord{ID: domain.ScanID(id), TotalMassKg: 90}, nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/scans/"+id.String(), nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.ScanRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, domain.ScanID(id), got.ID)
}

func TestHandler_GetScan_InvalidID(t *testing.T) {
	_, r := newTestRouter(t)
	// no intake call expected

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/scans/not-a-uuid", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_DeleteScan(t *testing.T) {
	m, r := newTestRouter(t)

	id := uuid.New()
	m.EXPECT().Delete(gomock.Any(), domain.UserID{}, domain.ScanID(id)).Return(nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/scans/"+id.String(), nil))

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.String())
}

func TestHandler_ListScans_DefaultLimitAndCursor(t *testing.T) {
	m, r := newTestRouter(t)

	next := time.Now().UTC().Truncate(time.Second).Format(time.RFC3339)
	m.EXPECT().UserScans(gomock.Any(), domain.UserID{}, "", uint(v1handler.DefaultLimit)).
		Return([]domain.ScanRecord{{TotalMassKg: 90}}, next, nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/scans", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got v1handler.ScanList
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Items, 1)
	require.Equal(t, next, got.NextCursor)
}

func TestHandler_ListScans_CustomLimit_NoNextCursor(t *testing.T) {
	m, r := newTestRouter(t)

	cursor := "2025-01-01T00:00:00Z"
	m.EXPECT().UserScans(gomock.Any(), domain.UserID{}, cursor, uint(5)).
		Return(nil, "", nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/scans?limit=5&cursor="+cursor, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got v1handler.ScanList
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Empty(t, got.Items)
	require.Empty(t, got.NextCursor)
}

func TestHandler_ListScans_InvalidLimit(t *testing.T) {
	_, r := newTestRouter(t)

	for _, limit := range []string{"0", "-3", "abc", "500"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/scans?limit="+limit, nil))
		require.Equal(t, http.StatusBadRequest, rec.Code, "limit=%s", limit)
	}
}

func TestHandler_GetProfile(t *testing.T) {
	m, r := newTestRouter(t)

	profile := domain.NewProfile(domain.UserID{})
	m.EXPECT().Profile(gomock.Any(), domain.UserID{}).Return(&profile, nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/profile", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, domain.CalibrationNone, got.Confidence)
}

func TestHandler_GetCalibration(t *testing.T) {
	m, r := newTestRouter(t)

	report := intake.CalibrationReport{
		Profile:              domain.NewProfile(domain.UserID{}),
		ScansNeededForMedium: 2,
		ScansNeededForHigh:   4,
	}
	m.EXPECT().Calibration(gomock.Any(), domain.UserID{}).Return(&report, nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/calibration", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got intake.CalibrationReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, 2, got.ScansNeededForMedium)
	require.Equal(t, 4, got.ScansNeededForHigh)
}

func TestHandler_CreatePrediction(t *testing.T) {
	m, r := newTestRouter(t)

	req := intake.PredictionRequest{
		TargetWeightKg: 80,
		Behavior:       intake.Behavior{ProteinGrams: 170, WeeklySets: 12, DeficitPercent: 20, Sex: domain.SexMale},
	}
	report := intake.PredictionReport{
		Prediction: domain.Prediction{TargetWeightKg: 80, Confidence: domain.PredictionModerate},
	}
	m.EXPECT().Predict(gomock.Any(), domain.UserID{}, req).Return(&report, nil)

	body, err := json.Marshal(req)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/predictions", bytes.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	var got intake.PredictionReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.InDelta(t, 80, got.Prediction.TargetWeightKg, 1e-9)
}

func TestHandler_CreateTimeline(t *testing.T) {
	m, r := newTestRouter(t)

	req := intake.TimelineRequest{TargetWeightKg: 80, DailyDeficitKcal: 770}
	deficit := 550.0
	m.EXPECT().Timeline(gomock.Any(), domain.UserID{}, req).
		Return(&intake.TimelineReport{RequiredDailyDeficitKcal: &deficit}, nil)

	body, err := json.Marshal(req)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/predictions/timeline", bytes.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_CreateRecommendations(t *testing.T) {
	m, r := newTestRouter(t)

	behavior := intake.Behavior{ProteinGrams: 120, WeeklySets: 4, DeficitPercent: 30, Sex: domain.SexMale}
	m.EXPECT().Recommend(gomock.Any(), domain.UserID{}, behavior).
		Return([]recommend.Suggestion{
			{Category: recommend.CategoryTraining, Priority: recommend.PriorityHigh, Message: "train"},
		}, nil)

	body, err := json.Marshal(behavior)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/recommendations", bytes.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	var got v1handler.RecommendationList
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Items, 1)
	require.Equal(t, recommend.PriorityHigh, got.Items[0].Priority)
}

func TestHandler_CreateRecommendations_EmptyListNotNull(t *testing.T) {
	m, r := newTestRouter(t)

	m.EXPECT().Recommend(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/recommendations", bytes.NewReader([]byte("{}"))))

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"items":[]}`, rec.Body.String())
}
