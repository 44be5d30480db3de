package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/domain"
	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/dto"
	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/service"
)

// MockEventService is a mock implementation of service.EventServicer
type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) Track(req *dto.TrackEventRequest, meta domain.RequestMeta) (string, error) {
	args := m.Called(req, meta)
	return args.String(0), args.Error(1)
}

func (m *MockEventService) TrackBulk(reqs []dto.TrackEventRequest, meta domain.RequestMeta) ([]string, []string) {
	args := m.Called(reqs, meta)
	var ids, errs []string
	if args.Get(0) != nil {
		ids = args.Get(0).([]string)
	}
	if args.Get(1) != nil {
		errs = args.Get(1).([]string)
	}
	return ids, errs
}

func (m *MockEventService) Dashboard(reportType string) (interface{}, error) {
	args := m.Called(reportType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0), args.Error(1)
}

func trackBody() []byte {
	body, _ := json.Marshal(dto.TrackEventRequest{
		Event:      "lesson_complete",
		Category:   "lesson",
		SessionID:  "sess-1",
		Properties: map[string]interface{}{"lessonId": "go-101"},
	})
	return body
}

func TestHandler_HealthCheck(t *testing.T) {
	mockService := new(MockEventService)
	handler := NewHandler(mockService, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_TrackEvent_Success(t *testing.T) {
	mockService := new(MockEventService)
	mockService.On("Track", mock.Anything, mock.MatchedBy(func(meta domain.RequestMeta) bool {
		return meta.UserID == "u1" && meta.Country == "DE"
	})).Return("evt-1", nil)

	handler := NewHandler(mockService, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/track", bytes.NewReader(trackBody()))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "u1")
	req.Header.Set("X-Country", "DE")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.TrackEventResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "evt-1", resp.EventID)
	mockService.AssertExpectations(t)
}

func TestHandler_TrackEvent_MissingSessionID(t *testing.T) {
	mockService := new(MockEventService)
	handler := NewHandler(mockService, zap.NewNop())

	body, _ := json.Marshal(map[string]interface{}{
		"event":    "page_view",
		"category": "user",
	})
	req := httptest.NewRequest(http.MethodPost, "/track", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Track")
}

func TestHandler_TrackEvent_RejectedCategory(t *testing.T) {
	mockService := new(MockEventService)
	mockService.On("Track", mock.Anything, mock.Anything).
		Return("", errors.New(`unknown event category: "marketing"`))

	handler := NewHandler(mockService, zap.NewNop())

	body, _ := json.Marshal(dto.TrackEventRequest{
		Event:     "campaign_click",
		Category:  "marketing",
		SessionID: "sess-1",
	})
	req := httptest.NewRequest(http.MethodPost, "/track", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "validation_error", resp.Error)
}

func TestHandler_TrackBulk(t *testing.T) {
	mockService := new(MockEventService)
	mockService.On("TrackBulk", mock.Anything, mock.Anything).
		Return([]string{"evt-1", "evt-2"}, []string{"unknown event category: \"x\""})

	handler := NewHandler(mockService, zap.NewNop())

	body, _ := json.Marshal(dto.TrackEventsBulkRequest{
		Events: []dto.TrackEventRequest{
			{Event: "a", Category: "user", SessionID: "s"},
			{Event: "b", Category: "user", SessionID: "s"},
			{Event: "c", Category: "x", SessionID: "s"},
		},
	})
	req := httptest.NewRequest(http.MethodPost, "/track/bulk", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.TrackEventsBulkResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Accepted)
	assert.Equal(t, 1, resp.Rejected)
}

func TestHandler_Dashboard_DefaultsToOverview(t *testing.T) {
	mockService := new(MockEventService)
	mockService.On("Dashboard", "overview").Return(&dto.DashboardOverview{}, nil)

	handler := NewHandler(mockService, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestHandler_Dashboard_ReportTypes(t *testing.T) {
	for _, reportType := range []string{"realtime", "revenue", "ai", "learning"} {
		mockService := new(MockEventService)
		mockService.On("Dashboard", reportType).Return(map[string]interface{}{}, nil)

		handler := NewHandler(mockService, zap.NewNop())

		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/dashboard?type=%s", reportType), nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, reportType)
	}
}

func TestHandler_Dashboard_UnknownType(t *testing.T) {
	mockService := new(MockEventService)
	mockService.On("Dashboard", "finance").
		Return(nil, fmt.Errorf("%w: %q", service.ErrUnknownReportType, "finance"))

	handler := NewHandler(mockService, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/dashboard?type=finance", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Dashboard_InternalError(t *testing.T) {
	mockService := new(MockEventService)
	mockService.On("Dashboard", "revenue").Return(nil, errors.New("boom"))

	handler := NewHandler(mockService, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/dashboard?type=revenue", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
