package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"travel-ledger-service/internal/domain/entity"
	"travel-ledger-service/internal/domain/repository"
	"travel-ledger-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReportService struct {
	saved   *entity.TravelHistory
	failAll bool
}

func (s *stubReportService) BuildReport(_ context.Context, history *entity.TravelHistory) (*entity.Report, error) {
	if s.failAll {
		return nil, errors.New("boom")
	}
	return &entity.Report{Metadata: entity.ReportMetadata{ExportID: history.ExportID, FlightCount: len(history.Segments)}}, nil
}

func (s *stubReportService) BuildReportForExport(_ context.Context, exportID string) (*entity.Report, error) {
	switch {
	case s.failAll:
		return nil, errors.New("boom")
	case exportID == "known":
		return &entity.Report{Metadata: entity.ReportMetadata{ExportID: exportID}}, nil
	default:
		return nil, fmt.Errorf("failed to load history %s: %w", exportID, repository.ErrHistoryNotFound)
	}
}

func (s *stubReportService) SaveHistory(_ context.Context, history *entity.TravelHistory) error {
	if s.failAll {
		return errors.New("boom")
	}
	s.saved = history
	return nil
}

func newTestServer(svc ReportService) *echo.Echo {
	e := echo.New()
	e.GET("/health", Health)
	NewReportHandler(svc, logger.NewNopLogger()).Register(e.Group("/api/v1"))
	return e
}

func serve(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestReportRoutes(t *testing.T) {
	tests := []struct {
		name       string
		failAll    bool
		method     string
		path       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{name: "health", method: http.MethodGet, path: "/health", wantStatus: http.StatusOK, wantBody: `"ok"`},
		{name: "create report", method: http.MethodPost, path: "/api/v1/reports", body: `{"exportId":"e1","segments":[{"origin":"JFK"}]}`, wantStatus: http.StatusOK, wantBody: `"flightCount":1`},
		{name: "create report bad json", method: http.MethodPost, path: "/api/v1/reports", body: `{"segments":`, wantStatus: http.StatusBadRequest},
		{name: "create report failure", failAll: true, method: http.MethodPost, path: "/api/v1/reports", body: `{}`, wantStatus: http.StatusInternalServerError},
		{name: "get stored report", method: http.MethodGet, path: "/api/v1/reports/known", wantStatus: http.StatusOK, wantBody: `"exportId":"known"`},
		{name: "get unknown report", method: http.MethodGet, path: "/api/v1/reports/unknown", wantStatus: http.StatusNotFound},
		{name: "get report failure", failAll: true, method: http.MethodGet, path: "/api/v1/reports/known", wantStatus: http.StatusInternalServerError},
		{name: "put history", method: http.MethodPut, path: "/api/v1/histories/e2", body: `{"segments":[]}`, wantStatus: http.StatusOK, wantBody: `"exportId":"e2"`},
		{name: "put history id mismatch", method: http.MethodPut, path: "/api/v1/histories/e2", body: `{"exportId":"other"}`, wantStatus: http.StatusBadRequest},
		{name: "put history failure", failAll: true, method: http.MethodPut, path: "/api/v1/histories/e2", body: `{}`, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestServer(&stubReportService{failAll: tt.failAll})

			rec := serve(e, tt.method, tt.path, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestPutHistoryStoresPathExportID(t *testing.T) {
	svc := &stubReportService{}
	e := newTestServer(svc)

	rec := serve(e, http.MethodPut, "/api/v1/histories/e3", `{"loungeVisits":[{"locationCode":"DFW-D"}]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, svc.saved)
	assert.Equal(t, "e3", svc.saved.ExportID)
	require.Len(t, svc.saved.LoungeVisits, 1)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "e3", body["exportId"])
}
