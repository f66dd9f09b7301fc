package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/globalmatt/wavetraffic/internal/config"
	"github.com/globalmatt/wavetraffic/internal/models"
	"github.com/globalmatt/wavetraffic/internal/service"
	"github.com/globalmatt/wavetraffic/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*Handler, *mocks.MockSessionService, *mocks.MockIncidentService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	sessionMock := mocks.NewMockSessionService(ctrl)
	incidentMock := mocks.NewMockIncidentService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys:         []string{"test-api-key"},
		StreamHeartbeat: 15 * time.Second,
	}

	handler := NewHandler(sessionMock, incidentMock, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, sessionMock, incidentMock, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func testBootstrap() *models.SessionBootstrap {
	return &models.SessionBootstrap{
		SessionID: "session-1",
		Markers: []models.MarkerRef{
			{
				Handle:     "marker-1",
				IncidentID: "100231",
				Position:   models.LatLng{Lat: -34.3851, Lng: 150.8784},
				Icon:       "icon-tow-allocation.png",
				Title:      "Tow required",
			},
		},
		FitBounds: &models.BoundingRegion{
			SouthWest: models.LatLng{Lat: -34.6, Lng: 150.7},
			NorthEast: models.LatLng{Lat: -34.2, Lng: 151.0},
		},
		DefaultCenter: models.LatLng{Lat: -34.4278, Lng: 150.8931},
		DefaultZoom:   10,
	}
}

func TestCreateSession_Success(t *testing.T) {
	_, sessionMock, _, router := newTestHandler(t)

	sessionMock.EXPECT().CreateSession(gomock.Any()).Return(testBootstrap(), nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/sessions", nil)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp SessionResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "session-1", resp.SessionID)
	require.Len(t, resp.Markers, 1)
	assert.Equal(t, "marker-1", resp.Markers[0].Handle)
	assert.Equal(t, "icon-tow-allocation.png", resp.Markers[0].Icon)
	require.NotNil(t, resp.FitBounds)
	assert.Equal(t, 10, resp.DefaultZoom)
}

func TestCreateSession_ServiceError(t *testing.T) {
	_, sessionMock, _, router := newTestHandler(t)
	serviceError := errors.New("failed to create session")

	sessionMock.EXPECT().CreateSession(gomock.Any()).Return(nil, serviceError).Times(1)

	w := makeRequest(router, "POST", "/api/v1/sessions", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestCloseSession_Success(t *testing.T) {
	_, sessionMock, _, router := newTestHandler(t)

	sessionMock.EXPECT().CloseSession(gomock.Any(), "session-1").Return(nil).Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/sessions/session-1", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestCloseSession_NotFound(t *testing.T) {
	_, sessionMock, _, router := newTestHandler(t)
	serviceError := fmt.Errorf("service: session ghost: %w", service.ErrSessionNotFound)

	sessionMock.EXPECT().CloseSession(gomock.Any(), "ghost").Return(serviceError).Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/sessions/ghost", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "session not found")
}

func TestGetView_Success(t *testing.T) {
	_, sessionMock, _, router := newTestHandler(t)
	snapshot := &models.ViewSnapshot{
		Visible: []models.ListEntry{
			{ID: "100231", AlertType: models.AlertTowAllocation, Label: "Tow Allocation", Icon: "icon-tow-allocation.png", Title: "Tow required"},
		},
		CountLabel: "1 incident shown",
		SelectedID: "100231",
		DrawerOpen: true,
		Seq:        3,
	}

	sessionMock.EXPECT().Snapshot(gomock.Any(), "session-1").Return(snapshot, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/sessions/session-1/view", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp ViewResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp.Visible, 1)
	assert.Equal(t, "Tow Allocation", resp.Visible[0].Label)
	assert.Equal(t, "1 incident shown", resp.CountLabel)
	assert.Equal(t, "100231", resp.SelectedID)
	assert.True(t, resp.DrawerOpen)
	assert.Equal(t, uint64(3), resp.Seq)
}

func TestGetView_SessionNotFound(t *testing.T) {
	_, sessionMock, _, router := newTestHandler(t)
	serviceError := fmt.Errorf("service: session ghost: %w", service.ErrSessionNotFound)

	sessionMock.EXPECT().Snapshot(gomock.Any(), "ghost").Return(nil, serviceError).Times(1)

	w := makeRequest(router, "GET", "/api/v1/sessions/ghost/view", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "session not found")
}

func TestViewportSettled_Success(t *testing.T) {
	_, sessionMock, _, router := newTestHandler(t)
	reqBody := ViewportSettledRequest{
		SouthWest: LatLngDTO{Lat: -34.6, Lng: 150.7},
		NorthEast: LatLngDTO{Lat: -34.2, Lng: 151.0},
		Zoom:      12,
	}
	expectedRegion := models.BoundingRegion{
		SouthWest: models.LatLng{Lat: -34.6, Lng: 150.7},
		NorthEast: models.LatLng{Lat: -34.2, Lng: 151.0},
	}

	sessionMock.EXPECT().
		ViewportSettled(gomock.Any(), "session-1", expectedRegion, 12).
		Return(nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/sessions/session-1/events/viewport-settled", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestViewportSettled_InvalidJSON(t *testing.T) {
	_, sessionMock, _, router := newTestHandler(t)

	sessionMock.EXPECT().ViewportSettled(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/sessions/session-1/events/viewport-settled", bytes.NewBufferString(`{"zoom":`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestViewportSettled_ValidationError(t *testing.T) {
	_, sessionMock, _, router := newTestHandler(t)
	reqBody := ViewportSettledRequest{ // Масштаб за верхней границей
		SouthWest: LatLngDTO{Lat: -34.6, Lng: 150.7},
		NorthEast: LatLngDTO{Lat: -34.2, Lng: 151.0},
		Zoom:      42,
	}

	sessionMock.EXPECT().ViewportSettled(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/sessions/session-1/events/viewport-settled", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Zoom' failed on the 'max' tag")
}

func TestViewportSettled_BadCorner(t *testing.T) {
	_, sessionMock, _, router := newTestHandler(t)
	reqBody := ViewportSettledRequest{
		SouthWest: LatLngDTO{Lat: -95.0, Lng: 150.7},
		NorthEast: LatLngDTO{Lat: -34.2, Lng: 151.0},
		Zoom:      12,
	}

	sessionMock.EXPECT().ViewportSettled(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/sessions/session-1/events/viewport-settled", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Lat' failed on the 'latitude' tag")
}

func TestViewportSettled_InvalidRegion(t *testing.T) {
	// Углы по отдельности корректны, но область вывернута: ошибку возвращает сервис
	_, sessionMock, _, router := newTestHandler(t)
	reqBody := ViewportSettledRequest{
		SouthWest: LatLngDTO{Lat: -34.2, Lng: 150.7},
		NorthEast: LatLngDTO{Lat: -34.6, Lng: 151.0},
		Zoom:      12,
	}
	serviceError := fmt.Errorf("service: could not settle viewport: %w", service.ErrInvalidRegion)

	sessionMock.EXPECT().
		ViewportSettled(gomock.Any(), "session-1", gomock.Any(), 12).
		Return(serviceError).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/sessions/session-1/events/viewport-settled", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid bounding region")
}

func TestMarkerClicked_Success(t *testing.T) {
	_, sessionMock, _, router := newTestHandler(t)
	reqBody := IncidentClickRequest{IncidentID: "100231"}

	sessionMock.EXPECT().MarkerClicked(gomock.Any(), "session-1", "100231").Return(nil).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/sessions/session-1/events/marker-click", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestMarkerClicked_ValidationError(t *testing.T) {
	_, sessionMock, _, router := newTestHandler(t)
	reqBody := IncidentClickRequest{} // Отсутствует IncidentID

	sessionMock.EXPECT().MarkerClicked(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/sessions/session-1/events/marker-click", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'IncidentID' failed on the 'required' tag")
}

func TestMarkerClicked_IncidentNotFound(t *testing.T) {
	_, sessionMock, _, router := newTestHandler(t)
	reqBody := IncidentClickRequest{IncidentID: "ghost"}
	serviceError := fmt.Errorf("service: incident ghost: %w", service.ErrIncidentNotFound)

	sessionMock.EXPECT().MarkerClicked(gomock.Any(), "session-1", "ghost").Return(serviceError).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/sessions/session-1/events/marker-click", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "incident not found")
}

func TestListItemClicked_Success(t *testing.T) {
	_, sessionMock, _, router := newTestHandler(t)
	reqBody := IncidentClickRequest{IncidentID: "100231"}

	sessionMock.EXPECT().ListItemClicked(gomock.Any(), "session-1", "100231").Return(nil).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/sessions/session-1/events/list-click", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestListItemClicked_SessionNotFound(t *testing.T) {
	_, sessionMock, _, router := newTestHandler(t)
	reqBody := IncidentClickRequest{IncidentID: "100231"}
	serviceError := fmt.Errorf("service: session ghost: %w", service.ErrSessionNotFound)

	sessionMock.EXPECT().ListItemClicked(gomock.Any(), "ghost", "100231").Return(serviceError).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/sessions/ghost/events/list-click", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "session not found")
}

func TestDismissSelection_Success(t *testing.T) {
	_, sessionMock, _, router := newTestHandler(t)

	sessionMock.EXPECT().DismissSelection(gomock.Any(), "session-1").Return(nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/sessions/session-1/events/dismiss", nil)

	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestToggleDrawer_Success(t *testing.T) {
	_, sessionMock, _, router := newTestHandler(t)

	sessionMock.EXPECT().ToggleDrawer(gomock.Any(), "session-1").Return(true, nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/sessions/session-1/events/drawer-toggle", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"drawer_open":true`)
}

func TestRowVisibility_Success(t *testing.T) {
	_, sessionMock, _, router := newTestHandler(t)
	reqBody := RowVisibilityRequest{IncidentID: "100231", Seq: 3, FullyVisible: false}

	sessionMock.EXPECT().
		ReportRowVisibility(gomock.Any(), "session-1", "100231", uint64(3), false).
		Return(nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/sessions/session-1/events/row-visibility", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestRowVisibility_ValidationError(t *testing.T) {
	_, sessionMock, _, router := newTestHandler(t)
	reqBody := RowVisibilityRequest{IncidentID: "100231", Seq: 0} // Нулевой номер фазы

	sessionMock.EXPECT().ReportRowVisibility(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/sessions/session-1/events/row-visibility", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Seq' failed on the 'required' tag")
}

func TestStreamDirectives_Success(t *testing.T) {
	// SSE требует полноценного сервера: ResponseRecorder не поддерживает CloseNotify
	_, sessionMock, _, router := newTestHandler(t)

	queue := make(chan models.Directive, 1)
	queue <- models.Directive{Type: models.DirectiveDetailClose}
	close(queue)

	sessionMock.EXPECT().
		Subscribe(gomock.Any(), "session-1").
		Return((<-chan models.Directive)(queue), nil).
		Times(1)

	srv := httptest.NewServer(router)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/v1/sessions/session-1/stream")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "no-cache", resp.Header.Get("Cache-Control"))
	assert.Contains(t, string(body), "event:directive")
	assert.Contains(t, string(body), "detail.close")
}

func TestStreamDirectives_SessionNotFound(t *testing.T) {
	_, sessionMock, _, router := newTestHandler(t)
	serviceError := fmt.Errorf("service: session ghost: %w", service.ErrSessionNotFound)

	sessionMock.EXPECT().Subscribe(gomock.Any(), "ghost").Return(nil, serviceError).Times(1)

	w := makeRequest(router, "GET", "/api/v1/sessions/ghost/stream", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "session not found")
}

func TestStreamDirectives_StreamClosed(t *testing.T) {
	_, sessionMock, _, router := newTestHandler(t)
	serviceError := fmt.Errorf("service: could not subscribe to session stream: %w", service.ErrStreamClosed)

	sessionMock.EXPECT().Subscribe(gomock.Any(), "session-1").Return(nil, serviceError).Times(1)

	w := makeRequest(router, "GET", "/api/v1/sessions/session-1/stream", nil)

	assert.Equal(t, http.StatusGone, w.Code)
	assert.Contains(t, w.Body.String(), "directive stream closed")
}

func TestListIncidents_Success(t *testing.T) {
	_, _, incidentMock, router := newTestHandler(t)
	expectedIncidents := []*models.Incident{
		{ID: "100231", AlertType: models.AlertTowAllocation, Title: "Tow required", Latitude: -34.3851, Longitude: 150.8784},
		{ID: "100233", AlertType: models.AlertRoadworks, Title: "Night works", Latitude: -34.3389, Longitude: 150.9136},
	}

	incidentMock.EXPECT().ListIncidents(gomock.Any()).Return(expectedIncidents, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, "100231", resp[0].ID)
	assert.Equal(t, "Tow Allocation", resp[0].Label)
	assert.Equal(t, "icon-tow-allocation.png", resp[0].Icon)
	assert.Equal(t, "Roadworks", resp[1].Label)
}

func TestListIncidents_ServiceError(t *testing.T) {
	_, _, incidentMock, router := newTestHandler(t)
	serviceError := errors.New("failed to list incidents")

	incidentMock.EXPECT().ListIncidents(gomock.Any()).Return(nil, serviceError).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestGetIncident_Success(t *testing.T) {
	_, _, incidentMock, router := newTestHandler(t)
	expectedIncident := &models.Incident{
		ID:          "100231",
		AlertType:   models.AlertTowAllocation,
		Title:       "Tow required",
		Description: "Right lane blocked",
		Latitude:    -34.3851,
		Longitude:   150.8784,
	}

	incidentMock.EXPECT().GetIncident(gomock.Any(), "100231").Return(expectedIncident, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/100231", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "100231", resp.ID)
	assert.Equal(t, "Tow Allocation", resp.Label)
	assert.InDelta(t, -34.3851, resp.Latitude, 1e-9)
}

func TestGetIncident_NotFound(t *testing.T) {
	_, _, incidentMock, router := newTestHandler(t)
	serviceError := fmt.Errorf("service: incident ghost: %w", service.ErrIncidentNotFound)

	incidentMock.EXPECT().GetIncident(gomock.Any(), "ghost").Return(nil, serviceError).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/ghost", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "incident not found")
}

func TestGetStats_Success(t *testing.T) {
	_, _, incidentMock, router := newTestHandler(t)
	expectedStats := &models.Stats{ActiveSessions: 2, IncidentCount: 10, RejectedRecords: 1}

	incidentMock.EXPECT().GetStats(gomock.Any()).Return(expectedStats, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/stats", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp StatsResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.ActiveSessions)
	assert.Equal(t, 10, resp.IncidentCount)
	assert.Equal(t, 1, resp.RejectedRecords)
}

func TestGetStats_ServiceError(t *testing.T) {
	_, _, incidentMock, router := newTestHandler(t)
	serviceError := errors.New("failed to get stats")

	incidentMock.EXPECT().GetStats(gomock.Any()).Return(nil, serviceError).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/stats", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestAPIKeyAuthMiddleware_Success(t *testing.T) {
	// Создаем Gin-роутер и добавляем middleware
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_BearerFallback(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"Authorization": "Bearer valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_MissingKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil) // Нет API ключа
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestAPIKeyAuthMiddleware_InvalidKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "invalid-key"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}
