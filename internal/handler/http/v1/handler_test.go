package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/guardops/incident_ops_system/internal/config"
	"github.com/guardops/incident_ops_system/internal/models"
	"github.com/guardops/incident_ops_system/internal/service"
	"github.com/guardops/incident_ops_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler создает новый экземпляр Handler с мокированными сервисами.
// Справочный сервис используется настоящий, поверх мокированного репозитория.
func newTestHandler(t *testing.T) (*Handler, *mocks.MockIncidentService, *mocks.MockUserService, *mocks.MockCatalogRepository, *gin.Engine) {
	ctrl := gomock.NewController(t)
	incidentMock := mocks.NewMockIncidentService(ctrl)
	userMock := mocks.NewMockUserService(ctrl)
	catalogRepoMock := mocks.NewMockCatalogRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys:         []string{"test-api-key"},
		GeofenceRadiusM: 200,
	}

	catalogService := service.NewCatalogService(catalogRepoMock, logger)
	handler := NewHandler(incidentMock, userMock, catalogService, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, incidentMock, userMock, catalogRepoMock, router
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

func validCreateIncidentRequest() CreateIncidentRequest {
	return CreateIncidentRequest{
		OccurredOn:       "2025-03-14",
		OccurredAtTime:   "14:30",
		ZoneID:           uuid.NewString(),
		PlaceID:          uuid.NewString(),
		Category:         "security",
		IncidentTypeID:   uuid.NewString(),
		Impact:           "moderate",
		PrimaryResponder: "internal",
		Details:          "Side gate forced open",
		AuthorID:         uuid.NewString(),
	}
}

func TestCreateIncident_Success(t *testing.T) {
	_, incidentMock, _, _, router := newTestHandler(t)
	incidentID := uuid.New()
	reqBody := validCreateIncidentRequest()

	incidentMock.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			inc.ID = incidentID
			inc.Reference = "20250314-VOL-005"
			inc.MonthKey = "202503"
			inc.CreatedAt = time.Now()
			inc.UpdatedAt = time.Now()
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, incidentID, resp.ID)
	assert.Equal(t, "20250314-VOL-005", resp.Reference)
	assert.Equal(t, "2025-03-14", resp.OccurredOn)
}

func TestCreateIncident_InvalidJSON(t *testing.T) {
	_, incidentMock, _, _, router := newTestHandler(t)

	incidentMock.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBufferString(`{"category": "security"`), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateIncident_ValidationError(t *testing.T) {
	_, incidentMock, _, _, router := newTestHandler(t)
	reqBody := validCreateIncidentRequest()
	reqBody.Category = "catastrophe" // Не входит в oneof

	incidentMock.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Category' failed on the 'oneof' tag")
}

func TestCreateIncident_UnpairedPrecisePoint(t *testing.T) {
	_, incidentMock, _, _, router := newTestHandler(t)
	reqBody := validCreateIncidentRequest()
	lat := 48.8566
	reqBody.PreciseLat = &lat // Долгота не передана

	incidentMock.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "must be provided together")
}

func TestCreateIncident_GeofenceRejected(t *testing.T) {
	_, incidentMock, _, _, router := newTestHandler(t)
	reqBody := validCreateIncidentRequest()
	lat, lng := 48.8596, 2.3522
	reqBody.PreciseLat = &lat
	reqBody.PreciseLng = &lng

	incidentMock.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		Return(&service.GeofenceError{DistanceM: 334, RadiusM: 200}).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"distance_m":334`)
}

func TestCreateIncident_ServiceError(t *testing.T) {
	_, incidentMock, _, _, router := newTestHandler(t)
	reqBody := validCreateIncidentRequest()

	incidentMock.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		Return(errors.New("database unavailable")).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestGetIncident_Success(t *testing.T) {
	_, incidentMock, _, _, router := newTestHandler(t)
	incidentID := uuid.New()
	expectedIncident := &models.Incident{
		ID:         incidentID,
		Reference:  "20250314-VOL-001",
		OccurredOn: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		Category:   models.CategorySecurity,
	}

	incidentMock.EXPECT().GetIncident(gomock.Any(), incidentID).Return(expectedIncident, nil).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/incidents/%s", incidentID.String()), nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, incidentID, resp.ID)
	assert.Equal(t, "20250314-VOL-001", resp.Reference)
}

func TestGetIncident_InvalidID(t *testing.T) {
	_, incidentMock, _, _, router := newTestHandler(t)

	incidentMock.EXPECT().GetIncident(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/incidents/invalid-uuid", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid incident ID")
}

func TestGetIncident_NotFound(t *testing.T) {
	_, incidentMock, _, _, router := newTestHandler(t)
	incidentID := uuid.New()

	incidentMock.EXPECT().GetIncident(gomock.Any(), incidentID).Return(nil, errors.New("incident not found")).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/incidents/%s", incidentID.String()), nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "incident not found")
}

func TestListIncidents_Success(t *testing.T) {
	_, incidentMock, _, _, router := newTestHandler(t)
	expectedIncidents := []*models.Incident{
		{ID: uuid.New(), Reference: "20250314-VOL-001"},
		{ID: uuid.New(), Reference: "20250314-INT-002"},
	}

	incidentMock.EXPECT().ListIncidents(gomock.Any(), 1, 10).Return(expectedIncidents, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents?page=1&pageSize=10", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "20250314-VOL-001", resp[0].Reference)
}

func TestUpdateIncident_Success(t *testing.T) {
	_, incidentMock, _, _, router := newTestHandler(t)
	incidentID := uuid.New()
	reqBody := UpdateIncidentRequest{
		OccurredOn:       "2025-03-15",
		OccurredAtTime:   "09:00",
		ZoneID:           uuid.NewString(),
		PlaceID:          uuid.NewString(),
		Category:         "safety",
		IncidentTypeID:   uuid.NewString(),
		Impact:           "major",
		PrimaryResponder: "external",
	}

	incidentMock.EXPECT().
		UpdateIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			assert.Equal(t, incidentID, inc.ID)
			assert.Equal(t, models.CategorySafety, inc.Category)
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", fmt.Sprintf("/api/v1/incidents/%s", incidentID.String()), bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteIncident_Success(t *testing.T) {
	_, incidentMock, _, _, router := newTestHandler(t)
	incidentID := uuid.New()

	incidentMock.EXPECT().
		SetIncidentDeleted(gomock.Any(), incidentID, "admin@example.com", true).
		Return(nil).
		Times(1)

	w := makeRequest(router, "DELETE", fmt.Sprintf("/api/v1/incidents/%s", incidentID.String()), nil,
		map[string]string{"X-API-Key": "test-api-key", "X-User-Email": "admin@example.com"})

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDeleteIncident_MissingActorHeader(t *testing.T) {
	_, incidentMock, _, _, router := newTestHandler(t)
	incidentID := uuid.New()

	incidentMock.EXPECT().SetIncidentDeleted(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "DELETE", fmt.Sprintf("/api/v1/incidents/%s", incidentID.String()), nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "X-User-Email header is required")
}

func TestDeleteIncident_Forbidden(t *testing.T) {
	_, incidentMock, _, _, router := newTestHandler(t)
	incidentID := uuid.New()

	incidentMock.EXPECT().
		SetIncidentDeleted(gomock.Any(), incidentID, "user@example.com", true).
		Return(fmt.Errorf("service: soft delete requires admin: %w", service.ErrForbidden)).
		Times(1)

	w := makeRequest(router, "DELETE", fmt.Sprintf("/api/v1/incidents/%s", incidentID.String()), nil,
		map[string]string{"X-API-Key": "test-api-key", "X-User-Email": "user@example.com"})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "not allowed")
}

func TestRestoreIncident_Success(t *testing.T) {
	_, incidentMock, _, _, router := newTestHandler(t)
	incidentID := uuid.New()

	incidentMock.EXPECT().
		SetIncidentDeleted(gomock.Any(), incidentID, "admin@example.com", false).
		Return(nil).
		Times(1)

	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/incidents/%s/restore", incidentID.String()), nil,
		map[string]string{"X-API-Key": "test-api-key", "X-User-Email": "admin@example.com"})

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestCheckGeofence_Allowed(t *testing.T) {
	_, incidentMock, _, _, router := newTestHandler(t)
	placeID := uuid.New()
	reqBody := GeofenceCheckRequest{
		PlaceID:   placeID.String(),
		Latitude:  48.8566,
		Longitude: 2.3522,
	}

	incidentMock.EXPECT().
		CheckPrecisePoint(gomock.Any(), placeID, reqBody.Latitude, reqBody.Longitude).
		Return(56, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/geofence/check", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp GeofenceCheckResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Allowed)
	assert.Equal(t, 56, resp.DistanceM)
}

func TestCheckGeofence_Rejected(t *testing.T) {
	_, incidentMock, _, _, router := newTestHandler(t)
	placeID := uuid.New()
	reqBody := GeofenceCheckRequest{
		PlaceID:   placeID.String(),
		Latitude:  48.8596,
		Longitude: 2.3522,
	}

	// Отказ геозоны - не сбой: 200 с allowed=false и дистанцией
	incidentMock.EXPECT().
		CheckPrecisePoint(gomock.Any(), placeID, reqBody.Latitude, reqBody.Longitude).
		Return(334, &service.GeofenceError{DistanceM: 334, RadiusM: 200}).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/geofence/check", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp GeofenceCheckResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Allowed)
	assert.Equal(t, 334, resp.DistanceM)
}

func TestCreateUser_HandlerSuccess(t *testing.T) {
	_, _, userMock, _, router := newTestHandler(t)
	userID := uuid.New()
	reqBody := CreateUserRequest{
		Email:       "agent@example.com",
		DisplayName: "Agent Dupont",
		Function:    "Supervisor",
		Role:        "user",
		Tier:        "tier2",
	}

	userMock.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			u.ID = userID
			u.Active = true
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/users", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, userID, resp.ID)
	assert.True(t, resp.Active)
}

func TestCreateUser_InvalidTier(t *testing.T) {
	_, _, userMock, _, router := newTestHandler(t)
	reqBody := CreateUserRequest{
		Email:       "agent@example.com",
		DisplayName: "Agent Dupont",
		Role:        "user",
		Tier:        "tier9",
	}

	userMock.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/users", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Tier' failed on the 'oneof' tag")
}

func TestRequestPasswordReset_HandlerSuccess(t *testing.T) {
	_, _, userMock, _, router := newTestHandler(t)
	reqBody := PasswordResetRequest{Email: "agent@example.com"}

	userMock.EXPECT().RequestPasswordReset(gomock.Any(), "agent@example.com").Return(nil).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/users/password-reset", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "password reset email sent")
}

func TestCreateZone_Success(t *testing.T) {
	_, _, _, catalogRepoMock, router := newTestHandler(t)
	reqBody := ZoneRequest{Name: "North Perimeter"}

	catalogRepoMock.EXPECT().
		CreateZone(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, zone *models.Zone) error {
			zone.ID = uuid.New()
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/zones", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp models.Zone
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "North Perimeter", resp.Name)
	assert.True(t, resp.Active) // Сервис принудительно активирует новые зоны
}

func TestCreatePlace_UnknownZone(t *testing.T) {
	_, _, _, catalogRepoMock, router := newTestHandler(t)
	zoneID := uuid.New()
	reqBody := PlaceRequest{
		Name:      "Gate 4",
		ZoneID:    zoneID.String(),
		Latitude:  48.8566,
		Longitude: 2.3522,
		Kind:      "gate",
	}

	catalogRepoMock.EXPECT().GetZone(gomock.Any(), zoneID).Return(nil, errors.New("zone not found")).Times(1)
	catalogRepoMock.EXPECT().CreatePlace(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/places", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestCreateIncidentType_Success(t *testing.T) {
	_, _, _, catalogRepoMock, router := newTestHandler(t)
	reqBody := IncidentTypeRequest{Name: "Vol", Category: "security", RequiresCameras: true}

	catalogRepoMock.EXPECT().
		CreateIncidentType(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, it *models.IncidentType) error {
			it.ID = uuid.New()
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incident-types", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp models.IncidentType
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Vol", resp.Name)
	assert.True(t, resp.RequiresCameras)
}

func TestListPlaces_OnlyActive(t *testing.T) {
	_, _, _, catalogRepoMock, router := newTestHandler(t)
	expected := []*models.Place{{ID: uuid.New(), Name: "Gate 4", Active: true}}

	catalogRepoMock.EXPECT().ListPlaces(gomock.Any(), true).Return(expected, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/places?only_active=true", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []*models.Place
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Gate 4", resp[0].Name)
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, _, _, router := newTestHandler(t)

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

func TestAPIKeyAuthMiddleware_BearerToken(t *testing.T) {
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
