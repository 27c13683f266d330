package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/guardops/incident_ops_system/internal/config"
	"github.com/guardops/incident_ops_system/internal/models"
	"github.com/guardops/incident_ops_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestIncidentService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestIncidentService(t *testing.T) (*incidentService, *mocks.MockIncidentRepository, *mocks.MockCatalogRepository, *mocks.MockUserRepository, *mocks.MockNotificationQueue) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockIncidentRepository(ctrl)
	catalogMock := mocks.NewMockCatalogRepository(ctrl)
	userMock := mocks.NewMockUserRepository(ctrl)
	queueMock := mocks.NewMockNotificationQueue(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		GeofenceRadiusM: 200,
	}

	service := NewIncidentService(repoMock, catalogMock, userMock, queueMock, cfg, logger)
	return service.(*incidentService), repoMock, catalogMock, userMock, queueMock
}

func testIncidentType(id uuid.UUID) *models.IncidentType {
	return &models.IncidentType{
		ID:       id,
		Name:     "Vol",
		Category: models.CategorySecurity,
		Active:   true,
	}
}

func testIncident(typeID, placeID uuid.UUID) *models.Incident {
	return &models.Incident{
		OccurredOn:       time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		OccurredAtTime:   "14:30",
		ZoneID:           uuid.New(),
		PlaceID:          placeID,
		Category:         models.CategorySecurity,
		IncidentTypeID:   typeID,
		Impact:           models.ImpactModerate,
		PrimaryResponder: models.ResponderInternal,
		AuthorID:         uuid.New(),
	}
}

func TestCreateIncident_Success(t *testing.T) {
	// Подготовка
	service, repoMock, catalogMock, _, queueMock := newTestIncidentService(t)
	ctx := context.Background()
	typeID := uuid.New()
	placeID := uuid.New()
	incidentID := uuid.New()
	incident := testIncident(typeID, placeID)

	// Ожидания
	catalogMock.EXPECT().
		GetIncidentType(ctx, typeID).
		Return(testIncidentType(typeID), nil).
		Times(1)
	catalogMock.EXPECT().
		GetPlace(ctx, placeID).
		Return(&models.Place{ID: placeID, Latitude: 48.8566, Longitude: 2.3522}, nil).
		Times(1)
	// В марте 2025 уже есть четыре инцидента
	repoMock.EXPECT().
		CountByMonthKey(ctx, "202503").
		Return(4, nil).
		Times(1)
	repoMock.EXPECT().
		Create(ctx, incident).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			inc.ID = incidentID
			return nil
		}).
		Times(1)
	queueMock.EXPECT().
		PublishIncidentCreated(ctx, incidentID).
		Return(nil).
		Times(1)

	// Действие
	err := service.CreateIncident(ctx, incident)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "20250314-VOL-005", incident.Reference)
	assert.Equal(t, "202503", incident.MonthKey)
}

func TestCreateIncident_PublishFailureDoesNotFail(t *testing.T) {
	// Подготовка
	service, repoMock, catalogMock, _, queueMock := newTestIncidentService(t)
	ctx := context.Background()
	typeID := uuid.New()
	placeID := uuid.New()
	incident := testIncident(typeID, placeID)

	// Ожидания
	catalogMock.EXPECT().GetIncidentType(ctx, typeID).Return(testIncidentType(typeID), nil)
	catalogMock.EXPECT().GetPlace(ctx, placeID).Return(&models.Place{ID: placeID}, nil)
	repoMock.EXPECT().CountByMonthKey(ctx, "202503").Return(0, nil)
	repoMock.EXPECT().Create(ctx, incident).Return(nil)
	// Сбой публикации только логируется, создание считается успешным
	queueMock.EXPECT().
		PublishIncidentCreated(ctx, gomock.Any()).
		Return(fmt.Errorf("redis is down"))

	// Действие
	err := service.CreateIncident(ctx, incident)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "20250314-VOL-001", incident.Reference)
}

func TestCreateIncident_GeofenceRejected(t *testing.T) {
	// Подготовка
	service, _, catalogMock, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	typeID := uuid.New()
	placeID := uuid.New()
	incident := testIncident(typeID, placeID)
	// Точка примерно в 334 м от места при радиусе 200 м
	lat, lng := 48.8566+0.003, 2.3522
	incident.PreciseLat = &lat
	incident.PreciseLng = &lng

	// Ожидания
	catalogMock.EXPECT().GetIncidentType(ctx, typeID).Return(testIncidentType(typeID), nil)
	catalogMock.EXPECT().
		GetPlace(ctx, placeID).
		Return(&models.Place{ID: placeID, Latitude: 48.8566, Longitude: 2.3522}, nil)

	// Действие
	err := service.CreateIncident(ctx, incident)

	// Проверки
	require.Error(t, err)
	var geofenceErr *GeofenceError
	require.ErrorAs(t, err, &geofenceErr)
	assert.Equal(t, 334, geofenceErr.DistanceM)
	assert.Empty(t, incident.Reference)
}

func TestCreateIncident_CategoryMismatch(t *testing.T) {
	// Подготовка
	service, _, catalogMock, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	typeID := uuid.New()
	incident := testIncident(typeID, uuid.New())
	incident.Category = models.CategorySafety

	// Ожидания: тип из категории security, инцидент заявлен как safety
	catalogMock.EXPECT().GetIncidentType(ctx, typeID).Return(testIncidentType(typeID), nil)

	// Действие
	err := service.CreateIncident(ctx, incident)

	// Проверки
	require.Error(t, err)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestCreateIncident_InactiveType(t *testing.T) {
	// Подготовка
	service, _, catalogMock, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	typeID := uuid.New()
	incident := testIncident(typeID, uuid.New())
	inactiveType := testIncidentType(typeID)
	inactiveType.Active = false

	catalogMock.EXPECT().GetIncidentType(ctx, typeID).Return(inactiveType, nil)

	// Действие
	err := service.CreateIncident(ctx, incident)

	// Проверки
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestCreateIncident_MissingRequiredQuantity(t *testing.T) {
	// Подготовка
	service, _, catalogMock, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	typeID := uuid.New()
	incident := testIncident(typeID, uuid.New())
	quantityType := testIncidentType(typeID)
	quantityType.RequiresQuantity = true

	catalogMock.EXPECT().GetIncidentType(ctx, typeID).Return(quantityType, nil)

	// Действие
	err := service.CreateIncident(ctx, incident)

	// Проверки
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Msg, "quantity")
}

func TestCreateIncident_MissingRequiredCameras(t *testing.T) {
	// Подготовка
	service, _, catalogMock, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	typeID := uuid.New()
	incident := testIncident(typeID, uuid.New())
	cameraType := testIncidentType(typeID)
	cameraType.RequiresCameras = true

	catalogMock.EXPECT().GetIncidentType(ctx, typeID).Return(cameraType, nil)

	// Действие
	err := service.CreateIncident(ctx, incident)

	// Проверки
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Msg, "camera")
}

func TestGetIncident_Success_FromCache(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	expectedIncident := &models.Incident{
		ID:        incidentID,
		Reference: "20250314-VOL-001",
	}

	// Ожидания
	repoMock.EXPECT().
		GetIncidentFromCache(ctx, incidentID).
		Return(expectedIncident, nil).
		Times(1)

	// Действие
	incident, err := service.GetIncident(ctx, incidentID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedIncident, incident)
}

func TestGetIncident_Success_FromDB(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	expectedIncident := &models.Incident{
		ID:        incidentID,
		Reference: "20250314-VOL-002",
	}

	// Ожидания
	// 1. Промах кеша
	repoMock.EXPECT().
		GetIncidentFromCache(ctx, incidentID).
		Return(nil, nil).
		Times(1)
	// 2. Попадание в БД
	repoMock.EXPECT().
		GetByID(ctx, incidentID).
		Return(expectedIncident, nil).
		Times(1)
	// 3. Запись в кеш
	repoMock.EXPECT().
		SetIncidentCache(ctx, expectedIncident).
		Return(nil).
		Times(1)

	// Действие
	incident, err := service.GetIncident(ctx, incidentID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedIncident, incident)
}

func TestSetIncidentDeleted_AdminSuccess(t *testing.T) {
	// Подготовка
	service, repoMock, _, userMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	// Ожидания
	userMock.EXPECT().
		GetByEmail(ctx, "admin@example.com").
		Return(&models.User{Role: models.RoleAdmin, Active: true}, nil)
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(&models.Incident{ID: incidentID}, nil)
	repoMock.EXPECT().SetDeleted(ctx, incidentID, true).Return(nil)
	repoMock.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil)

	// Действие
	err := service.SetIncidentDeleted(ctx, incidentID, "admin@example.com", true)

	// Проверки
	require.NoError(t, err)
}

func TestSetIncidentDeleted_NonAdminForbidden(t *testing.T) {
	// Подготовка
	service, _, _, userMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	// Ожидания: роль supervisor не даёт права на мягкое удаление
	userMock.EXPECT().
		GetByEmail(ctx, "supervisor@example.com").
		Return(&models.User{Role: models.RoleSupervisor, Active: true}, nil)

	// Действие
	err := service.SetIncidentDeleted(ctx, incidentID, "supervisor@example.com", true)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCheckPrecisePoint(t *testing.T) {
	// Подготовка
	service, _, catalogMock, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	placeID := uuid.New()
	place := &models.Place{ID: placeID, Latitude: 48.8566, Longitude: 2.3522}

	catalogMock.EXPECT().GetPlace(ctx, placeID).Return(place, nil).Times(2)

	// Точка в пределах радиуса
	distance, err := service.CheckPrecisePoint(ctx, placeID, 48.8566+0.0005, 2.3522)
	require.NoError(t, err)
	assert.Equal(t, 56, distance)

	// Точка за пределами радиуса
	distance, err = service.CheckPrecisePoint(ctx, placeID, 48.8566+0.003, 2.3522)
	require.Error(t, err)
	assert.Equal(t, 334, distance)
}

func TestUpdateIncident_ReferenceImmutable(t *testing.T) {
	// Подготовка
	service, repoMock, catalogMock, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	typeID := uuid.New()
	placeID := uuid.New()
	incident := testIncident(typeID, placeID)
	incident.ID = uuid.New()

	existing := testIncident(typeID, placeID)
	existing.ID = incident.ID
	existing.Reference = "20250301-VOL-001"
	existing.MonthKey = "202503"

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, incident.ID).Return(existing, nil)
	catalogMock.EXPECT().GetIncidentType(ctx, typeID).Return(testIncidentType(typeID), nil)
	catalogMock.EXPECT().GetPlace(ctx, placeID).Return(&models.Place{ID: placeID}, nil)
	repoMock.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, updated *models.Incident) error {
			// Ссылка сохраняется от существующей записи
			assert.Equal(t, "20250301-VOL-001", updated.Reference)
			return nil
		})
	repoMock.EXPECT().InvalidateIncidentCache(ctx, incident.ID).Return(nil)

	// Действие
	err := service.UpdateIncident(ctx, incident)

	// Проверки
	require.NoError(t, err)
}
