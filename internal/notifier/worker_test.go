package notifier

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/guardops/incident_ops_system/internal/config"
	"github.com/guardops/incident_ops_system/internal/models"
	"github.com/guardops/incident_ops_system/internal/notifier/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestWorker — вспомогательная функция для создания воркера с моками.
// Redis-клиент не нужен: Dispatch тестируется напрямую, без цикла очереди.
func newTestWorker(t *testing.T) (*Worker, *mocks.MockDispatchSender, *mocks.MockEnricher, *mocks.MockRecipientSource) {
	ctrl := gomock.NewController(t)
	senderMock := mocks.NewMockDispatchSender(ctrl)
	enricherMock := mocks.NewMockEnricher(ctrl)
	usersMock := mocks.NewMockRecipientSource(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	worker := NewWorker(nil, senderMock, enricherMock, usersMock, logger, &config.Config{})
	return worker, senderMock, enricherMock, usersMock
}

func dispatchFixture(incidentID uuid.UUID) *models.EnrichedIncident {
	return &models.EnrichedIncident{
		Incident: &models.Incident{
			ID:        incidentID,
			Reference: "20250314-VOL-005",
			Category:  models.CategorySecurity,
			Impact:    models.ImpactModerate,
		},
		Zone:   &models.Zone{Name: "North"},
		Place:  &models.Place{Name: "Gate 4"},
		Type:   &models.IncidentType{Name: "Vol"},
		Author: &models.User{DisplayName: "Agent Martin", Function: "Supervisor"},
	}
}

func TestDispatch_RemoteSuccess(t *testing.T) {
	// Подготовка
	worker, senderMock, enricherMock, _ := newTestWorker(t)
	ctx := context.Background()
	incidentID := uuid.New()
	enriched := dispatchFixture(incidentID)

	// Ожидания
	enricherMock.EXPECT().EnrichIncident(ctx, incidentID).Return(enriched, nil)
	senderMock.EXPECT().Send(ctx, enriched).Return(5, nil)

	// Действие
	result := worker.Dispatch(ctx, incidentID)

	// Проверки
	assert.True(t, result.Success)
	assert.Equal(t, 5, result.RecipientCount)
	assert.Empty(t, result.Message)
}

func TestDispatch_RemoteFailureFallsBackToSimulation(t *testing.T) {
	// Подготовка
	worker, senderMock, enricherMock, usersMock := newTestWorker(t)
	ctx := context.Background()
	incidentID := uuid.New()
	enriched := dispatchFixture(incidentID)
	users := []*models.User{
		{Email: "t1@example.com", Tier: models.Tier1, Active: true},
		{Email: "t2@example.com", Tier: models.Tier2, Active: true},
		{Email: "t3@example.com", Tier: models.Tier3, Active: true},
	}

	// Ожидания: первичный путь падает, фолбэк обогащает заново
	enricherMock.EXPECT().EnrichIncident(ctx, incidentID).Return(enriched, nil).Times(2)
	senderMock.EXPECT().Send(ctx, enriched).Return(0, fmt.Errorf("endpoint returned status 500"))
	usersMock.EXPECT().ListActiveUsers(ctx).Return(users, nil)

	// Действие
	result := worker.Dispatch(ctx, incidentID)

	// Проверки: симуляция сообщает об успехе, ничего не отправляя
	assert.True(t, result.Success)
	// security + moderate: tier1 и tier2
	assert.Equal(t, 2, result.RecipientCount)
	assert.Contains(t, result.Message, "(simulation)")
	assert.Empty(t, result.Error)
}

func TestDispatch_NoRetryOnRemoteFailure(t *testing.T) {
	// Подготовка
	worker, senderMock, enricherMock, usersMock := newTestWorker(t)
	ctx := context.Background()
	incidentID := uuid.New()
	enriched := dispatchFixture(incidentID)

	// Ожидания: ровно одна попытка отправки
	enricherMock.EXPECT().EnrichIncident(ctx, incidentID).Return(enriched, nil).Times(2)
	senderMock.EXPECT().Send(ctx, enriched).Return(0, fmt.Errorf("connection refused")).Times(1)
	usersMock.EXPECT().ListActiveUsers(ctx).Return(nil, nil)

	// Действие
	result := worker.Dispatch(ctx, incidentID)

	// Проверки
	assert.True(t, result.Success)
	assert.Equal(t, 0, result.RecipientCount)
}

func TestDispatch_EnrichmentFailure(t *testing.T) {
	// Подготовка
	worker, _, enricherMock, _ := newTestWorker(t)
	ctx := context.Background()
	incidentID := uuid.New()

	// Ожидания
	enricherMock.EXPECT().
		EnrichIncident(ctx, incidentID).
		Return(nil, fmt.Errorf("incident not found"))

	// Действие
	result := worker.Dispatch(ctx, incidentID)

	// Проверки
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "incident not found")
}

func TestDispatch_FallbackRecipientListingFailure(t *testing.T) {
	// Подготовка
	worker, senderMock, enricherMock, usersMock := newTestWorker(t)
	ctx := context.Background()
	incidentID := uuid.New()
	enriched := dispatchFixture(incidentID)

	// Ожидания
	enricherMock.EXPECT().EnrichIncident(ctx, incidentID).Return(enriched, nil).Times(2)
	senderMock.EXPECT().Send(ctx, enriched).Return(0, fmt.Errorf("timeout"))
	usersMock.EXPECT().ListActiveUsers(ctx).Return(nil, fmt.Errorf("database unavailable"))

	// Действие
	result := worker.Dispatch(ctx, incidentID)

	// Проверки: сбой самого фолбэка уже не маскируется
	assert.False(t, result.Success)
	require.NotEmpty(t, result.Error)
	assert.Contains(t, result.Error, "database unavailable")
}
