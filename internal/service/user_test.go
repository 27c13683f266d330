package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/guardops/incident_ops_system/internal/models"
	"github.com/guardops/incident_ops_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestUserService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestUserService(t *testing.T) (*userService, *mocks.MockUserRepository, *mocks.MockLinkProvider, *mocks.MockMailer) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockUserRepository(ctrl)
	linksMock := mocks.NewMockLinkProvider(ctrl)
	mailerMock := mocks.NewMockMailer(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewUserService(repoMock, linksMock, mailerMock, logger)
	return service.(*userService), repoMock, linksMock, mailerMock
}

func TestCreateUser_Success(t *testing.T) {
	// Подготовка
	service, repoMock, linksMock, mailerMock := newTestUserService(t)
	ctx := context.Background()
	user := &models.User{
		Email:       "agent@example.com",
		DisplayName: "Agent Dupont",
		Role:        models.RoleUser,
		Tier:        models.Tier2,
	}

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, user).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			u.ID = uuid.New()
			return nil
		})
	linksMock.EXPECT().
		ActivationLink(ctx, "agent@example.com").
		Return("https://id.example.com/activate?code=abc", nil)
	mailerMock.EXPECT().
		SendActivation(ctx, "agent@example.com", "Agent Dupont", "https://id.example.com/activate?code=abc").
		Return(nil)

	// Действие
	err := service.CreateUser(ctx, user)

	// Проверки
	require.NoError(t, err)
	assert.True(t, user.Active)
}

func TestCreateUser_UnknownTier(t *testing.T) {
	// Подготовка
	service, _, _, _ := newTestUserService(t)
	ctx := context.Background()
	user := &models.User{
		Email: "agent@example.com",
		Tier:  models.Tier("tier9"),
	}

	// Действие
	err := service.CreateUser(ctx, user)

	// Проверки
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestCreateUser_ActivationLinkFailure(t *testing.T) {
	// Подготовка
	service, repoMock, linksMock, _ := newTestUserService(t)
	ctx := context.Background()
	user := &models.User{
		Email: "agent@example.com",
		Tier:  models.Tier1,
	}

	// Ожидания: пользователь создан, но провайдер не выдал ссылку
	repoMock.EXPECT().Create(ctx, user).Return(nil)
	linksMock.EXPECT().
		ActivationLink(ctx, "agent@example.com").
		Return("", fmt.Errorf("identity provider unavailable"))

	// Действие
	err := service.CreateUser(ctx, user)

	// Проверки
	require.Error(t, err)
	assert.Contains(t, err.Error(), "activation link")
}

func TestRequestPasswordReset_Success(t *testing.T) {
	// Подготовка
	service, repoMock, linksMock, mailerMock := newTestUserService(t)
	ctx := context.Background()
	user := &models.User{
		ID:          uuid.New(),
		Email:       "agent@example.com",
		DisplayName: "Agent Dupont",
		Active:      true,
	}

	// Ожидания
	repoMock.EXPECT().GetByEmail(ctx, "agent@example.com").Return(user, nil)
	linksMock.EXPECT().
		PasswordResetLink(ctx, "agent@example.com").
		Return("https://id.example.com/reset?code=xyz", nil)
	mailerMock.EXPECT().
		SendPasswordReset(ctx, "agent@example.com", "Agent Dupont", "https://id.example.com/reset?code=xyz").
		Return(nil)

	// Действие
	err := service.RequestPasswordReset(ctx, "agent@example.com")

	// Проверки
	require.NoError(t, err)
}

func TestRequestPasswordReset_UnknownEmail(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestUserService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		GetByEmail(ctx, "ghost@example.com").
		Return(nil, fmt.Errorf("user not found"))

	// Действие
	err := service.RequestPasswordReset(ctx, "ghost@example.com")

	// Проверки
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestUpdateUser_EmailImmutable(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	existing := &models.User{
		ID:          userID,
		Email:       "agent@example.com",
		DisplayName: "Agent Dupont",
		Role:        models.RoleUser,
		Tier:        models.Tier1,
		Active:      true,
	}
	update := &models.User{
		ID:          userID,
		Email:       "hacker@example.com",
		DisplayName: "Agent Martin",
		Role:        models.RoleSupervisor,
		Tier:        models.Tier3,
		Active:      true,
	}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, userID).Return(existing, nil)
	repoMock.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, updated *models.User) error {
			// Email сохраняется от существующей записи
			assert.Equal(t, "agent@example.com", updated.Email)
			assert.Equal(t, "Agent Martin", updated.DisplayName)
			assert.Equal(t, models.Tier3, updated.Tier)
			return nil
		})

	// Действие
	err := service.UpdateUser(ctx, update)

	// Проверки
	require.NoError(t, err)
}

func TestListActiveUsers(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestUserService(t)
	ctx := context.Background()
	expected := []*models.User{{Email: "a@example.com", Active: true}}

	// Ожидания
	repoMock.EXPECT().List(ctx, true).Return(expected, nil)

	// Действие
	users, err := service.ListActiveUsers(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, users)
}
