package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/guardops/incident_ops_system/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=user.go -destination=mocks/mock_user.go -package=mocks

// UserRepository определяет контракт для работы с бд пользователей
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	List(ctx context.Context, onlyActive bool) ([]*models.User, error)
}

// LinkProvider - клиент внешнего identity-провайдера, выпускающего ссылки
// активации и сброса пароля. Сессии и токены полностью на стороне провайдера.
type LinkProvider interface {
	ActivationLink(ctx context.Context, email string) (string, error)
	PasswordResetLink(ctx context.Context, email string) (string, error)
}

// Mailer отправляет письма аккаунт-воркфлоу
type Mailer interface {
	SendActivation(ctx context.Context, toEmail, toName, link string) error
	SendPasswordReset(ctx context.Context, toEmail, toName, link string) error
}

// UserService определяет контракт для управления пользователями и
// аккаунт-воркфлоу (активация, сброс пароля)
type UserService interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	ListUsers(ctx context.Context, onlyActive bool) ([]*models.User, error)
	ListActiveUsers(ctx context.Context) ([]*models.User, error)
	RequestPasswordReset(ctx context.Context, email string) error
}

type userService struct {
	repo   UserRepository
	links  LinkProvider
	mailer Mailer
	logger *logrus.Logger
}

func NewUserService(repo UserRepository, links LinkProvider, mailer Mailer, logger *logrus.Logger) UserService {
	return &userService{
		repo:   repo,
		links:  links,
		mailer: mailer,
		logger: logger,
	}
}

// CreateUser создает пользователя и отправляет письмо активации со ссылкой,
// выпущенной identity-провайдером
func (s *userService) CreateUser(ctx context.Context, user *models.User) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "CreateUser",
		"email":   user.Email,
	})
	log.Info("Attempting to create a new user")

	if !isKnownTier(user.Tier) {
		return newValidationError("notification tier must be tier1, tier2 or tier3")
	}

	user.Active = true
	if err := s.repo.Create(ctx, user); err != nil {
		log.WithError(err).Error("Failed to create user in repository")
		return fmt.Errorf("service: could not create user: %w", err)
	}

	link, err := s.links.ActivationLink(ctx, user.Email)
	if err != nil {
		log.WithError(err).Error("Failed to obtain activation link from identity provider")
		return fmt.Errorf("service: could not obtain activation link: %w", err)
	}

	if err := s.mailer.SendActivation(ctx, user.Email, user.DisplayName, link); err != nil {
		log.WithError(err).Error("Failed to send activation email")
		return fmt.Errorf("service: could not send activation email: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User created and activation email sent")
	return nil
}

// GetUser получает пользователя по ID
func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get user: %w", err)
	}
	return user, nil
}

// GetUserByEmail получает пользователя по email
func (s *userService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("service: could not get user by email: %w", err)
	}
	return user, nil
}

// UpdateUser обновляет пользователя (полный мердж изменяемых полей)
func (s *userService) UpdateUser(ctx context.Context, user *models.User) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "UpdateUser",
		"user_id": user.ID,
	})

	if !isKnownTier(user.Tier) {
		return newValidationError("notification tier must be tier1, tier2 or tier3")
	}

	existing, err := s.repo.GetByID(ctx, user.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent user")
		return fmt.Errorf("service: user with id %s not found for update: %w", user.ID, err)
	}

	existing.DisplayName = user.DisplayName
	existing.Function = user.Function
	existing.Role = user.Role
	existing.Tier = user.Tier
	existing.Active = user.Active

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update user in repository")
		return fmt.Errorf("service: could not update user: %w", err)
	}
	log.Info("User updated successfully")
	return nil
}

// ListUsers возвращает список пользователей
func (s *userService) ListUsers(ctx context.Context, onlyActive bool) ([]*models.User, error) {
	users, err := s.repo.List(ctx, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("service: could not list users: %w", err)
	}
	return users, nil
}

// ListActiveUsers возвращает активных пользователей для маршрутизации уведомлений
func (s *userService) ListActiveUsers(ctx context.Context) ([]*models.User, error) {
	return s.ListUsers(ctx, true)
}

// RequestPasswordReset запрашивает у провайдера ссылку сброса пароля и
// отправляет её письмом
func (s *userService) RequestPasswordReset(ctx context.Context, email string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "RequestPasswordReset",
		"email":   email,
	})
	log.Info("Password reset requested")

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		log.WithError(err).Warn("Password reset requested for unknown email")
		return fmt.Errorf("service: user not found for password reset: %w", err)
	}

	link, err := s.links.PasswordResetLink(ctx, user.Email)
	if err != nil {
		log.WithError(err).Error("Failed to obtain password reset link from identity provider")
		return fmt.Errorf("service: could not obtain password reset link: %w", err)
	}

	if err := s.mailer.SendPasswordReset(ctx, user.Email, user.DisplayName, link); err != nil {
		log.WithError(err).Error("Failed to send password reset email")
		return fmt.Errorf("service: could not send password reset email: %w", err)
	}

	log.Info("Password reset email sent")
	return nil
}

func isKnownTier(tier models.Tier) bool {
	switch tier {
	case models.Tier1, models.Tier2, models.Tier3:
		return true
	}
	return false
}
