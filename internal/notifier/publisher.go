package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const notifyQueueKey = "incident_notify_events"

// IncidentEvent - событие очереди рассылки
type IncidentEvent struct {
	IncidentID uuid.UUID `json:"incident_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// RedisQueuePublisher публикует события об инцидентах в очередь Redis;
// реализует service.NotificationQueue
type RedisQueuePublisher struct {
	redisClient *redis.Client
}

func NewRedisQueuePublisher(client *redis.Client) *RedisQueuePublisher {
	return &RedisQueuePublisher{
		redisClient: client,
	}
}

// PublishIncidentCreated публикует событие о созданном инциденте в очередь Redis
func (p *RedisQueuePublisher) PublishIncidentCreated(ctx context.Context, incidentID uuid.UUID) error {
	event := IncidentEvent{
		IncidentID: incidentID,
		CreatedAt:  time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal incident event: %w", err)
	}

	// Используем LPUSH для добавления события в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, notifyQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish incident event to Redis: %w", err)
	}
	return nil
}
