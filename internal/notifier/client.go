package notifier

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/guardops/incident_ops_system/internal/config"
	"github.com/guardops/incident_ops_system/internal/models"
	"github.com/sirupsen/logrus"
)

// endpointResponse - ответ удалённой точки рассылки
type endpointResponse struct {
	Success        bool   `json:"success"`
	RecipientCount int    `json:"recipientCount"`
	Error          string `json:"error"`
}

// Client доставляет обогащённый инцидент на удалённую точку рассылки.
// Ретраев нет: единственная неудачная попытка уходит в фолбэк воркера.
type Client struct {
	httpClient  *http.Client
	endpointURL string
	secret      string
	logger      *logrus.Logger
}

func NewClient(cfg *config.Config, logger *logrus.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.NotifyTimeout,
		},
		endpointURL: cfg.NotifyEndpointURL,
		secret:      cfg.NotifySecret,
		logger:      logger,
	}
}

// Send отправляет обогащённый инцидент на удалённую точку. Получатели
// вычисляются на стороне точки; возвращается recipientCount из ответа.
// Любой сбой (транспорт, не-2xx, кривой JSON, success=false) - ошибка.
func (c *Client) Send(ctx context.Context, enriched *models.EnrichedIncident) (int, error) {
	if c.endpointURL == "" {
		return 0, fmt.Errorf("notify endpoint URL is not configured")
	}

	payload, err := json.Marshal(enriched)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal enriched incident: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("failed to create dispatch request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Добавляем HMAC подпись, если NOTIFY_SECRET задан
	if c.secret != "" {
		req.Header.Set("X-Notify-Signature", generateHMACSHA256(payload, c.secret))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to send notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("notification endpoint returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to read endpoint response: %w", err)
	}

	var endpointResp endpointResponse
	if err := json.Unmarshal(body, &endpointResp); err != nil {
		return 0, fmt.Errorf("failed to unmarshal endpoint response: %w", err)
	}
	if !endpointResp.Success {
		return 0, fmt.Errorf("notification endpoint reported failure: %s", endpointResp.Error)
	}

	c.logger.WithFields(logrus.Fields{
		"incident_id":     enriched.Incident.ID,
		"recipient_count": endpointResp.RecipientCount,
	}).Info("Notification delivered by remote endpoint")
	return endpointResp.RecipientCount, nil
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
