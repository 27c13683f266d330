package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// ProviderError - ошибка identity-провайдера с его кодом
type ProviderError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("identity provider error %s: %s", e.Code, e.Message)
}

// userMessages - фиксированная таблица соответствия кодов провайдера
// пользовательским сообщениям; коды вне таблицы показываются как есть
var userMessages = map[string]string{
	"wrong-password":       "The password is invalid.",
	"invalid-action-code":  "The link is invalid or has expired.",
	"too-many-requests":    "Too many attempts. Please try again later.",
	"permission-denied":    "You do not have permission to perform this action.",
	"email-already-in-use": "An account already exists with this email.",
	"user-not-found":       "No account matches this email.",
}

// UserMessage переводит ошибку провайдера в сообщение для пользователя
func UserMessage(err error) string {
	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		if msg, ok := userMessages[providerErr.Code]; ok {
			return msg
		}
		return providerErr.Message
	}
	return err.Error()
}

// Client - клиент admin API внешнего identity-провайдера. Провайдер выпускает
// ссылки активации и сброса пароля; сессии и токены целиком на его стороне.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *logrus.Logger
}

func NewClient(baseURL, apiKey string, timeout time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		apiKey:  apiKey,
		logger:  logger,
	}
}

// ActivationLink выпускает ссылку активации аккаунта для email
func (c *Client) ActivationLink(ctx context.Context, email string) (string, error) {
	return c.link(ctx, "activation", email)
}

// PasswordResetLink выпускает ссылку сброса пароля для email
func (c *Client) PasswordResetLink(ctx context.Context, email string) (string, error) {
	return c.link(ctx, "password-reset", email)
}

func (c *Client) link(ctx context.Context, kind, email string) (string, error) {
	if c.baseURL == "" {
		return "", fmt.Errorf("identity API URL is not configured")
	}

	payload, err := json.Marshal(map[string]string{"email": email})
	if err != nil {
		return "", fmt.Errorf("failed to marshal link request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/links/%s", c.baseURL, kind)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create link request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call identity provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		providerErr := &ProviderError{}
		if err := json.NewDecoder(resp.Body).Decode(providerErr); err != nil || providerErr.Code == "" {
			return "", fmt.Errorf("identity provider returned status %d", resp.StatusCode)
		}
		c.logger.WithFields(logrus.Fields{
			"kind": kind,
			"code": providerErr.Code,
		}).Warn("Identity provider rejected link request")
		return "", providerErr
	}

	var linkResp struct {
		Link string `json:"link"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&linkResp); err != nil {
		return "", fmt.Errorf("failed to decode link response: %w", err)
	}
	if linkResp.Link == "" {
		return "", fmt.Errorf("identity provider returned an empty link")
	}
	return linkResp.Link, nil
}
