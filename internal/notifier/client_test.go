package notifier

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/guardops/incident_ops_system/internal/config"
	"github.com/guardops/incident_ops_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(endpointURL, secret string) *Client {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		NotifyEndpointURL: endpointURL,
		NotifySecret:      secret,
		NotifyTimeout:     time.Second,
	}
	return NewClient(cfg, logger)
}

func minimalEnriched() *models.EnrichedIncident {
	return &models.EnrichedIncident{
		Incident: &models.Incident{ID: uuid.New(), Reference: "20250314-VOL-001"},
		Zone:     &models.Zone{Name: "North"},
		Place:    &models.Place{Name: "Gate 4"},
		Type:     &models.IncidentType{Name: "Vol"},
		Author:   &models.User{DisplayName: "Agent"},
	}
}

func TestClientSend_Success(t *testing.T) {
	// Подготовка
	var gotSignature string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSignature = r.Header.Get("X-Notify-Signature")
		gotBody, _ = io.ReadAll(r.Body)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"success": true, "recipientCount": 7}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "test-secret")

	// Действие
	count, err := client.Send(context.Background(), minimalEnriched())

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 7, count)
	assert.Equal(t, generateHMACSHA256(gotBody, "test-secret"), gotSignature)
}

func TestClientSend_NoSignatureWithoutSecret(t *testing.T) {
	// Подготовка
	var gotSignature string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSignature = r.Header.Get("X-Notify-Signature")
		w.Write([]byte(`{"success": true, "recipientCount": 1}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "")

	// Действие
	_, err := client.Send(context.Background(), minimalEnriched())

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, gotSignature)
}

func TestClientSend_ServerError(t *testing.T) {
	// Подготовка
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL, "")

	// Действие
	_, err := client.Send(context.Background(), minimalEnriched())

	// Проверки
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestClientSend_EndpointReportsFailure(t *testing.T) {
	// Подготовка
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "error": "template rendering failed"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "")

	// Действие
	_, err := client.Send(context.Background(), minimalEnriched())

	// Проверки
	require.Error(t, err)
	assert.Contains(t, err.Error(), "template rendering failed")
}

func TestClientSend_MalformedResponse(t *testing.T) {
	// Подготовка
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "")

	// Действие
	_, err := client.Send(context.Background(), minimalEnriched())

	// Проверки
	require.Error(t, err)
}

func TestClientSend_EmptyEndpointURL(t *testing.T) {
	client := newTestClient("", "")

	_, err := client.Send(context.Background(), minimalEnriched())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
