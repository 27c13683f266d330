package notifier

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/guardops/incident_ops_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func routingUsers() []*models.User {
	return []*models.User{
		{Email: "t1@example.com", DisplayName: "Tier One", Tier: models.Tier1, Active: true},
		{Email: "t2@example.com", DisplayName: "Tier Two", Tier: models.Tier2, Active: true},
		{Email: "t3@example.com", DisplayName: "Tier Three", Tier: models.Tier3, Active: true},
	}
}

func TestSelectRecipients_SecurityModerate(t *testing.T) {
	incident := &models.Incident{
		Category: models.CategorySecurity,
		Impact:   models.ImpactModerate,
	}

	recipients := SelectRecipients(routingUsers(), incident)

	// tier1 всегда, tier2 - категория security, tier3 - нет (не catastrophic)
	require.Len(t, recipients, 2)
	assert.Equal(t, "t1@example.com", recipients[0].Email)
	assert.Equal(t, "t2@example.com", recipients[1].Email)
}

func TestSelectRecipients_SafetyCatastrophic(t *testing.T) {
	incident := &models.Incident{
		Category: models.CategorySafety,
		Impact:   models.ImpactCatastrophic,
	}

	recipients := SelectRecipients(routingUsers(), incident)

	// tier1 всегда, tier2 - нет (не security), tier3 - impact catastrophic
	require.Len(t, recipients, 2)
	assert.Equal(t, "t1@example.com", recipients[0].Email)
	assert.Equal(t, "t3@example.com", recipients[1].Email)
}

func TestSelectRecipients_SafetyNegligible(t *testing.T) {
	incident := &models.Incident{
		Category: models.CategorySafety,
		Impact:   models.ImpactNegligible,
	}

	recipients := SelectRecipients(routingUsers(), incident)

	require.Len(t, recipients, 1)
	assert.Equal(t, models.Tier1, recipients[0].Tier)
}

func TestSelectRecipients_SkipsInactiveAndEmptyEmail(t *testing.T) {
	users := []*models.User{
		{Email: "inactive@example.com", Tier: models.Tier1, Active: false},
		{Email: "", Tier: models.Tier1, Active: true},
		{Email: "ok@example.com", Tier: models.Tier1, Active: true},
	}
	incident := &models.Incident{Category: models.CategorySecurity, Impact: models.ImpactMajor}

	recipients := SelectRecipients(users, incident)

	require.Len(t, recipients, 1)
	assert.Equal(t, "ok@example.com", recipients[0].Email)
}

func TestSelectRecipients_UnknownTierExcluded(t *testing.T) {
	users := []*models.User{
		{Email: "odd@example.com", Tier: models.Tier("tier9"), Active: true},
	}
	// Даже самый громкий инцидент не доходит до неизвестного tier
	incident := &models.Incident{Category: models.CategorySecurity, Impact: models.ImpactCatastrophic}

	recipients := SelectRecipients(users, incident)

	assert.Empty(t, recipients)
}

func TestSelectRecipients_Deterministic(t *testing.T) {
	incident := &models.Incident{Category: models.CategorySecurity, Impact: models.ImpactCatastrophic}
	users := routingUsers()

	first := SelectRecipients(users, incident)
	second := SelectRecipients(users, incident)

	assert.Equal(t, first, second)
}

func enrichedFixture() *models.EnrichedIncident {
	quantity := 3.5
	return &models.EnrichedIncident{
		Incident: &models.Incident{
			ID:               uuid.New(),
			Reference:        "20250314-VOL-005",
			OccurredOn:       time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
			OccurredAtTime:   "14:30",
			Category:         models.CategorySecurity,
			Impact:           models.ImpactModerate,
			PrimaryResponder: models.ResponderInternal,
			Quantity:         &quantity,
			Details:          "Side gate forced open",
		},
		Zone:  &models.Zone{Name: "North Perimeter"},
		Place: &models.Place{Name: "Gate 4"},
		Type:  &models.IncidentType{Name: "Vol", RequiresQuantity: true},
		Responders: []*models.Personnel{
			{Name: "J. Dupont", Matricule: "A123"},
			{Name: "M. Claire", Matricule: "B456"},
		},
		Cameras: []*models.Camera{
			{Label: "CAM-04"},
			{Label: "CAM-05"},
		},
		Author: &models.User{DisplayName: "Agent Martin", Function: "Night supervisor"},
	}
}

func TestComposeMessage(t *testing.T) {
	message := ComposeMessage(enrichedFixture())

	assert.Equal(t, "Vol Gate 4", message.Subject)

	expectedBody := "Reference: 20250314-VOL-005\n" +
		"Date: 2025-03-14\n" +
		"Time: 14:30\n" +
		"Zone: North Perimeter\n" +
		"Place: Gate 4\n" +
		"Category: security\n" +
		"Type: Vol\n" +
		"Impact: moderate\n" +
		"Primary responder: internal\n" +
		"Responders: J. Dupont (A123); M. Claire (B456)\n" +
		"Cameras: CAM-04; CAM-05\n" +
		"Quantity: 3.5\n" +
		"Details: Side gate forced open\n" +
		"\nReported by: Agent Martin, Night supervisor\n"
	assert.Equal(t, expectedBody, message.Body)
}

func TestComposeMessage_Placeholders(t *testing.T) {
	enriched := enrichedFixture()
	enriched.Responders = nil
	enriched.Cameras = nil
	enriched.Incident.Details = "   "
	// Количество не печатается, когда тип его не требует
	enriched.Type.RequiresQuantity = false

	message := ComposeMessage(enriched)

	assert.Contains(t, message.Body, "Responders: no responders\n")
	assert.Contains(t, message.Body, "Cameras: no camera\n")
	assert.Contains(t, message.Body, "Details: no details provided\n")
	assert.NotContains(t, message.Body, "Quantity:")
}

func TestComposeMessage_QuantityOmittedWhenNil(t *testing.T) {
	enriched := enrichedFixture()
	enriched.Incident.Quantity = nil

	message := ComposeMessage(enriched)

	assert.NotContains(t, message.Body, "Quantity:")
}

func TestComposeMessage_Deterministic(t *testing.T) {
	enriched := enrichedFixture()

	first := ComposeMessage(enriched)
	second := ComposeMessage(enriched)

	assert.Equal(t, first, second)
}
