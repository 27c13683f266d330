package notifier

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/guardops/incident_ops_system/internal/models"
)

// Текст-заполнители для пустых блоков сообщения
const (
	noRespondersText = "no responders"
	noCameraText     = "no camera"
	noDetailsText    = "no details provided"
)

// SelectRecipients выбирает получателей уведомления. Правило для каждого
// активного пользователя с непустым email, независимо от остальных:
//
//	tier1 - всегда
//	tier2 - только category == security
//	tier3 - только impact == catastrophic
//
// Неизвестный tier исключает пользователя (default-deny).
func SelectRecipients(users []*models.User, incident *models.Incident) []models.Recipient {
	recipients := make([]models.Recipient, 0, len(users))
	for _, user := range users {
		if !user.Active || user.Email == "" {
			continue
		}
		included := false
		switch user.Tier {
		case models.Tier1:
			included = true
		case models.Tier2:
			included = incident.Category == models.CategorySecurity
		case models.Tier3:
			included = incident.Impact == models.ImpactCatastrophic
		}
		if !included {
			continue
		}
		recipients = append(recipients, models.Recipient{
			Email:       user.Email,
			DisplayName: user.DisplayName,
			Tier:        user.Tier,
		})
	}
	return recipients
}

// ComposeMessage составляет текст уведомления из обогащённого инцидента.
// Чистая функция: повторный вызов на тех же данных даёт идентичный текст.
func ComposeMessage(enriched *models.EnrichedIncident) models.Message {
	incident := enriched.Incident

	var b strings.Builder
	fmt.Fprintf(&b, "Reference: %s\n", incident.Reference)
	fmt.Fprintf(&b, "Date: %s\n", incident.OccurredOn.Format("2006-01-02"))
	fmt.Fprintf(&b, "Time: %s\n", incident.OccurredAtTime)
	fmt.Fprintf(&b, "Zone: %s\n", enriched.Zone.Name)
	fmt.Fprintf(&b, "Place: %s\n", enriched.Place.Name)
	fmt.Fprintf(&b, "Category: %s\n", incident.Category)
	fmt.Fprintf(&b, "Type: %s\n", enriched.Type.Name)
	fmt.Fprintf(&b, "Impact: %s\n", incident.Impact)
	fmt.Fprintf(&b, "Primary responder: %s\n", incident.PrimaryResponder)
	fmt.Fprintf(&b, "Responders: %s\n", respondersLine(enriched.Responders))
	fmt.Fprintf(&b, "Cameras: %s\n", camerasLine(enriched.Cameras))
	if enriched.Type.RequiresQuantity && incident.Quantity != nil {
		fmt.Fprintf(&b, "Quantity: %s\n", strconv.FormatFloat(*incident.Quantity, 'f', -1, 64))
	}
	fmt.Fprintf(&b, "Details: %s\n", detailsLine(incident.Details))
	fmt.Fprintf(&b, "\nReported by: %s, %s\n", enriched.Author.DisplayName, enriched.Author.Function)

	return models.Message{
		Subject: fmt.Sprintf("%s %s", enriched.Type.Name, enriched.Place.Name),
		Body:    b.String(),
	}
}

func respondersLine(responders []*models.Personnel) string {
	if len(responders) == 0 {
		return noRespondersText
	}
	parts := make([]string, len(responders))
	for i, person := range responders {
		parts[i] = fmt.Sprintf("%s (%s)", person.Name, person.Matricule)
	}
	return strings.Join(parts, "; ")
}

func camerasLine(cameras []*models.Camera) string {
	if len(cameras) == 0 {
		return noCameraText
	}
	parts := make([]string, len(cameras))
	for i, camera := range cameras {
		parts[i] = camera.Label
	}
	return strings.Join(parts, "; ")
}

func detailsLine(details string) string {
	if strings.TrimSpace(details) == "" {
		return noDetailsText
	}
	return details
}
