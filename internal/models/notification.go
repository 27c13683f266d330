package models

// EnrichedIncident - инцидент с разрешёнными ссылками на связанные сущности,
// готовый к составлению уведомления
type EnrichedIncident struct {
	Incident   *Incident     `json:"incident"`
	Zone       *Zone         `json:"zone"`
	Place      *Place        `json:"place"`
	Type       *IncidentType `json:"incident_type"`
	Responders []*Personnel  `json:"responders"`
	Cameras    []*Camera     `json:"cameras"`
	Author     *User         `json:"author"`
}

// Recipient - получатель уведомления, выбранный маршрутизатором
type Recipient struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Tier        Tier   `json:"tier"`
}

// Message - составленное уведомление
type Message struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
