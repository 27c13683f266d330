package models

import (
	"time"

	"github.com/google/uuid"
)

// Category - категория инцидента (две фиксированные категории)
type Category string

const (
	CategorySecurity Category = "security"
	CategorySafety   Category = "safety"
)

// Impact - уровень воздействия инцидента
type Impact string

const (
	ImpactNegligible   Impact = "negligible"
	ImpactModerate     Impact = "moderate"
	ImpactMajor        Impact = "major"
	ImpactCatastrophic Impact = "catastrophic"
)

// ResponderParty - кто реагирует на инцидент первым
type ResponderParty string

const (
	ResponderInternal ResponderParty = "internal"
	ResponderExternal ResponderParty = "external"
)

type Incident struct {
	ID               uuid.UUID      `json:"id"`
	Reference        string         `json:"reference"`
	MonthKey         string         `json:"month_key"`
	OccurredOn       time.Time      `json:"occurred_on"`
	OccurredAtTime   string         `json:"occurred_at_time"`
	ZoneID           uuid.UUID      `json:"zone_id"`
	PlaceID          uuid.UUID      `json:"place_id"`
	PreciseLat       *float64       `json:"precise_lat,omitempty"`
	PreciseLng       *float64       `json:"precise_lng,omitempty"`
	Category         Category       `json:"category"`
	IncidentTypeID   uuid.UUID      `json:"incident_type_id"`
	Impact           Impact         `json:"impact"`
	PrimaryResponder ResponderParty `json:"primary_responder"`
	Quantity         *float64       `json:"quantity,omitempty"`
	ResponderIDs     []uuid.UUID    `json:"responder_ids"`
	CameraIDs        []uuid.UUID    `json:"camera_ids"`
	Details          string         `json:"details"`
	AuthorID         uuid.UUID      `json:"author_id"`
	Deleted          bool           `json:"deleted"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// HasPrecisePoint сообщает, была ли указана уточнённая точка на карте
func (i *Incident) HasPrecisePoint() bool {
	return i.PreciseLat != nil && i.PreciseLng != nil
}
