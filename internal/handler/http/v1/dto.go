package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateIncidentRequest DTO для создания инцидента
// @Description DTO для создания инцидента
type CreateIncidentRequest struct {
	OccurredOn       string   `json:"occurred_on" validate:"required,datetime=2006-01-02"`
	OccurredAtTime   string   `json:"occurred_at_time" validate:"required,datetime=15:04"`
	ZoneID           string   `json:"zone_id" validate:"required,uuid"`
	PlaceID          string   `json:"place_id" validate:"required,uuid"`
	PreciseLat       *float64 `json:"precise_lat" validate:"omitempty,latitude"`
	PreciseLng       *float64 `json:"precise_lng" validate:"omitempty,longitude"`
	Category         string   `json:"category" validate:"required,oneof=security safety"`
	IncidentTypeID   string   `json:"incident_type_id" validate:"required,uuid"`
	Impact           string   `json:"impact" validate:"required,oneof=negligible moderate major catastrophic"`
	PrimaryResponder string   `json:"primary_responder" validate:"required,oneof=internal external"`
	Quantity         *float64 `json:"quantity" validate:"omitempty,gte=0"`
	ResponderIDs     []string `json:"responder_ids" validate:"omitempty,dive,uuid"`
	CameraIDs        []string `json:"camera_ids" validate:"omitempty,dive,uuid"`
	Details          string   `json:"details"`
	AuthorID         string   `json:"author_id" validate:"required,uuid"`
}

// UpdateIncidentRequest DTO для обновления инцидента; ссылка и автор неизменны
// @Description DTO для обновления инцидента
type UpdateIncidentRequest struct {
	OccurredOn       string   `json:"occurred_on" validate:"required,datetime=2006-01-02"`
	OccurredAtTime   string   `json:"occurred_at_time" validate:"required,datetime=15:04"`
	ZoneID           string   `json:"zone_id" validate:"required,uuid"`
	PlaceID          string   `json:"place_id" validate:"required,uuid"`
	PreciseLat       *float64 `json:"precise_lat" validate:"omitempty,latitude"`
	PreciseLng       *float64 `json:"precise_lng" validate:"omitempty,longitude"`
	Category         string   `json:"category" validate:"required,oneof=security safety"`
	IncidentTypeID   string   `json:"incident_type_id" validate:"required,uuid"`
	Impact           string   `json:"impact" validate:"required,oneof=negligible moderate major catastrophic"`
	PrimaryResponder string   `json:"primary_responder" validate:"required,oneof=internal external"`
	Quantity         *float64 `json:"quantity" validate:"omitempty,gte=0"`
	ResponderIDs     []string `json:"responder_ids" validate:"omitempty,dive,uuid"`
	CameraIDs        []string `json:"camera_ids" validate:"omitempty,dive,uuid"`
	Details          string   `json:"details"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID               uuid.UUID   `json:"id"`
	Reference        string      `json:"reference"`
	OccurredOn       string      `json:"occurred_on"`
	OccurredAtTime   string      `json:"occurred_at_time"`
	ZoneID           uuid.UUID   `json:"zone_id"`
	PlaceID          uuid.UUID   `json:"place_id"`
	PreciseLat       *float64    `json:"precise_lat,omitempty"`
	PreciseLng       *float64    `json:"precise_lng,omitempty"`
	Category         string      `json:"category"`
	IncidentTypeID   uuid.UUID   `json:"incident_type_id"`
	Impact           string      `json:"impact"`
	PrimaryResponder string      `json:"primary_responder"`
	Quantity         *float64    `json:"quantity,omitempty"`
	ResponderIDs     []uuid.UUID `json:"responder_ids"`
	CameraIDs        []uuid.UUID `json:"camera_ids"`
	Details          string      `json:"details"`
	AuthorID         uuid.UUID   `json:"author_id"`
	Deleted          bool        `json:"deleted"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// GeofenceCheckRequest DTO для проверки уточнённой точки
// @Description DTO для проверки уточнённой точки
type GeofenceCheckRequest struct {
	PlaceID   string  `json:"place_id" validate:"required,uuid"`
	Latitude  float64 `json:"latitude" validate:"required,latitude"`
	Longitude float64 `json:"longitude" validate:"required,longitude"`
}

// GeofenceCheckResponse DTO с результатом проверки геозоны
// @Description DTO с результатом проверки геозоны
type GeofenceCheckResponse struct {
	DistanceM int  `json:"distance_m"`
	Allowed   bool `json:"allowed"`
}

// CreateUserRequest DTO для создания пользователя
// @Description DTO для создания пользователя
type CreateUserRequest struct {
	Email       string `json:"email" validate:"required,email"`
	DisplayName string `json:"display_name" validate:"required,min=2,max=255"`
	Function    string `json:"function" validate:"max=255"`
	Role        string `json:"role" validate:"required,oneof=user supervisor admin"`
	Tier        string `json:"tier" validate:"required,oneof=tier1 tier2 tier3"`
}

// UpdateUserRequest DTO для обновления пользователя; email неизменен
// @Description DTO для обновления пользователя
type UpdateUserRequest struct {
	DisplayName string `json:"display_name" validate:"required,min=2,max=255"`
	Function    string `json:"function" validate:"max=255"`
	Role        string `json:"role" validate:"required,oneof=user supervisor admin"`
	Tier        string `json:"tier" validate:"required,oneof=tier1 tier2 tier3"`
	Active      bool   `json:"active"`
}

// UserResponse DTO для ответа с информацией о пользователе
// @Description DTO для ответа с информацией о пользователе
type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Function    string    `json:"function"`
	Role        string    `json:"role"`
	Tier        string    `json:"tier"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PasswordResetRequest DTO для запроса сброса пароля
// @Description DTO для запроса сброса пароля
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ZoneRequest DTO для создания/обновления зоны
type ZoneRequest struct {
	Name   string `json:"name" validate:"required,min=2,max=255"`
	Active *bool  `json:"active"`
}

// PlaceRequest DTO для создания/обновления места
type PlaceRequest struct {
	Name                 string  `json:"name" validate:"required,min=2,max=255"`
	ZoneID               string  `json:"zone_id" validate:"required,uuid"`
	Latitude             float64 `json:"latitude" validate:"required,latitude"`
	Longitude            float64 `json:"longitude" validate:"required,longitude"`
	Kind                 string  `json:"kind" validate:"required,max=64"`
	Active               *bool   `json:"active"`
	ExportEligible       bool    `json:"export_eligible"`
	ProvisioningEligible bool    `json:"provisioning_eligible"`
}

// IncidentTypeRequest DTO для создания/обновления типа инцидента
type IncidentTypeRequest struct {
	Name             string `json:"name" validate:"required,min=2,max=255"`
	Category         string `json:"category" validate:"required,oneof=security safety"`
	Active           *bool  `json:"active"`
	RequiresCameras  bool   `json:"requires_cameras"`
	RequiresQuantity bool   `json:"requires_quantity"`
}

// PersonnelRequest DTO для создания/обновления сотрудника
type PersonnelRequest struct {
	Name      string `json:"name" validate:"required,min=2,max=255"`
	Matricule string `json:"matricule" validate:"required,min=1,max=64"`
	Active    *bool  `json:"active"`
}

// CameraRequest DTO для создания/обновления камеры
type CameraRequest struct {
	Label   string `json:"label" validate:"required,min=1,max=255"`
	PlaceID string `json:"place_id" validate:"required,uuid"`
	Active  *bool  `json:"active"`
}
