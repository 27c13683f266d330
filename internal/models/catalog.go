package models

import (
	"time"

	"github.com/google/uuid"
)

// Справочные сущности никогда не удаляются физически:
// флаг active исключает их из списков выбора, сохраняя историю.

type Zone struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Place struct {
	ID                   uuid.UUID `json:"id"`
	Name                 string    `json:"name"`
	ZoneID               uuid.UUID `json:"zone_id"`
	Latitude             float64   `json:"latitude"`
	Longitude            float64   `json:"longitude"`
	Kind                 string    `json:"kind"`
	Active               bool      `json:"active"`
	ExportEligible       bool      `json:"export_eligible"`
	ProvisioningEligible bool      `json:"provisioning_eligible"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

type IncidentType struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Category         Category  `json:"category"`
	Active           bool      `json:"active"`
	RequiresCameras  bool      `json:"requires_cameras"`
	RequiresQuantity bool      `json:"requires_quantity"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type Personnel struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Matricule string    `json:"matricule"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Camera struct {
	ID        uuid.UUID `json:"id"`
	Label     string    `json:"label"`
	PlaceID   uuid.UUID `json:"place_id"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
