package v1

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/guardops/incident_ops_system/internal/models"
)

// incidentFromCreateRequest преобразует DTO создания в доменную модель
func incidentFromCreateRequest(dto CreateIncidentRequest) (*models.Incident, error) {
	incident, err := incidentFromUpdateRequest(UpdateIncidentRequest{
		OccurredOn:       dto.OccurredOn,
		OccurredAtTime:   dto.OccurredAtTime,
		ZoneID:           dto.ZoneID,
		PlaceID:          dto.PlaceID,
		PreciseLat:       dto.PreciseLat,
		PreciseLng:       dto.PreciseLng,
		Category:         dto.Category,
		IncidentTypeID:   dto.IncidentTypeID,
		Impact:           dto.Impact,
		PrimaryResponder: dto.PrimaryResponder,
		Quantity:         dto.Quantity,
		ResponderIDs:     dto.ResponderIDs,
		CameraIDs:        dto.CameraIDs,
		Details:          dto.Details,
	})
	if err != nil {
		return nil, err
	}
	authorID, err := uuid.Parse(dto.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("invalid author id: %w", err)
	}
	incident.AuthorID = authorID
	return incident, nil
}

// incidentFromUpdateRequest преобразует DTO обновления в доменную модель
func incidentFromUpdateRequest(dto UpdateIncidentRequest) (*models.Incident, error) {
	if (dto.PreciseLat == nil) != (dto.PreciseLng == nil) {
		return nil, fmt.Errorf("precise_lat and precise_lng must be provided together")
	}

	occurredOn, err := time.Parse("2006-01-02", dto.OccurredOn)
	if err != nil {
		return nil, fmt.Errorf("invalid occurred_on date: %w", err)
	}
	zoneID, err := uuid.Parse(dto.ZoneID)
	if err != nil {
		return nil, fmt.Errorf("invalid zone id: %w", err)
	}
	placeID, err := uuid.Parse(dto.PlaceID)
	if err != nil {
		return nil, fmt.Errorf("invalid place id: %w", err)
	}
	typeID, err := uuid.Parse(dto.IncidentTypeID)
	if err != nil {
		return nil, fmt.Errorf("invalid incident type id: %w", err)
	}
	responderIDs, err := parseUUIDs(dto.ResponderIDs)
	if err != nil {
		return nil, fmt.Errorf("invalid responder id: %w", err)
	}
	cameraIDs, err := parseUUIDs(dto.CameraIDs)
	if err != nil {
		return nil, fmt.Errorf("invalid camera id: %w", err)
	}

	return &models.Incident{
		OccurredOn:       occurredOn,
		OccurredAtTime:   dto.OccurredAtTime,
		ZoneID:           zoneID,
		PlaceID:          placeID,
		PreciseLat:       dto.PreciseLat,
		PreciseLng:       dto.PreciseLng,
		Category:         models.Category(dto.Category),
		IncidentTypeID:   typeID,
		Impact:           models.Impact(dto.Impact),
		PrimaryResponder: models.ResponderParty(dto.PrimaryResponder),
		Quantity:         dto.Quantity,
		ResponderIDs:     responderIDs,
		CameraIDs:        cameraIDs,
		Details:          dto.Details,
	}, nil
}

// incidentToResponse преобразует доменную модель в DTO для ответа
func incidentToResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:               model.ID,
		Reference:        model.Reference,
		OccurredOn:       model.OccurredOn.Format("2006-01-02"),
		OccurredAtTime:   model.OccurredAtTime,
		ZoneID:           model.ZoneID,
		PlaceID:          model.PlaceID,
		PreciseLat:       model.PreciseLat,
		PreciseLng:       model.PreciseLng,
		Category:         string(model.Category),
		IncidentTypeID:   model.IncidentTypeID,
		Impact:           string(model.Impact),
		PrimaryResponder: string(model.PrimaryResponder),
		Quantity:         model.Quantity,
		ResponderIDs:     model.ResponderIDs,
		CameraIDs:        model.CameraIDs,
		Details:          model.Details,
		AuthorID:         model.AuthorID,
		Deleted:          model.Deleted,
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
	}
}

// incidentsToResponses преобразует слайс моделей в слайс DTO
func incidentsToResponses(incidents []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(incidents))
	for i, incident := range incidents {
		responses[i] = incidentToResponse(incident)
	}
	return responses
}

// userFromCreateRequest преобразует DTO создания пользователя в доменную модель
func userFromCreateRequest(dto CreateUserRequest) *models.User {
	return &models.User{
		Email:       dto.Email,
		DisplayName: dto.DisplayName,
		Function:    dto.Function,
		Role:        models.Role(dto.Role),
		Tier:        models.Tier(dto.Tier),
	}
}

// userToResponse преобразует доменную модель в DTO для ответа
func userToResponse(model *models.User) *UserResponse {
	return &UserResponse{
		ID:          model.ID,
		Email:       model.Email,
		DisplayName: model.DisplayName,
		Function:    model.Function,
		Role:        string(model.Role),
		Tier:        string(model.Tier),
		Active:      model.Active,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func usersToResponses(users []*models.User) []*UserResponse {
	responses := make([]*UserResponse, len(users))
	for i, user := range users {
		responses[i] = userToResponse(user)
	}
	return responses
}

func parseUUIDs(values []string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, len(values))
	for i, v := range values {
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, err
		}
		out[i] = id
	}
	return out, nil
}
