package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/guardops/incident_ops_system/internal/config"
	"github.com/guardops/incident_ops_system/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=incident.go -destination=mocks/mock_incident.go -package=mocks

// IncidentRepository определяет контракт для работы с бд инцидентов
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	Update(ctx context.Context, incident *models.Incident) error
	SetDeleted(ctx context.Context, id uuid.UUID, deleted bool) error
	List(ctx context.Context, page, pageSize int) ([]*models.Incident, error)
	CountByMonthKey(ctx context.Context, monthKey string) (int, error)
	GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	SetIncidentCache(ctx context.Context, incident *models.Incident) error
	InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error
}

// NotificationQueue определяет контракт для постановки события об инциденте
// в очередь рассылки. Публикация best-effort: её отказ никогда не препятствует
// сохранению инцидента.
type NotificationQueue interface {
	PublishIncidentCreated(ctx context.Context, incidentID uuid.UUID) error
}

// IncidentService определяет контракт для бизнес-логики управления инцидентами
type IncidentService interface {
	CreateIncident(ctx context.Context, incident *models.Incident) error
	GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	UpdateIncident(ctx context.Context, incident *models.Incident) error
	SetIncidentDeleted(ctx context.Context, id uuid.UUID, actorEmail string, deleted bool) error
	ListIncidents(ctx context.Context, page, pageSize int) ([]*models.Incident, error)
	CheckPrecisePoint(ctx context.Context, placeID uuid.UUID, lat, lng float64) (int, error)
	EnrichIncident(ctx context.Context, id uuid.UUID) (*models.EnrichedIncident, error)
}

type incidentService struct {
	repo    IncidentRepository
	catalog CatalogRepository
	users   UserRepository
	queue   NotificationQueue
	cfg     *config.Config
	logger  *logrus.Logger
}

func NewIncidentService(
	repo IncidentRepository,
	catalog CatalogRepository,
	users UserRepository,
	queue NotificationQueue,
	cfg *config.Config,
	logger *logrus.Logger,
) IncidentService {
	return &incidentService{
		repo:    repo,
		catalog: catalog,
		users:   users,
		queue:   queue,
		cfg:     cfg,
		logger:  logger,
	}
}

// CreateIncident проверяет инцидент по правилам типа и геозоны, присваивает
// ссылку и сохраняет запись. Событие для рассылки публикуется после сохранения;
// сбой публикации только логируется.
func (s *incidentService) CreateIncident(ctx context.Context, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "CreateIncident",
	})
	log.Info("Attempting to create a new incident")

	incidentType, err := s.catalog.GetIncidentType(ctx, incident.IncidentTypeID)
	if err != nil {
		log.WithError(err).Warn("Incident type not found")
		return fmt.Errorf("service: incident type not found: %w", err)
	}
	if err := validateAgainstType(incident, incidentType); err != nil {
		log.WithError(err).Warn("Incident failed type validation")
		return err
	}

	place, err := s.catalog.GetPlace(ctx, incident.PlaceID)
	if err != nil {
		log.WithError(err).Warn("Place not found")
		return fmt.Errorf("service: place not found: %w", err)
	}

	if incident.HasPrecisePoint() {
		distance, err := CheckGeofence(*incident.PreciseLat, *incident.PreciseLng, place.Latitude, place.Longitude, s.cfg.GeofenceRadiusM)
		if err != nil {
			log.WithField("distance_m", distance).Warn("Precise point rejected by geofence")
			return err
		}
		log.WithField("distance_m", distance).Debug("Precise point accepted by geofence")
	}

	// Порядковый номер берётся из count-запроса без резервирования:
	// при одновременном создании двух инцидентов в одном месяце
	// возможна дублирующаяся ссылка.
	incident.MonthKey = MonthKey(incident.OccurredOn)
	count, err := s.repo.CountByMonthKey(ctx, incident.MonthKey)
	if err != nil {
		log.WithError(err).Error("Failed to count incidents for month key")
		return fmt.Errorf("service: could not compute reference sequence: %w", err)
	}
	incident.Reference = BuildReference(incident.OccurredOn, incidentType.Name, count+1)

	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return fmt.Errorf("service: could not create incident: %w", err)
	}

	if err := s.queue.PublishIncidentCreated(ctx, incident.ID); err != nil {
		// Рассылка не должна блокировать сохранение инцидента
		log.WithError(err).Error("Failed to publish incident created event")
	}

	log.WithFields(logrus.Fields{
		"incident_id": incident.ID,
		"reference":   incident.Reference,
	}).Info("Incident created successfully")
	return nil
}

// GetIncident получает инцидент по ID, сначала из кеша
func (s *incidentService) GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})

	cached, err := s.repo.GetIncidentFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read incident cache")
	}
	if cached != nil {
		log.Debug("Incident served from cache")
		return cached, nil
	}

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to get incident in repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	if err := s.repo.SetIncidentCache(ctx, incident); err != nil {
		log.WithError(err).Warn("Failed to cache incident")
	}
	return incident, nil
}

// UpdateIncident обновляет существующий инцидент. Ссылка и месячный ключ
// неизменны; изменение уточнённой точки повторно проходит проверку геозоны.
func (s *incidentService) UpdateIncident(ctx context.Context, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateIncident",
		"incident_id": incident.ID,
	})
	log.Info("Attempting to update incident")

	existing, err := s.repo.GetByID(ctx, incident.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent incident")
		return fmt.Errorf("service: incident with id %s not found for update: %w", incident.ID, err)
	}

	incidentType, err := s.catalog.GetIncidentType(ctx, incident.IncidentTypeID)
	if err != nil {
		log.WithError(err).Warn("Incident type not found")
		return fmt.Errorf("service: incident type not found: %w", err)
	}
	if err := validateAgainstType(incident, incidentType); err != nil {
		log.WithError(err).Warn("Incident failed type validation")
		return err
	}

	place, err := s.catalog.GetPlace(ctx, incident.PlaceID)
	if err != nil {
		log.WithError(err).Warn("Place not found")
		return fmt.Errorf("service: place not found: %w", err)
	}
	if incident.HasPrecisePoint() {
		if _, err := CheckGeofence(*incident.PreciseLat, *incident.PreciseLng, place.Latitude, place.Longitude, s.cfg.GeofenceRadiusM); err != nil {
			log.WithError(err).Warn("Precise point rejected by geofence")
			return err
		}
	}

	existing.OccurredOn = incident.OccurredOn
	existing.OccurredAtTime = incident.OccurredAtTime
	existing.ZoneID = incident.ZoneID
	existing.PlaceID = incident.PlaceID
	existing.PreciseLat = incident.PreciseLat
	existing.PreciseLng = incident.PreciseLng
	existing.Category = incident.Category
	existing.IncidentTypeID = incident.IncidentTypeID
	existing.Impact = incident.Impact
	existing.PrimaryResponder = incident.PrimaryResponder
	existing.Quantity = incident.Quantity
	existing.ResponderIDs = incident.ResponderIDs
	existing.CameraIDs = incident.CameraIDs
	existing.Details = incident.Details

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update incident in repository")
		return fmt.Errorf("service: could not update incident: %w", err)
	}
	if err := s.repo.InvalidateIncidentCache(ctx, incident.ID); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}
	log.Info("Incident updated successfully")
	return nil
}

// SetIncidentDeleted переключает флаг мягкого удаления. Доступно только роли admin.
func (s *incidentService) SetIncidentDeleted(ctx context.Context, id uuid.UUID, actorEmail string, deleted bool) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "SetIncidentDeleted",
		"incident_id": id,
		"actor":       actorEmail,
	})
	log.Info("Attempting to toggle incident soft delete")

	actor, err := s.users.GetByEmail(ctx, actorEmail)
	if err != nil {
		log.WithError(err).Warn("Actor not found")
		return fmt.Errorf("service: actor not found: %w", err)
	}
	if actor.Role != models.RoleAdmin {
		log.Warn("Actor role does not permit soft delete")
		return fmt.Errorf("service: soft delete requires admin: %w", ErrForbidden)
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		log.WithError(err).Warn("Attempted to soft delete a non-existent incident")
		return fmt.Errorf("service: incident with id %s not found for delete: %w", id, err)
	}

	if err := s.repo.SetDeleted(ctx, id, deleted); err != nil {
		log.WithError(err).Error("Failed to toggle incident soft delete in repository")
		return fmt.Errorf("service: could not toggle incident soft delete: %w", err)
	}
	if err := s.repo.InvalidateIncidentCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	log.Info("Incident soft delete toggled successfully")
	return nil
}

// ListIncidents возвращает список инцидентов с пагинацией
func (s *incidentService) ListIncidents(ctx context.Context, page, pageSize int) ([]*models.Incident, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "incident",
		"method":    "ListIncidents",
		"page":      page,
		"page_size": pageSize,
	})

	incidents, err := s.repo.List(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Info("Incidents listed successfully")
	return incidents, nil
}

// CheckPrecisePoint проверяет уточнённую точку против геозоны объекта
// и возвращает расстояние в метрах
func (s *incidentService) CheckPrecisePoint(ctx context.Context, placeID uuid.UUID, lat, lng float64) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "incident",
		"method":   "CheckPrecisePoint",
		"place_id": placeID,
	})

	place, err := s.catalog.GetPlace(ctx, placeID)
	if err != nil {
		log.WithError(err).Warn("Place not found")
		return 0, fmt.Errorf("service: place not found: %w", err)
	}

	distance, err := CheckGeofence(lat, lng, place.Latitude, place.Longitude, s.cfg.GeofenceRadiusM)
	if err != nil {
		log.WithField("distance_m", distance).Debug("Precise point rejected by geofence")
		return distance, err
	}
	log.WithField("distance_m", distance).Debug("Precise point accepted by geofence")
	return distance, nil
}

// validateAgainstType проверяет согласованность инцидента с выбранным типом
func validateAgainstType(incident *models.Incident, incidentType *models.IncidentType) error {
	if !incidentType.Active {
		return newValidationError("incident type is inactive")
	}
	if incidentType.Category != incident.Category {
		return newValidationError("incident category does not match the incident type category")
	}
	if incidentType.RequiresQuantity && incident.Quantity == nil {
		return newValidationError("quantity is required for this incident type")
	}
	if incidentType.RequiresCameras && len(incident.CameraIDs) == 0 {
		return newValidationError("at least one camera is required for this incident type")
	}
	return nil
}
