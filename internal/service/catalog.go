package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/guardops/incident_ops_system/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=catalog.go -destination=mocks/mock_catalog.go -package=mocks

// CatalogRepository определяет контракт для работы со справочными сущностями
type CatalogRepository interface {
	CreateZone(ctx context.Context, zone *models.Zone) error
	GetZone(ctx context.Context, id uuid.UUID) (*models.Zone, error)
	UpdateZone(ctx context.Context, zone *models.Zone) error
	ListZones(ctx context.Context, onlyActive bool) ([]*models.Zone, error)

	CreatePlace(ctx context.Context, place *models.Place) error
	GetPlace(ctx context.Context, id uuid.UUID) (*models.Place, error)
	UpdatePlace(ctx context.Context, place *models.Place) error
	ListPlaces(ctx context.Context, onlyActive bool) ([]*models.Place, error)

	CreateIncidentType(ctx context.Context, incidentType *models.IncidentType) error
	GetIncidentType(ctx context.Context, id uuid.UUID) (*models.IncidentType, error)
	UpdateIncidentType(ctx context.Context, incidentType *models.IncidentType) error
	ListIncidentTypes(ctx context.Context, onlyActive bool) ([]*models.IncidentType, error)

	CreatePersonnel(ctx context.Context, person *models.Personnel) error
	GetPersonnelByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.Personnel, error)
	UpdatePersonnel(ctx context.Context, person *models.Personnel) error
	ListPersonnel(ctx context.Context, onlyActive bool) ([]*models.Personnel, error)

	CreateCamera(ctx context.Context, camera *models.Camera) error
	GetCamerasByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.Camera, error)
	UpdateCamera(ctx context.Context, camera *models.Camera) error
	ListCameras(ctx context.Context, onlyActive bool) ([]*models.Camera, error)
}

// CatalogService - тонкий слой над справочным репозиторием: CRUD без
// физического удаления, исключение из списков через флаг active
type CatalogService struct {
	repo   CatalogRepository
	logger *logrus.Logger
}

func NewCatalogService(repo CatalogRepository, logger *logrus.Logger) *CatalogService {
	return &CatalogService{repo: repo, logger: logger}
}

func (s *CatalogService) CreateZone(ctx context.Context, zone *models.Zone) error {
	zone.Active = true
	if err := s.repo.CreateZone(ctx, zone); err != nil {
		s.logger.WithError(err).Error("Failed to create zone")
		return fmt.Errorf("service: could not create zone: %w", err)
	}
	return nil
}

func (s *CatalogService) GetZone(ctx context.Context, id uuid.UUID) (*models.Zone, error) {
	zone, err := s.repo.GetZone(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get zone: %w", err)
	}
	return zone, nil
}

func (s *CatalogService) UpdateZone(ctx context.Context, zone *models.Zone) error {
	if err := s.repo.UpdateZone(ctx, zone); err != nil {
		s.logger.WithError(err).Error("Failed to update zone")
		return fmt.Errorf("service: could not update zone: %w", err)
	}
	return nil
}

func (s *CatalogService) ListZones(ctx context.Context, onlyActive bool) ([]*models.Zone, error) {
	zones, err := s.repo.ListZones(ctx, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("service: could not list zones: %w", err)
	}
	return zones, nil
}

func (s *CatalogService) CreatePlace(ctx context.Context, place *models.Place) error {
	place.Active = true
	if _, err := s.repo.GetZone(ctx, place.ZoneID); err != nil {
		return fmt.Errorf("service: zone not found for place: %w", err)
	}
	if err := s.repo.CreatePlace(ctx, place); err != nil {
		s.logger.WithError(err).Error("Failed to create place")
		return fmt.Errorf("service: could not create place: %w", err)
	}
	return nil
}

func (s *CatalogService) GetPlace(ctx context.Context, id uuid.UUID) (*models.Place, error) {
	place, err := s.repo.GetPlace(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get place: %w", err)
	}
	return place, nil
}

func (s *CatalogService) UpdatePlace(ctx context.Context, place *models.Place) error {
	if err := s.repo.UpdatePlace(ctx, place); err != nil {
		s.logger.WithError(err).Error("Failed to update place")
		return fmt.Errorf("service: could not update place: %w", err)
	}
	return nil
}

func (s *CatalogService) ListPlaces(ctx context.Context, onlyActive bool) ([]*models.Place, error) {
	places, err := s.repo.ListPlaces(ctx, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("service: could not list places: %w", err)
	}
	return places, nil
}

func (s *CatalogService) CreateIncidentType(ctx context.Context, incidentType *models.IncidentType) error {
	incidentType.Active = true
	if incidentType.Category != models.CategorySecurity && incidentType.Category != models.CategorySafety {
		return newValidationError("incident type category must be security or safety")
	}
	if err := s.repo.CreateIncidentType(ctx, incidentType); err != nil {
		s.logger.WithError(err).Error("Failed to create incident type")
		return fmt.Errorf("service: could not create incident type: %w", err)
	}
	return nil
}

func (s *CatalogService) GetIncidentType(ctx context.Context, id uuid.UUID) (*models.IncidentType, error) {
	incidentType, err := s.repo.GetIncidentType(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get incident type: %w", err)
	}
	return incidentType, nil
}

func (s *CatalogService) UpdateIncidentType(ctx context.Context, incidentType *models.IncidentType) error {
	if incidentType.Category != models.CategorySecurity && incidentType.Category != models.CategorySafety {
		return newValidationError("incident type category must be security or safety")
	}
	if err := s.repo.UpdateIncidentType(ctx, incidentType); err != nil {
		s.logger.WithError(err).Error("Failed to update incident type")
		return fmt.Errorf("service: could not update incident type: %w", err)
	}
	return nil
}

func (s *CatalogService) ListIncidentTypes(ctx context.Context, onlyActive bool) ([]*models.IncidentType, error) {
	incidentTypes, err := s.repo.ListIncidentTypes(ctx, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("service: could not list incident types: %w", err)
	}
	return incidentTypes, nil
}

func (s *CatalogService) CreatePersonnel(ctx context.Context, person *models.Personnel) error {
	person.Active = true
	if err := s.repo.CreatePersonnel(ctx, person); err != nil {
		s.logger.WithError(err).Error("Failed to create personnel")
		return fmt.Errorf("service: could not create personnel: %w", err)
	}
	return nil
}

func (s *CatalogService) UpdatePersonnel(ctx context.Context, person *models.Personnel) error {
	if err := s.repo.UpdatePersonnel(ctx, person); err != nil {
		s.logger.WithError(err).Error("Failed to update personnel")
		return fmt.Errorf("service: could not update personnel: %w", err)
	}
	return nil
}

func (s *CatalogService) ListPersonnel(ctx context.Context, onlyActive bool) ([]*models.Personnel, error) {
	personnel, err := s.repo.ListPersonnel(ctx, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("service: could not list personnel: %w", err)
	}
	return personnel, nil
}

func (s *CatalogService) CreateCamera(ctx context.Context, camera *models.Camera) error {
	camera.Active = true
	if _, err := s.repo.GetPlace(ctx, camera.PlaceID); err != nil {
		return fmt.Errorf("service: place not found for camera: %w", err)
	}
	if err := s.repo.CreateCamera(ctx, camera); err != nil {
		s.logger.WithError(err).Error("Failed to create camera")
		return fmt.Errorf("service: could not create camera: %w", err)
	}
	return nil
}

func (s *CatalogService) UpdateCamera(ctx context.Context, camera *models.Camera) error {
	if err := s.repo.UpdateCamera(ctx, camera); err != nil {
		s.logger.WithError(err).Error("Failed to update camera")
		return fmt.Errorf("service: could not update camera: %w", err)
	}
	return nil
}

func (s *CatalogService) ListCameras(ctx context.Context, onlyActive bool) ([]*models.Camera, error) {
	cameras, err := s.repo.ListCameras(ctx, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("service: could not list cameras: %w", err)
	}
	return cameras, nil
}
