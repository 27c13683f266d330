package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/guardops/incident_ops_system/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// EnrichIncident разрешает ссылки инцидента на связанные сущности
// (зона, место, тип, персонал, камеры, автор) параллельными чтениями
func (s *incidentService) EnrichIncident(ctx context.Context, id uuid.UUID) (*models.EnrichedIncident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "EnrichIncident",
		"incident_id": id,
	})

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to load incident for enrichment")
		return nil, fmt.Errorf("service: could not load incident for enrichment: %w", err)
	}

	enriched := &models.EnrichedIncident{Incident: incident}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		zone, err := s.catalog.GetZone(gctx, incident.ZoneID)
		if err != nil {
			return fmt.Errorf("zone: %w", err)
		}
		enriched.Zone = zone
		return nil
	})
	g.Go(func() error {
		place, err := s.catalog.GetPlace(gctx, incident.PlaceID)
		if err != nil {
			return fmt.Errorf("place: %w", err)
		}
		enriched.Place = place
		return nil
	})
	g.Go(func() error {
		incidentType, err := s.catalog.GetIncidentType(gctx, incident.IncidentTypeID)
		if err != nil {
			return fmt.Errorf("incident type: %w", err)
		}
		enriched.Type = incidentType
		return nil
	})
	g.Go(func() error {
		responders, err := s.catalog.GetPersonnelByIDs(gctx, incident.ResponderIDs)
		if err != nil {
			return fmt.Errorf("responders: %w", err)
		}
		enriched.Responders = responders
		return nil
	})
	g.Go(func() error {
		cameras, err := s.catalog.GetCamerasByIDs(gctx, incident.CameraIDs)
		if err != nil {
			return fmt.Errorf("cameras: %w", err)
		}
		enriched.Cameras = cameras
		return nil
	})
	g.Go(func() error {
		author, err := s.users.GetByID(gctx, incident.AuthorID)
		if err != nil {
			return fmt.Errorf("author: %w", err)
		}
		enriched.Author = author
		return nil
	})

	if err := g.Wait(); err != nil {
		log.WithError(err).Error("Failed to enrich incident")
		return nil, fmt.Errorf("service: could not enrich incident: %w", err)
	}

	log.Debug("Incident enriched successfully")
	return enriched, nil
}
