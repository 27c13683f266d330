package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/guardops/incident_ops_system/internal/models"
	"github.com/guardops/incident_ops_system/internal/service"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CatalogRepository struct {
	db *pgxpool.Pool
}

func NewCatalogRepository(db *pgxpool.Pool) service.CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) CreateZone(ctx context.Context, zone *models.Zone) error {
	query := `
		INSERT INTO zones (name, active)
		VALUES ($1, $2) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query, zone.Name, zone.Active).
		Scan(&zone.ID, &zone.CreatedAt, &zone.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create zone: %w", err)
	}
	return nil
}

func (r *CatalogRepository) GetZone(ctx context.Context, id uuid.UUID) (*models.Zone, error) {
	zone := &models.Zone{}
	query := `SELECT id, name, active, created_at, updated_at FROM zones WHERE id = $1;`
	err := r.db.QueryRow(ctx, query, id).
		Scan(&zone.ID, &zone.Name, &zone.Active, &zone.CreatedAt, &zone.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("zone with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to get zone by id: %w", err)
	}
	return zone, nil
}

func (r *CatalogRepository) UpdateZone(ctx context.Context, zone *models.Zone) error {
	query := `
		UPDATE zones SET name = $1, active = $2, updated_at = NOW()
		WHERE id = $3;
	`
	cmdTag, err := r.db.Exec(ctx, query, zone.Name, zone.Active, zone.ID)
	if err != nil {
		return fmt.Errorf("failed to update zone: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("zone with id %s not found for update", zone.ID)
	}
	return nil
}

func (r *CatalogRepository) ListZones(ctx context.Context, onlyActive bool) ([]*models.Zone, error) {
	query := `
		SELECT id, name, active, created_at, updated_at
		FROM zones
		WHERE ($1 = FALSE OR active)
		ORDER BY name;
	`
	rows, err := r.db.Query(ctx, query, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list zones: %w", err)
	}
	defer rows.Close()

	zones := make([]*models.Zone, 0)
	for rows.Next() {
		zone := &models.Zone{}
		if err := rows.Scan(&zone.ID, &zone.Name, &zone.Active, &zone.CreatedAt, &zone.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan zone row: %w", err)
		}
		zones = append(zones, zone)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return zones, nil
}

func (r *CatalogRepository) CreatePlace(ctx context.Context, place *models.Place) error {
	query := `
		INSERT INTO places (name, zone_id, latitude, longitude, kind, active, export_eligible, provisioning_eligible)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		place.Name,
		place.ZoneID,
		place.Latitude,
		place.Longitude,
		place.Kind,
		place.Active,
		place.ExportEligible,
		place.ProvisioningEligible,
	).Scan(&place.ID, &place.CreatedAt, &place.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create place: %w", err)
	}
	return nil
}

func (r *CatalogRepository) GetPlace(ctx context.Context, id uuid.UUID) (*models.Place, error) {
	place := &models.Place{}
	query := `
		SELECT id, name, zone_id, latitude, longitude, kind, active, export_eligible, provisioning_eligible, created_at, updated_at
		FROM places WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&place.ID,
		&place.Name,
		&place.ZoneID,
		&place.Latitude,
		&place.Longitude,
		&place.Kind,
		&place.Active,
		&place.ExportEligible,
		&place.ProvisioningEligible,
		&place.CreatedAt,
		&place.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("place with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to get place by id: %w", err)
	}
	return place, nil
}

func (r *CatalogRepository) UpdatePlace(ctx context.Context, place *models.Place) error {
	query := `
		UPDATE places SET
			name = $1,
			zone_id = $2,
			latitude = $3,
			longitude = $4,
			kind = $5,
			active = $6,
			export_eligible = $7,
			provisioning_eligible = $8,
			updated_at = NOW()
		WHERE id = $9;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		place.Name,
		place.ZoneID,
		place.Latitude,
		place.Longitude,
		place.Kind,
		place.Active,
		place.ExportEligible,
		place.ProvisioningEligible,
		place.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update place: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("place with id %s not found for update", place.ID)
	}
	return nil
}

func (r *CatalogRepository) ListPlaces(ctx context.Context, onlyActive bool) ([]*models.Place, error) {
	query := `
		SELECT id, name, zone_id, latitude, longitude, kind, active, export_eligible, provisioning_eligible, created_at, updated_at
		FROM places
		WHERE ($1 = FALSE OR active)
		ORDER BY name;
	`
	rows, err := r.db.Query(ctx, query, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list places: %w", err)
	}
	defer rows.Close()

	places := make([]*models.Place, 0)
	for rows.Next() {
		place := &models.Place{}
		err := rows.Scan(
			&place.ID,
			&place.Name,
			&place.ZoneID,
			&place.Latitude,
			&place.Longitude,
			&place.Kind,
			&place.Active,
			&place.ExportEligible,
			&place.ProvisioningEligible,
			&place.CreatedAt,
			&place.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan place row: %w", err)
		}
		places = append(places, place)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return places, nil
}

func (r *CatalogRepository) CreateIncidentType(ctx context.Context, incidentType *models.IncidentType) error {
	query := `
		INSERT INTO incident_types (name, category, active, requires_cameras, requires_quantity)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		incidentType.Name,
		incidentType.Category,
		incidentType.Active,
		incidentType.RequiresCameras,
		incidentType.RequiresQuantity,
	).Scan(&incidentType.ID, &incidentType.CreatedAt, &incidentType.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create incident type: %w", err)
	}
	return nil
}

func (r *CatalogRepository) GetIncidentType(ctx context.Context, id uuid.UUID) (*models.IncidentType, error) {
	incidentType := &models.IncidentType{}
	query := `
		SELECT id, name, category, active, requires_cameras, requires_quantity, created_at, updated_at
		FROM incident_types WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&incidentType.ID,
		&incidentType.Name,
		&incidentType.Category,
		&incidentType.Active,
		&incidentType.RequiresCameras,
		&incidentType.RequiresQuantity,
		&incidentType.CreatedAt,
		&incidentType.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident type with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to get incident type by id: %w", err)
	}
	return incidentType, nil
}

func (r *CatalogRepository) UpdateIncidentType(ctx context.Context, incidentType *models.IncidentType) error {
	query := `
		UPDATE incident_types SET
			name = $1,
			category = $2,
			active = $3,
			requires_cameras = $4,
			requires_quantity = $5,
			updated_at = NOW()
		WHERE id = $6;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		incidentType.Name,
		incidentType.Category,
		incidentType.Active,
		incidentType.RequiresCameras,
		incidentType.RequiresQuantity,
		incidentType.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update incident type: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident type with id %s not found for update", incidentType.ID)
	}
	return nil
}

func (r *CatalogRepository) ListIncidentTypes(ctx context.Context, onlyActive bool) ([]*models.IncidentType, error) {
	query := `
		SELECT id, name, category, active, requires_cameras, requires_quantity, created_at, updated_at
		FROM incident_types
		WHERE ($1 = FALSE OR active)
		ORDER BY name;
	`
	rows, err := r.db.Query(ctx, query, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list incident types: %w", err)
	}
	defer rows.Close()

	incidentTypes := make([]*models.IncidentType, 0)
	for rows.Next() {
		incidentType := &models.IncidentType{}
		err := rows.Scan(
			&incidentType.ID,
			&incidentType.Name,
			&incidentType.Category,
			&incidentType.Active,
			&incidentType.RequiresCameras,
			&incidentType.RequiresQuantity,
			&incidentType.CreatedAt,
			&incidentType.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident type row: %w", err)
		}
		incidentTypes = append(incidentTypes, incidentType)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidentTypes, nil
}

func (r *CatalogRepository) CreatePersonnel(ctx context.Context, person *models.Personnel) error {
	query := `
		INSERT INTO personnel (name, matricule, active)
		VALUES ($1, $2, $3) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query, person.Name, person.Matricule, person.Active).
		Scan(&person.ID, &person.CreatedAt, &person.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create personnel: %w", err)
	}
	return nil
}

// GetPersonnelByIDs возвращает персонал по набору идентификаторов (батч-чтение)
func (r *CatalogRepository) GetPersonnelByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.Personnel, error) {
	if len(ids) == 0 {
		return []*models.Personnel{}, nil
	}
	query := `
		SELECT id, name, matricule, active, created_at, updated_at
		FROM personnel
		WHERE id = ANY($1)
		ORDER BY name;
	`
	rows, err := r.db.Query(ctx, query, uuidsToStrings(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to get personnel by ids: %w", err)
	}
	defer rows.Close()

	personnel := make([]*models.Personnel, 0, len(ids))
	for rows.Next() {
		person := &models.Personnel{}
		if err := rows.Scan(&person.ID, &person.Name, &person.Matricule, &person.Active, &person.CreatedAt, &person.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan personnel row: %w", err)
		}
		personnel = append(personnel, person)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return personnel, nil
}

func (r *CatalogRepository) UpdatePersonnel(ctx context.Context, person *models.Personnel) error {
	query := `
		UPDATE personnel SET name = $1, matricule = $2, active = $3, updated_at = NOW()
		WHERE id = $4;
	`
	cmdTag, err := r.db.Exec(ctx, query, person.Name, person.Matricule, person.Active, person.ID)
	if err != nil {
		return fmt.Errorf("failed to update personnel: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("personnel with id %s not found for update", person.ID)
	}
	return nil
}

func (r *CatalogRepository) ListPersonnel(ctx context.Context, onlyActive bool) ([]*models.Personnel, error) {
	query := `
		SELECT id, name, matricule, active, created_at, updated_at
		FROM personnel
		WHERE ($1 = FALSE OR active)
		ORDER BY name;
	`
	rows, err := r.db.Query(ctx, query, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list personnel: %w", err)
	}
	defer rows.Close()

	personnel := make([]*models.Personnel, 0)
	for rows.Next() {
		person := &models.Personnel{}
		if err := rows.Scan(&person.ID, &person.Name, &person.Matricule, &person.Active, &person.CreatedAt, &person.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan personnel row: %w", err)
		}
		personnel = append(personnel, person)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return personnel, nil
}

func (r *CatalogRepository) CreateCamera(ctx context.Context, camera *models.Camera) error {
	query := `
		INSERT INTO cameras (label, place_id, active)
		VALUES ($1, $2, $3) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query, camera.Label, camera.PlaceID, camera.Active).
		Scan(&camera.ID, &camera.CreatedAt, &camera.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create camera: %w", err)
	}
	return nil
}

// GetCamerasByIDs возвращает камеры по набору идентификаторов (батч-чтение)
func (r *CatalogRepository) GetCamerasByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.Camera, error) {
	if len(ids) == 0 {
		return []*models.Camera{}, nil
	}
	query := `
		SELECT id, label, place_id, active, created_at, updated_at
		FROM cameras
		WHERE id = ANY($1)
		ORDER BY label;
	`
	rows, err := r.db.Query(ctx, query, uuidsToStrings(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to get cameras by ids: %w", err)
	}
	defer rows.Close()

	cameras := make([]*models.Camera, 0, len(ids))
	for rows.Next() {
		camera := &models.Camera{}
		if err := rows.Scan(&camera.ID, &camera.Label, &camera.PlaceID, &camera.Active, &camera.CreatedAt, &camera.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan camera row: %w", err)
		}
		cameras = append(cameras, camera)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return cameras, nil
}

func (r *CatalogRepository) UpdateCamera(ctx context.Context, camera *models.Camera) error {
	query := `
		UPDATE cameras SET label = $1, place_id = $2, active = $3, updated_at = NOW()
		WHERE id = $4;
	`
	cmdTag, err := r.db.Exec(ctx, query, camera.Label, camera.PlaceID, camera.Active, camera.ID)
	if err != nil {
		return fmt.Errorf("failed to update camera: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("camera with id %s not found for update", camera.ID)
	}
	return nil
}

func (r *CatalogRepository) ListCameras(ctx context.Context, onlyActive bool) ([]*models.Camera, error) {
	query := `
		SELECT id, label, place_id, active, created_at, updated_at
		FROM cameras
		WHERE ($1 = FALSE OR active)
		ORDER BY label;
	`
	rows, err := r.db.Query(ctx, query, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list cameras: %w", err)
	}
	defer rows.Close()

	cameras := make([]*models.Camera, 0)
	for rows.Next() {
		camera := &models.Camera{}
		if err := rows.Scan(&camera.ID, &camera.Label, &camera.PlaceID, &camera.Active, &camera.CreatedAt, &camera.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan camera row: %w", err)
		}
		cameras = append(cameras, camera)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return cameras, nil
}
