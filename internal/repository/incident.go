package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/guardops/incident_ops_system/internal/models"
	"github.com/guardops/incident_ops_system/internal/service"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const incidentColumns = `
	id, reference, month_key, occurred_on, occurred_at_time, zone_id, place_id,
	precise_lat, precise_lng, category, incident_type_id, impact,
	primary_responder, quantity, responder_ids, camera_ids, details, author_id,
	deleted, created_at, updated_at`

type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client) service.IncidentRepository {
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// Create создает новую запись об инциденте в бд
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	query := `
		INSERT INTO incidents (
			reference, month_key, occurred_on, occurred_at_time, zone_id, place_id,
			precise_lat, precise_lng, category, incident_type_id, impact,
			primary_responder, quantity, responder_ids, camera_ids, details, author_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id, deleted, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		incident.Reference,
		incident.MonthKey,
		incident.OccurredOn,
		incident.OccurredAtTime,
		incident.ZoneID,
		incident.PlaceID,
		incident.PreciseLat,
		incident.PreciseLng,
		incident.Category,
		incident.IncidentTypeID,
		incident.Impact,
		incident.PrimaryResponder,
		incident.Quantity,
		uuidsToStrings(incident.ResponderIDs),
		uuidsToStrings(incident.CameraIDs),
		incident.Details,
		incident.AuthorID,
	).Scan(&incident.ID, &incident.Deleted, &incident.CreatedAt, &incident.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// GetByID возвращает инцидент по его UUID
func (r *IncidentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE id = $1;`

	incident, err := scanIncident(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

// Update обновляет изменяемые поля инцидента; reference и month_key неизменны
func (r *IncidentRepository) Update(ctx context.Context, incident *models.Incident) error {
	query := `
		UPDATE incidents SET
			occurred_on = $1,
			occurred_at_time = $2,
			zone_id = $3,
			place_id = $4,
			precise_lat = $5,
			precise_lng = $6,
			category = $7,
			incident_type_id = $8,
			impact = $9,
			primary_responder = $10,
			quantity = $11,
			responder_ids = $12,
			camera_ids = $13,
			details = $14,
			updated_at = NOW()
		WHERE id = $15;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		incident.OccurredOn,
		incident.OccurredAtTime,
		incident.ZoneID,
		incident.PlaceID,
		incident.PreciseLat,
		incident.PreciseLng,
		incident.Category,
		incident.IncidentTypeID,
		incident.Impact,
		incident.PrimaryResponder,
		incident.Quantity,
		uuidsToStrings(incident.ResponderIDs),
		uuidsToStrings(incident.CameraIDs),
		incident.Details,
		incident.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update incident: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident with id %s not found for update", incident.ID)
	}
	return nil
}

// SetDeleted переключает флаг мягкого удаления
func (r *IncidentRepository) SetDeleted(ctx context.Context, id uuid.UUID, deleted bool) error {
	query := `
		UPDATE incidents SET
			deleted = $1,
			updated_at = NOW()
		WHERE id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, deleted, id)
	if err != nil {
		return fmt.Errorf("failed to toggle incident soft delete: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident with id %s not found for delete", id)
	}
	return nil
}

// List возвращает неудалённые инциденты с пагинацией, новые первыми
func (r *IncidentRepository) List(ctx context.Context, page, pageSize int) ([]*models.Incident, error) {
	offset := (page - 1) * pageSize

	query := `SELECT ` + incidentColumns + `
		FROM incidents
		WHERE NOT deleted
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;`

	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}

// CountByMonthKey возвращает число инцидентов данного месяца. Счётчик
// читается без резервирования номера; см. генерацию ссылки в сервисе.
func (r *IncidentRepository) CountByMonthKey(ctx context.Context, monthKey string) (int, error) {
	query := `SELECT COUNT(*) FROM incidents WHERE month_key = $1;`
	var count int
	if err := r.db.QueryRow(ctx, query, monthKey).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count incidents by month key: %w", err)
	}
	return count, nil
}

// GetIncidentFromCache пытается получить инцидент из Redis
func (r *IncidentRepository) GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	key := fmt.Sprintf("incident:%s", id.String())
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident from cache: %w", err)
	}

	incident := &models.Incident{}
	if err := json.Unmarshal(val, incident); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident from cache: %w", err)
	}
	return incident, nil
}

// SetIncidentCache сохраняет инцидент в Redis
func (r *IncidentRepository) SetIncidentCache(ctx context.Context, incident *models.Incident) error {
	key := fmt.Sprintf("incident:%s", incident.ID.String())
	val, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal incident for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, 5*time.Minute).Err(); err != nil {
		return fmt.Errorf("failed to set incident in cache: %w", err)
	}
	return nil
}

// InvalidateIncidentCache удаляет инцидент из Redis кэша
func (r *IncidentRepository) InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error {
	key := fmt.Sprintf("incident:%s", id.String())
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate incident cache: %w", err)
	}
	return nil
}

// rowScanner покрывает pgx.Row и pgx.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanIncident(row rowScanner) (*models.Incident, error) {
	incident := &models.Incident{}
	var responderIDs, cameraIDs []string
	err := row.Scan(
		&incident.ID,
		&incident.Reference,
		&incident.MonthKey,
		&incident.OccurredOn,
		&incident.OccurredAtTime,
		&incident.ZoneID,
		&incident.PlaceID,
		&incident.PreciseLat,
		&incident.PreciseLng,
		&incident.Category,
		&incident.IncidentTypeID,
		&incident.Impact,
		&incident.PrimaryResponder,
		&incident.Quantity,
		&responderIDs,
		&cameraIDs,
		&incident.Details,
		&incident.AuthorID,
		&incident.Deleted,
		&incident.CreatedAt,
		&incident.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	incident.ResponderIDs, err = stringsToUUIDs(responderIDs)
	if err != nil {
		return nil, fmt.Errorf("bad responder id in row: %w", err)
	}
	incident.CameraIDs, err = stringsToUUIDs(cameraIDs)
	if err != nil {
		return nil, fmt.Errorf("bad camera id in row: %w", err)
	}
	return incident, nil
}

func uuidsToStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

func stringsToUUIDs(values []string) ([]uuid.UUID, error) {
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
