package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/guardops/incident_ops_system/internal/service"
)

// @Summary Create a new incident
// @Description Create a new incident. The reference is stamped server-side; a precise point beyond the geofence radius is rejected. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param incident body CreateIncidentRequest true "Incident creation request"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "createIncident")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model, err := incidentFromCreateRequest(input)
	if err != nil {
		log.WithError(err).Warn("Failed to map incident request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.incidentService.CreateIncident(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create incident in service")
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, incidentToResponse(model))
}

// @Summary Get a list of incidents
// @Description Get a paginated list of incidents, newest first. Soft-deleted incidents are excluded. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {array} IncidentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	incidents, err := h.incidentService.ListIncidents(c.Request.Context(), page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, incidentsToResponses(incidents))
}

// @Summary Get incident by ID
// @Description Get a single incident by its ID. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
		return
	}
	c.JSON(http.StatusOK, incidentToResponse(incident))
}

// @Summary Update an existing incident
// @Description Update an existing incident by ID. The reference is immutable; a changed precise point is re-checked against the geofence. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param incident body UpdateIncidentRequest true "Incident update request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid incident ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [put]
func (h *Handler) updateIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "updateIncident").WithField("id", id)

	var input UpdateIncidentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model, err := incidentFromUpdateRequest(input)
	if err != nil {
		log.WithError(err).Warn("Failed to map incident request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	model.ID = id

	if err := h.incidentService.UpdateIncident(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to update incident in service")
		h.respondServiceError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Soft delete an incident
// @Description Mark an incident as deleted. Requires the admin role of the acting user. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param X-User-Email header string true "Email of the acting user"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Router /incidents/{id} [delete]
func (h *Handler) deleteIncident(c *gin.Context) {
	h.toggleIncidentDeleted(c, true)
}

// @Summary Restore a soft-deleted incident
// @Description Clear the deleted flag of an incident. Requires the admin role of the acting user. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param X-User-Email header string true "Email of the acting user"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Router /incidents/{id}/restore [post]
func (h *Handler) restoreIncident(c *gin.Context) {
	h.toggleIncidentDeleted(c, false)
}

func (h *Handler) toggleIncidentDeleted(c *gin.Context, deleted bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	actorEmail := c.GetHeader("X-User-Email")
	if actorEmail == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-User-Email header is required"})
		return
	}
	log := h.logger.WithField("method", "toggleIncidentDeleted").WithField("id", id)

	if err := h.incidentService.SetIncidentDeleted(c.Request.Context(), id, actorEmail, deleted); err != nil {
		log.WithError(err).Warn("Failed to toggle incident soft delete in service")
		h.respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Check a precise point against the place geofence
// @Description Compute the distance between a candidate point and the place coordinates; points beyond the allowed radius are rejected. Requires API key.
// @Tags Geofence
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param point body GeofenceCheckRequest true "Geofence check request"
// @Success 200 {object} GeofenceCheckResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /geofence/check [post]
func (h *Handler) checkGeofence(c *gin.Context) {
	var input GeofenceCheckRequest
	log := h.logger.WithField("method", "checkGeofence")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	placeID, err := uuid.Parse(input.PlaceID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid place ID"})
		return
	}

	distance, err := h.incidentService.CheckPrecisePoint(c.Request.Context(), placeID, input.Latitude, input.Longitude)
	if err != nil {
		// Точка вне геозоны - не сбой, а отказ с дистанцией в ответе
		var geofenceErr *service.GeofenceError
		if errors.As(err, &geofenceErr) {
			c.JSON(http.StatusOK, GeofenceCheckResponse{DistanceM: geofenceErr.DistanceM, Allowed: false})
			return
		}
		log.WithError(err).Error("Failed to check geofence in service")
		h.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, GeofenceCheckResponse{DistanceM: distance, Allowed: true})
}
