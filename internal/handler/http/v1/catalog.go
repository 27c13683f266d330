package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/guardops/incident_ops_system/internal/models"
)

// activeFlag трактует отсутствующий флаг active как true
func activeFlag(v *bool) bool {
	if v == nil {
		return true
	}
	return *v
}

// bindCatalogRequest связывает и валидирует тело справочного запроса
func (h *Handler) bindCatalogRequest(c *gin.Context, method string, input any) bool {
	log := h.logger.WithField("method", method)
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// parsePathID читает UUID из параметра :id
func parsePathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

// @Summary Create a zone
// @Tags Catalog
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param zone body ZoneRequest true "Zone"
// @Success 201 {object} models.Zone
// @Failure 400 {object} map[string]string
// @Router /zones [post]
func (h *Handler) createZone(c *gin.Context) {
	var input ZoneRequest
	if !h.bindCatalogRequest(c, "createZone", &input) {
		return
	}
	zone := &models.Zone{Name: input.Name}
	if err := h.catalogService.CreateZone(c.Request.Context(), zone); err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, zone)
}

// @Summary List zones
// @Tags Catalog
// @Produce json
// @Security ApiKeyAuth
// @Param only_active query bool false "Return only active zones"
// @Success 200 {array} models.Zone
// @Router /zones [get]
func (h *Handler) listZones(c *gin.Context) {
	zones, err := h.catalogService.ListZones(c.Request.Context(), c.Query("only_active") == "true")
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, zones)
}

// @Summary Update a zone
// @Tags Catalog
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Zone ID (UUID)"
// @Param zone body ZoneRequest true "Zone"
// @Success 200 {object} models.Zone
// @Failure 400 {object} map[string]string
// @Router /zones/{id} [put]
func (h *Handler) updateZone(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		return
	}
	var input ZoneRequest
	if !h.bindCatalogRequest(c, "updateZone", &input) {
		return
	}
	zone := &models.Zone{ID: id, Name: input.Name, Active: activeFlag(input.Active)}
	if err := h.catalogService.UpdateZone(c.Request.Context(), zone); err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, zone)
}

// @Summary Create a place
// @Tags Catalog
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param place body PlaceRequest true "Place"
// @Success 201 {object} models.Place
// @Failure 400 {object} map[string]string
// @Router /places [post]
func (h *Handler) createPlace(c *gin.Context) {
	var input PlaceRequest
	if !h.bindCatalogRequest(c, "createPlace", &input) {
		return
	}
	place, err := placeFromRequest(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.catalogService.CreatePlace(c.Request.Context(), place); err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, place)
}

// @Summary List places
// @Tags Catalog
// @Produce json
// @Security ApiKeyAuth
// @Param only_active query bool false "Return only active places"
// @Success 200 {array} models.Place
// @Router /places [get]
func (h *Handler) listPlaces(c *gin.Context) {
	places, err := h.catalogService.ListPlaces(c.Request.Context(), c.Query("only_active") == "true")
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, places)
}

// @Summary Update a place
// @Tags Catalog
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Place ID (UUID)"
// @Param place body PlaceRequest true "Place"
// @Success 200 {object} models.Place
// @Failure 400 {object} map[string]string
// @Router /places/{id} [put]
func (h *Handler) updatePlace(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		return
	}
	var input PlaceRequest
	if !h.bindCatalogRequest(c, "updatePlace", &input) {
		return
	}
	place, err := placeFromRequest(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	place.ID = id
	place.Active = activeFlag(input.Active)
	if err := h.catalogService.UpdatePlace(c.Request.Context(), place); err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, place)
}

// @Summary Create an incident type
// @Tags Catalog
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param incident_type body IncidentTypeRequest true "Incident type"
// @Success 201 {object} models.IncidentType
// @Failure 400 {object} map[string]string
// @Router /incident-types [post]
func (h *Handler) createIncidentType(c *gin.Context) {
	var input IncidentTypeRequest
	if !h.bindCatalogRequest(c, "createIncidentType", &input) {
		return
	}
	incidentType := &models.IncidentType{
		Name:             input.Name,
		Category:         models.Category(input.Category),
		RequiresCameras:  input.RequiresCameras,
		RequiresQuantity: input.RequiresQuantity,
	}
	if err := h.catalogService.CreateIncidentType(c.Request.Context(), incidentType); err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, incidentType)
}

// @Summary List incident types
// @Tags Catalog
// @Produce json
// @Security ApiKeyAuth
// @Param only_active query bool false "Return only active incident types"
// @Success 200 {array} models.IncidentType
// @Router /incident-types [get]
func (h *Handler) listIncidentTypes(c *gin.Context) {
	incidentTypes, err := h.catalogService.ListIncidentTypes(c.Request.Context(), c.Query("only_active") == "true")
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, incidentTypes)
}

// @Summary Update an incident type
// @Tags Catalog
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident type ID (UUID)"
// @Param incident_type body IncidentTypeRequest true "Incident type"
// @Success 200 {object} models.IncidentType
// @Failure 400 {object} map[string]string
// @Router /incident-types/{id} [put]
func (h *Handler) updateIncidentType(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		return
	}
	var input IncidentTypeRequest
	if !h.bindCatalogRequest(c, "updateIncidentType", &input) {
		return
	}
	incidentType := &models.IncidentType{
		ID:               id,
		Name:             input.Name,
		Category:         models.Category(input.Category),
		Active:           activeFlag(input.Active),
		RequiresCameras:  input.RequiresCameras,
		RequiresQuantity: input.RequiresQuantity,
	}
	if err := h.catalogService.UpdateIncidentType(c.Request.Context(), incidentType); err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, incidentType)
}

// @Summary Create a personnel record
// @Tags Catalog
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param personnel body PersonnelRequest true "Personnel"
// @Success 201 {object} models.Personnel
// @Failure 400 {object} map[string]string
// @Router /personnel [post]
func (h *Handler) createPersonnel(c *gin.Context) {
	var input PersonnelRequest
	if !h.bindCatalogRequest(c, "createPersonnel", &input) {
		return
	}
	person := &models.Personnel{Name: input.Name, Matricule: input.Matricule}
	if err := h.catalogService.CreatePersonnel(c.Request.Context(), person); err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, person)
}

// @Summary List personnel
// @Tags Catalog
// @Produce json
// @Security ApiKeyAuth
// @Param only_active query bool false "Return only active personnel"
// @Success 200 {array} models.Personnel
// @Router /personnel [get]
func (h *Handler) listPersonnel(c *gin.Context) {
	personnel, err := h.catalogService.ListPersonnel(c.Request.Context(), c.Query("only_active") == "true")
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, personnel)
}

// @Summary Update a personnel record
// @Tags Catalog
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Personnel ID (UUID)"
// @Param personnel body PersonnelRequest true "Personnel"
// @Success 200 {object} models.Personnel
// @Failure 400 {object} map[string]string
// @Router /personnel/{id} [put]
func (h *Handler) updatePersonnel(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		return
	}
	var input PersonnelRequest
	if !h.bindCatalogRequest(c, "updatePersonnel", &input) {
		return
	}
	person := &models.Personnel{ID: id, Name: input.Name, Matricule: input.Matricule, Active: activeFlag(input.Active)}
	if err := h.catalogService.UpdatePersonnel(c.Request.Context(), person); err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, person)
}

// @Summary Create a camera
// @Tags Catalog
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param camera body CameraRequest true "Camera"
// @Success 201 {object} models.Camera
// @Failure 400 {object} map[string]string
// @Router /cameras [post]
func (h *Handler) createCamera(c *gin.Context) {
	var input CameraRequest
	if !h.bindCatalogRequest(c, "createCamera", &input) {
		return
	}
	placeID, err := uuid.Parse(input.PlaceID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid place id"})
		return
	}
	camera := &models.Camera{Label: input.Label, PlaceID: placeID}
	if err := h.catalogService.CreateCamera(c.Request.Context(), camera); err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, camera)
}

// @Summary List cameras
// @Tags Catalog
// @Produce json
// @Security ApiKeyAuth
// @Param only_active query bool false "Return only active cameras"
// @Success 200 {array} models.Camera
// @Router /cameras [get]
func (h *Handler) listCameras(c *gin.Context) {
	cameras, err := h.catalogService.ListCameras(c.Request.Context(), c.Query("only_active") == "true")
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cameras)
}

// @Summary Update a camera
// @Tags Catalog
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Camera ID (UUID)"
// @Param camera body CameraRequest true "Camera"
// @Success 200 {object} models.Camera
// @Failure 400 {object} map[string]string
// @Router /cameras/{id} [put]
func (h *Handler) updateCamera(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		return
	}
	var input CameraRequest
	if !h.bindCatalogRequest(c, "updateCamera", &input) {
		return
	}
	placeID, err := uuid.Parse(input.PlaceID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid place id"})
		return
	}
	camera := &models.Camera{ID: id, Label: input.Label, PlaceID: placeID, Active: activeFlag(input.Active)}
	if err := h.catalogService.UpdateCamera(c.Request.Context(), camera); err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, camera)
}

// placeFromRequest преобразует DTO места в доменную модель
func placeFromRequest(dto PlaceRequest) (*models.Place, error) {
	zoneID, err := uuid.Parse(dto.ZoneID)
	if err != nil {
		return nil, err
	}
	return &models.Place{
		Name:                 dto.Name,
		ZoneID:               zoneID,
		Latitude:             dto.Latitude,
		Longitude:            dto.Longitude,
		Kind:                 dto.Kind,
		ExportEligible:       dto.ExportEligible,
		ProvisioningEligible: dto.ProvisioningEligible,
	}, nil
}
