package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты для управления инцидентами (CRUD + мягкое удаление)
	incidents := api.Group("/incidents")
	{
		incidents.POST("", h.createIncident)
		incidents.GET("", h.listIncidents)
		incidents.GET("/:id", h.getIncident)
		incidents.PUT("/:id", h.updateIncident)
		incidents.DELETE("/:id", h.deleteIncident)
		incidents.POST("/:id/restore", h.restoreIncident)
	}

	// Маршрут для предварительной проверки уточнённой точки
	api.POST("/geofence/check", h.checkGeofence)

	// Маршруты для управления пользователями
	users := api.Group("/users")
	{
		users.POST("", h.createUser)
		users.GET("", h.listUsers)
		users.GET("/:id", h.getUser)
		users.PUT("/:id", h.updateUser)
		users.POST("/password-reset", h.requestPasswordReset)
	}

	// Справочники
	zones := api.Group("/zones")
	{
		zones.POST("", h.createZone)
		zones.GET("", h.listZones)
		zones.PUT("/:id", h.updateZone)
	}
	places := api.Group("/places")
	{
		places.POST("", h.createPlace)
		places.GET("", h.listPlaces)
		places.PUT("/:id", h.updatePlace)
	}
	incidentTypes := api.Group("/incident-types")
	{
		incidentTypes.POST("", h.createIncidentType)
		incidentTypes.GET("", h.listIncidentTypes)
		incidentTypes.PUT("/:id", h.updateIncidentType)
	}
	personnel := api.Group("/personnel")
	{
		personnel.POST("", h.createPersonnel)
		personnel.GET("", h.listPersonnel)
		personnel.PUT("/:id", h.updatePersonnel)
	}
	cameras := api.Group("/cameras")
	{
		cameras.POST("", h.createCamera)
		cameras.GET("", h.listCameras)
		cameras.PUT("/:id", h.updateCamera)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
