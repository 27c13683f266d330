package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/guardops/incident_ops_system/internal/config"
	"github.com/guardops/incident_ops_system/internal/identity"
	"github.com/guardops/incident_ops_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	incidentService service.IncidentService
	userService     service.UserService
	catalogService  *service.CatalogService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(
	incidentService service.IncidentService,
	userService service.UserService,
	catalogService *service.CatalogService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		incidentService: incidentService,
		userService:     userService,
		catalogService:  catalogService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// respondServiceError переводит ошибку сервиса в HTTP-ответ: бизнес-валидация
// и геозона - 400, запрет по роли - 403, ошибки identity-провайдера - 400 с
// сообщением из фиксированной таблицы, остальное - 500
func (h *Handler) respondServiceError(c *gin.Context, err error) {
	var geofenceErr *service.GeofenceError
	if errors.As(err, &geofenceErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      geofenceErr.Error(),
			"distance_m": geofenceErr.DistanceM,
		})
		return
	}

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Msg})
		return
	}

	if errors.Is(err, service.ErrForbidden) {
		c.JSON(http.StatusForbidden, gin.H{"error": "operation not allowed for this role"})
		return
	}

	var providerErr *identity.ProviderError
	if errors.As(err, &providerErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": identity.UserMessage(providerErr)})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
