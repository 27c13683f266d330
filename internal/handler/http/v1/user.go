package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/guardops/incident_ops_system/internal/models"
)

// @Summary Create a new user
// @Description Create a new user account. An activation email with a sign-in link is sent to the provided address. Requires API key.
// @Tags Users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param user body CreateUserRequest true "User creation request"
// @Success 201 {object} UserResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users [post]
func (h *Handler) createUser(c *gin.Context) {
	var input CreateUserRequest
	log := h.logger.WithField("method", "createUser")

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

	user := userFromCreateRequest(input)
	if err := h.userService.CreateUser(c.Request.Context(), user); err != nil {
		log.WithError(err).Error("Failed to create user in service")
		h.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, userToResponse(user))
}

// @Summary List users
// @Description Get the list of users, optionally filtered to active accounts. Requires API key.
// @Tags Users
// @Produce json
// @Security ApiKeyAuth
// @Param only_active query bool false "Return only active users"
// @Success 200 {array} UserResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users [get]
func (h *Handler) listUsers(c *gin.Context) {
	log := h.logger.WithField("method", "listUsers")

	onlyActive := c.Query("only_active") == "true"
	users, err := h.userService.ListUsers(c.Request.Context(), onlyActive)
	if err != nil {
		log.WithError(err).Error("Failed to list users in service")
		h.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, usersToResponses(users))
}

// @Summary Get a user by ID
// @Description Get a single user by its UUID. Requires API key.
// @Tags Users
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} UserResponse
// @Failure 400 {object} map[string]string "Invalid user ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/{id} [get]
func (h *Handler) getUser(c *gin.Context) {
	log := h.logger.WithField("method", "getUser")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		log.WithError(err).Warn("Invalid user ID")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Error("Failed to get user in service")
		h.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, userToResponse(user))
}

// @Summary Update a user
// @Description Update an existing user. The email address is immutable. Requires API key.
// @Tags Users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "User ID (UUID)"
// @Param user body UpdateUserRequest true "User update request"
// @Success 200 {object} UserResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/{id} [put]
func (h *Handler) updateUser(c *gin.Context) {
	var input UpdateUserRequest
	log := h.logger.WithField("method", "updateUser")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		log.WithError(err).Warn("Invalid user ID")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

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

	user := &models.User{
		ID:          id,
		DisplayName: input.DisplayName,
		Function:    input.Function,
		Role:        models.Role(input.Role),
		Tier:        models.Tier(input.Tier),
		Active:      input.Active,
	}
	if err := h.userService.UpdateUser(c.Request.Context(), user); err != nil {
		log.WithError(err).Error("Failed to update user in service")
		h.respondServiceError(c, err)
		return
	}

	updated, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Error("Failed to fetch updated user")
		h.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, userToResponse(updated))
}

// @Summary Request a password reset
// @Description Send a password reset email to the given address. Requires API key.
// @Tags Users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body PasswordResetRequest true "Password reset request"
// @Success 200 {object} map[string]string "Reset email sent"
// @Failure 400 {object} map[string]string "Invalid request body or provider error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/password-reset [post]
func (h *Handler) requestPasswordReset(c *gin.Context) {
	var input PasswordResetRequest
	log := h.logger.WithField("method", "requestPasswordReset")

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

	if err := h.userService.RequestPasswordReset(c.Request.Context(), input.Email); err != nil {
		log.WithError(err).Error("Failed to request password reset in service")
		h.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "password reset email sent"})
}
