package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Anieto86/LabLink/internal/middleware"
	"github.com/Anieto86/LabLink/internal/models"
	"github.com/Anieto86/LabLink/internal/services"
	"github.com/Anieto86/LabLink/internal/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GetMe godoc
// @Summary Get own profile
// @Description Get the authenticated user's public profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserRead
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /users/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	identity := middleware.IdentityFromContext(c)
	if identity == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "User not authenticated"})
		return
	}

	user, err := h.userService.GetActiveByID(identity.UserID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "User not found"})
			return
		}
		utils.CaptureError(err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, user.Public())
}

// ListUsers godoc
// @Summary List users (admin only)
// @Description List users with pagination and search
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param search query string false "Search by name or email"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}

	page, pageSize := utils.ParsePaginationFromQuery(c.Query("page"), c.Query("page_size"))
	users, total, err := h.userService.GetAll(page, pageSize, c.Query("search"))
	if err != nil {
		utils.CaptureError(err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
		return
	}

	public := make([]models.UserRead, len(users))
	for i := range users {
		public[i] = users[i].Public()
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       public,
		"pagination": utils.CalculatePaginationInfo(int(total), page, pageSize),
	})
}

// SetUserStatus godoc
// @Summary Set user active status (admin only)
// @Description Activate or deactivate a user account
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body object{is_active=bool} true "Status request"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /users/{id}/status [put]
func (h *UserHandler) SetUserStatus(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}

	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid user id"})
		return
	}

	var req struct {
		IsActive bool `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Validation error", "issues": err.Error()})
		return
	}

	if err := h.userService.SetActive(uint(userID), req.IsActive); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "User not found"})
			return
		}
		utils.CaptureError(err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User status updated successfully"})
}

// requireAdmin loads the caller's account and aborts with 403 unless it
// holds the admin role. Role is checked against current account state,
// not token claims, so a demoted admin loses access immediately.
func (h *UserHandler) requireAdmin(c *gin.Context) bool {
	identity := middleware.IdentityFromContext(c)
	if identity == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "User not authenticated"})
		return false
	}

	user, err := h.userService.GetActiveByID(identity.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "User not found"})
		return false
	}
	if user.Role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"detail": "Admin privileges required"})
		return false
	}
	return true
}
