package handler

import (
	"errors"
	"net/http"

	"animedrop/internal/http-api/dto"
	"animedrop/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService   service.UserService
	socialService service.SocialService
}

func NewUserHandler(userService service.UserService, socialService service.SocialService) *UserHandler {
	return &UserHandler{userService: userService, socialService: socialService}
}

// RegisterRoutes registers user and social-graph routes, all authenticated.
func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("", h.Search)
	router.PUT("/me", h.UpdateProfile)
	router.GET("/:id", h.Profile)
	router.POST("/:id/follow", h.Follow)
	router.DELETE("/:id/follow", h.Unfollow)
}

// Search lists users by username fragment
// GET /api/users?search=ken
func (h *UserHandler) Search(c *gin.Context) {
	users, err := h.userService.Search(c.Request.Context(), c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": users})
}

// Profile returns a user's public profile with social context
// GET /api/users/:id
func (h *UserHandler) Profile(c *gin.Context) {
	profile, err := h.userService.Profile(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": profile})
}

// UpdateProfile applies a partial update to the caller's profile
// PUT /api/users/me
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req dto.UpdateProfileDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	me, err := h.userService.UpdateProfile(c.Request.Context(), userID.(string), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": me})
}

// Follow makes the caller follow the target user
// POST /api/users/:id/follow
func (h *UserHandler) Follow(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.socialService.Follow(c.Request.Context(), userID.(string), c.Param("id")); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrSelfFollow):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrAlreadyFollowing):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Successfully followed user"})
}

// Unfollow removes the caller's follow edge to the target, if any
// DELETE /api/users/:id/follow
func (h *UserHandler) Unfollow(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.socialService.Unfollow(c.Request.Context(), userID.(string), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Successfully unfollowed user"})
}
