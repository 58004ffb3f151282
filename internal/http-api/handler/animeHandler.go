package handler

import (
	"errors"
	"net/http"
	"strconv"

	"animedrop/internal/http-api/dto"
	"animedrop/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type AnimeHandler struct {
	animeService service.AnimeService
}

func NewAnimeHandler(animeService service.AnimeService) *AnimeHandler {
	return &AnimeHandler{animeService: animeService}
}

// RegisterRoutes registers anime routes. Discovery and detail are
// public; everything else needs an authenticated actor.
func (h *AnimeHandler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc) {
	router.GET("/discovery", h.Discovery)
	router.GET("/:id", h.GetByID)

	router.GET("/mylist", authMW, h.MyList)
	router.POST("", authMW, h.Create)
	router.PUT("/:id", authMW, h.Update)
	router.DELETE("/:id", authMW, h.Delete)
}

// Discovery lists public anime with optional genre/search filters
// GET /api/anime/discovery?genre=Action&search=fullmetal
func (h *AnimeHandler) Discovery(c *gin.Context) {
	animes, err := h.animeService.Discovery(c.Request.Context(), c.Query("genre"), c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": animes})
}

// MyList lists the caller's anime, recently updated first
// GET /api/anime/mylist
func (h *AnimeHandler) MyList(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	animes, err := h.animeService.MyList(c.Request.Context(), userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": animes})
}

// GetByID returns an anime with owner and reviews resolved
// GET /api/anime/:id
func (h *AnimeHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid anime ID"})
		return
	}

	anime, err := h.animeService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrAnimeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": anime})
}

// Create adds an anime owned by the caller
// POST /api/anime
func (h *AnimeHandler) Create(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req dto.CreateAnimeDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	anime, err := h.animeService.Create(c.Request.Context(), userID.(string), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": anime})
}

// Update applies a partial update to an owned anime
// PUT /api/anime/:id
func (h *AnimeHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid anime ID"})
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req dto.UpdateAnimeDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	anime, err := h.animeService.Update(c.Request.Context(), userID.(string), id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAnimeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": anime})
}

// Delete removes an owned anime
// DELETE /api/anime/:id
func (h *AnimeHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid anime ID"})
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.animeService.Delete(c.Request.Context(), userID.(string), id); err != nil {
		switch {
		case errors.Is(err, service.ErrAnimeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Anime deleted successfully"})
}
