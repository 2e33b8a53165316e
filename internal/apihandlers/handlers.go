package apihandlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"outfitter/internal/app"
	"outfitter/pkg/recommender"
)

type APIHandler struct {
	App *app.App
}

func NewAPIHandler(a *app.App) *APIHandler {
	return &APIHandler{App: a}
}

// RegisterRoutes mounts the API under router.
func (h *APIHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/health", h.HealthHandler)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/events", h.ListEventsHandler)

		eventGroup := v1.Group("/events/:event")
		{
			eventGroup.GET("/wardrobe", h.WardrobeHandler)
			eventGroup.GET("/outfit", h.SuggestOutfitHandler)
		}
	}
}

func (h *APIHandler) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *APIHandler) ListEventsHandler(c *gin.Context) {
	categories := h.App.OutfitService.Categories()
	names := make([]string, len(categories))
	for i, cat := range categories {
		names[i] = cat.String()
	}
	c.JSON(http.StatusOK, gin.H{"data": names})
}

func (h *APIHandler) WardrobeHandler(c *gin.Context) {
	event, err := recommender.ParseCategory(c.Param("event"))
	if err != nil {
		FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": h.App.OutfitService.Wardrobe(event)})
}

func (h *APIHandler) SuggestOutfitHandler(c *gin.Context) {
	event, err := recommender.ParseCategory(c.Param("event"))
	if err != nil {
		FromError(c, err)
		return
	}

	count := 1
	if raw := c.Query("count"); raw != "" {
		count, err = strconv.Atoi(raw)
		if err != nil {
			BadRequest(c, fmt.Sprintf("invalid count %q: must be an integer", raw))
			return
		}
	}

	suggestions, err := h.App.OutfitService.SuggestMany(c.Request.Context(), event, count)
	if err != nil {
		log.WithError(err).WithField("event", event.String()).Error("SuggestOutfitHandler: failed to suggest outfit")
		FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": suggestions})
}
