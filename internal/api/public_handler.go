package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"vidhost/internal/service"

	"github.com/gin-gonic/gin"
)

// PublicHandler serves the listing and playback pages.
type PublicHandler struct {
	videoService service.VideoService
}

// NewPublicHandler creates a new PublicHandler.
func NewPublicHandler(videoService service.VideoService) *PublicHandler {
	return &PublicHandler{videoService: videoService}
}

// Index renders the public video listing, newest first.
func (h *PublicHandler) Index(c *gin.Context) {
	videos, err := h.videoService.List(c.Request.Context())
	if err != nil {
		log.Printf("ERROR: Failed to list videos: %v", err)
		c.HTML(http.StatusInternalServerError, "index.html", gin.H{
			"Error": "Could not load videos",
		})
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Videos":  videos,
		"Error":   c.Query("error"),
		"Message": c.Query("message"),
	})
}

// Play renders the playback page for one video.
func (h *PublicHandler) Play(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		redirectWithError(c, "/", "Video not found")
		return
	}

	video, err := h.videoService.Get(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrVideoNotFound) {
			redirectWithError(c, "/", "Video not found")
			return
		}
		log.Printf("ERROR: Failed to load video %d: %v", id, err)
		redirectWithError(c, "/", "Could not load video")
		return
	}

	c.HTML(http.StatusOK, "play.html", gin.H{"Video": video})
}
