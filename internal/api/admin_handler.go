package api

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"vidhost/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the password-gated dashboard: login, logout, upload and
// delete.
type AdminHandler struct {
	authService  service.AuthService
	videoService service.VideoService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(authService service.AuthService, videoService service.VideoService) *AdminHandler {
	return &AdminHandler{
		authService:  authService,
		videoService: videoService,
	}
}

// LoginPage renders the login form, or skips straight to the dashboard when a
// valid session cookie is already present.
func (h *AdminHandler) LoginPage(c *gin.Context) {
	if token, err := c.Cookie(SessionCookieName); err == nil && h.authService.ValidateSession(token) == nil {
		c.Redirect(http.StatusFound, "/admin/dashboard")
		return
	}
	c.HTML(http.StatusOK, "admin_login.html", gin.H{
		"Error":   c.Query("error"),
		"Message": c.Query("message"),
	})
}

// Login checks the submitted password and sets the session cookie.
func (h *AdminHandler) Login(c *gin.Context) {
	token, err := h.authService.Login(c.PostForm("password"))
	if err != nil {
		if errors.Is(err, service.ErrAuthenticationFailed) {
			redirectWithError(c, "/admin", "Wrong password")
			return
		}
		log.Printf("ERROR: Login failed: %v", err)
		redirectWithError(c, "/admin", "Could not log in")
		return
	}

	maxAge := int(h.authService.SessionTTL().Seconds())
	c.SetCookie(SessionCookieName, token, maxAge, "/", "", false, true)
	redirectWithSuccess(c, "/admin/dashboard", "Logged in")
}

// Logout clears the session cookie.
func (h *AdminHandler) Logout(c *gin.Context) {
	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
	redirectWithSuccess(c, "/admin", "Logged out")
}

// Dashboard renders the upload form and the video list.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	videos, err := h.videoService.List(c.Request.Context())
	if err != nil {
		log.Printf("ERROR: Failed to list videos: %v", err)
		c.HTML(http.StatusInternalServerError, "admin.html", gin.H{
			"Error": "Could not load videos",
		})
		return
	}

	c.HTML(http.StatusOK, "admin.html", gin.H{
		"Videos":  videos,
		"Error":   c.Query("error"),
		"Message": c.Query("message"),
	})
}

// Upload handles the dashboard upload form: a required video file, an optional
// thumbnail and an optional title.
func (h *AdminHandler) Upload(c *gin.Context) {
	videoHeader, err := c.FormFile("video_file")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			redirectWithError(c, "/admin/dashboard", "Upload exceeds the maximum allowed size")
			return
		}
		redirectWithError(c, "/admin/dashboard", "No video file selected")
		return
	}
	videoFile, err := videoHeader.Open()
	if err != nil {
		log.Printf("ERROR: Could not open uploaded video: %v", err)
		redirectWithError(c, "/admin/dashboard", "Could not read video file")
		return
	}
	defer videoFile.Close()

	video := service.FileUpload{
		Filename:    videoHeader.Filename,
		ContentType: videoHeader.Header.Get("Content-Type"),
		Content:     videoFile,
	}

	var thumbnail *service.FileUpload
	if thumbHeader, err := c.FormFile("thumbnail_file"); err == nil {
		if thumbFile, err := thumbHeader.Open(); err == nil {
			defer thumbFile.Close()
			thumbnail = &service.FileUpload{
				Filename:    thumbHeader.Filename,
				ContentType: thumbHeader.Header.Get("Content-Type"),
				Content:     thumbFile,
			}
		}
	}

	result, err := h.videoService.Upload(c.Request.Context(), c.PostForm("title"), video, thumbnail)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidVideoFile):
			redirectWithError(c, "/admin/dashboard", "Unsupported file format or empty file")
		case errors.Is(err, service.ErrVideoUploadFailed):
			redirectWithError(c, "/admin/dashboard", "Video upload to object storage failed. Check storage credentials and permissions.")
		default:
			log.Printf("ERROR: Upload failed: %v", err)
			redirectWithError(c, "/admin/dashboard", "Could not save video")
		}
		return
	}

	message := fmt.Sprintf("Video %q uploaded", result.Video.Title)
	if result.ThumbnailSkipped {
		message += " (thumbnail upload failed, published without it)"
	}
	redirectWithSuccess(c, "/admin/dashboard", message)
}

// Delete removes a video and its stored objects.
func (h *AdminHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		redirectWithError(c, "/admin/dashboard", "Video not found")
		return
	}

	video, err := h.videoService.Delete(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrVideoNotFound) {
			redirectWithError(c, "/admin/dashboard", "Video not found")
			return
		}
		log.Printf("ERROR: Delete failed for video %d: %v", id, err)
		redirectWithError(c, "/admin/dashboard", "Could not delete video")
		return
	}

	redirectWithSuccess(c, "/admin/dashboard", fmt.Sprintf("Video %q deleted", video.Title))
}
