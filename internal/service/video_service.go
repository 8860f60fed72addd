package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"vidhost/internal/domain"
	"vidhost/internal/repository"
	"vidhost/internal/storage"
)

// --- Error Definitions ---
var (
	ErrInvalidVideoFile   = errors.New("missing or unsupported video file")
	ErrVideoUploadFailed  = errors.New("video upload to object storage failed")
	ErrMetadataSaveFailed = errors.New("failed to record video metadata")
	ErrVideoNotFound      = errors.New("video not found")
)

// PlaceholderThumbnail is served for videos without a stored cover image.
const PlaceholderThumbnail = "/static/placeholder.svg"

// FileUpload is one incoming multipart file.
type FileUpload struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// UploadResult reports a finished upload. ThumbnailSkipped is set when a
// thumbnail was supplied but could not be stored; the video is still
// published without one.
type UploadResult struct {
	Video            *domain.Video
	ThumbnailSkipped bool
}

// VideoView is the display projection of a video for the listing and playback
// pages. URLs are built from the configured public base URL; without one the
// video link degrades to "#".
type VideoView struct {
	ID           uint
	Title        string
	VideoURL     string
	ThumbnailURL string
	UploadDate   time.Time
}

// --- Service Interface ---
type VideoService interface {
	// Upload runs the publish workflow for a video and optional thumbnail.
	Upload(ctx context.Context, title string, video FileUpload, thumbnail *FileUpload) (*UploadResult, error)

	// Delete removes a video's objects and metadata row, returning the
	// deleted video for reporting.
	Delete(ctx context.Context, id uint) (*domain.Video, error)

	// List returns all videos, newest first.
	List(ctx context.Context) ([]VideoView, error)

	// Get returns one video for playback.
	Get(ctx context.Context, id uint) (*VideoView, error)
}

// --- Service Implementation ---

type videoService struct {
	videoRepo     repository.VideoRepository
	objectStorage storage.ObjectStorage
	publicBaseURL string
}

// NewVideoService creates a new instance of videoService.
func NewVideoService(videoRepo repository.VideoRepository, objectStorage storage.ObjectStorage, publicBaseURL string) VideoService {
	return &videoService{
		videoRepo:     videoRepo,
		objectStorage: objectStorage,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Upload validates the video file, stores it, stores the thumbnail if one was
// supplied, then records the metadata row.
//
// The two assets have asymmetric failure policies: the video is required and
// any failure aborts the workflow, while the thumbnail is best-effort — a
// failed thumbnail upload is logged and the video is published without one.
// A failed metadata insert leaves the already-uploaded object(s) orphaned in
// the store; nothing attempts to compensate.
func (s *videoService) Upload(ctx context.Context, title string, video FileUpload, thumbnail *FileUpload) (*UploadResult, error) {
	// 1. Validate the primary file before touching any store
	if video.Filename == "" || video.Content == nil || !allowedFile(video.Filename, allowedVideoExtensions) {
		return nil, ErrInvalidVideoFile
	}

	// 2. Upload the video under a fresh key
	videoKey := newObjectKey("videos", fileExtension(video.Filename))
	if err := s.objectStorage.Upload(ctx, videoKey, video.Content, video.ContentType); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrVideoUploadFailed, err)
	}

	// 3. Thumbnail, best-effort
	var thumbnailKey *string
	thumbnailSkipped := false
	if thumbnail != nil && thumbnail.Filename != "" && allowedFile(thumbnail.Filename, allowedImageExtensions) {
		key := newObjectKey("thumbnails", fileExtension(thumbnail.Filename))
		if err := s.objectStorage.Upload(ctx, key, thumbnail.Content, thumbnail.ContentType); err != nil {
			// The video is already stored; publish it without a thumbnail.
			log.Printf("ERROR: Thumbnail upload failed for key '%s', continuing without: %v", key, err)
			thumbnailSkipped = true
		} else {
			thumbnailKey = &key
		}
	}

	// 4. Record metadata
	if title == "" {
		title = sanitizeFilename(video.Filename)
	}
	v := &domain.Video{
		Title:        title,
		VideoKey:     videoKey,
		ThumbnailKey: thumbnailKey,
	}
	if _, err := s.videoRepo.Create(ctx, v); err != nil {
		// The uploaded object(s) are orphaned from here on.
		log.Printf("ERROR: Failed to record metadata for key '%s': %v", videoKey, err)
		return nil, fmt.Errorf("%w: %v", ErrMetadataSaveFailed, err)
	}

	return &UploadResult{Video: v, ThumbnailSkipped: thumbnailSkipped}, nil
}

// Delete removes a video: both stored objects are deleted best-effort, then
// the metadata row is removed. Object store failures are logged but never
// block the row deletion, so a failed delete can leave an orphaned object.
func (s *videoService) Delete(ctx context.Context, id uint) (*domain.Video, error) {
	video, err := s.videoRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	if err := s.objectStorage.Delete(ctx, video.VideoKey); err != nil {
		log.Printf("ERROR: Failed to delete video object '%s': %v", video.VideoKey, err)
	}
	if video.ThumbnailKey != nil {
		if err := s.objectStorage.Delete(ctx, *video.ThumbnailKey); err != nil {
			log.Printf("ERROR: Failed to delete thumbnail object '%s': %v", *video.ThumbnailKey, err)
		}
	}

	if err := s.videoRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	return video, nil
}

// List returns display projections for all videos, newest upload first.
func (s *videoService) List(ctx context.Context) ([]VideoView, error) {
	videos, err := s.videoRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]VideoView, 0, len(videos))
	for i := range videos {
		views = append(views, s.view(&videos[i]))
	}
	return views, nil
}

// Get returns the display projection for one video.
func (s *videoService) Get(ctx context.Context, id uint) (*VideoView, error) {
	video, err := s.videoRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	view := s.view(video)
	return &view, nil
}

func (s *videoService) view(v *domain.Video) VideoView {
	view := VideoView{
		ID:           v.ID,
		Title:        v.Title,
		VideoURL:     "#",
		ThumbnailURL: PlaceholderThumbnail,
		UploadDate:   v.UploadDate,
	}
	if s.publicBaseURL != "" {
		view.VideoURL = s.publicBaseURL + "/" + v.VideoKey
		if v.ThumbnailKey != nil {
			view.ThumbnailURL = s.publicBaseURL + "/" + *v.ThumbnailKey
		}
	}
	return view
}
