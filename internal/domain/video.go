package domain

import "time"

// Video is one published video. The raw file and optional cover image live in
// the object store; this row only holds their keys. Rows are immutable after
// insert: there is no edit flow, only upload and delete.
type Video struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Title string `gorm:"not null" json:"title"`
	// VideoKey is the object store key of the video file. A row is only ever
	// written after this object was confirmed uploaded.
	VideoKey string `gorm:"uniqueIndex;not null" json:"-"`
	// ThumbnailKey is nil when no thumbnail was supplied, or when its upload
	// failed (thumbnails are best-effort).
	ThumbnailKey *string   `json:"-"`
	UploadDate   time.Time `gorm:"autoCreateTime" json:"uploadDate"`
}

func (Video) TableName() string {
	return "videos"
}
