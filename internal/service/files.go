package service

import (
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Extensions accepted for the primary video file and the optional thumbnail.
var (
	allowedVideoExtensions = map[string]bool{
		"mp4": true, "mov": true, "webm": true,
	}
	allowedImageExtensions = map[string]bool{
		"jpg": true, "jpeg": true, "png": true, "gif": true, "webp": true,
	}
)

// allowedFile reports whether name carries an extension from exts. Names
// without a dot are always rejected, as is the empty name.
func allowedFile(name string, exts map[string]bool) bool {
	ext := fileExtension(name)
	return ext != "" && exts[ext]
}

// fileExtension returns the lowercased suffix after the final dot, or "" when
// the name has no dot.
func fileExtension(name string) string {
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return ""
	}
	return strings.ToLower(name[i+1:])
}

// newObjectKey builds "<category>/<random-hex>.<ext>". The random component is
// a 128-bit UUID rendered as 32 hex characters; keys are never derived from
// the title or the file contents.
func newObjectKey(category, ext string) string {
	u := uuid.New()
	return fmt.Sprintf("%s/%s.%s", category, hex.EncodeToString(u[:]), ext)
}

// sanitizeFilename strips directory components and limits length, so a
// client-supplied filename is safe to use as a display title.
func sanitizeFilename(name string) string {
	// Normalize Windows-style backslashes before filepath.Base, which is
	// platform-specific.
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)

	if len(name) > 255 {
		ext := filepath.Ext(name)
		name = name[:255-len(ext)] + ext
	}

	if name == "" || name == "." || name == "/" {
		name = "untitled"
	}

	return name
}
