package utils

import (
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
)

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// UploadDir returns the root directory for uploaded files.
func UploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return filepath.Join("static", "uploads")
}

// AllowedImage reports whether the filename carries one of the accepted
// image extensions.
func AllowedImage(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// SanitizeFilename strips any path components and replaces characters that
// are unsafe in a file name. An empty result means the name was unusable.
func SanitizeFilename(filename string) string {
	name := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	name = unsafeChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	return name
}

// SaveUploadedImage validates and stores one uploaded image under
// <upload dir>/<subdir>/ and returns its relative URL. Invalid files
// (wrong extension, empty name) are skipped: ok is false and nothing is
// written, which callers must tolerate.
func SaveUploadedImage(c *gin.Context, file *multipart.FileHeader, subdir string) (url string, ok bool) {
	if file == nil || file.Filename == "" || !AllowedImage(file.Filename) {
		return "", false
	}
	name := SanitizeFilename(file.Filename)
	if name == "" {
		return "", false
	}

	dir := filepath.Join(UploadDir(), subdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", false
	}
	if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		return "", false
	}

	return "uploads/" + subdir + "/" + name, true
}
