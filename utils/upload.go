package utils

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
)

// SaveProfilePhoto stores an uploaded profile photo in the upload directory
// and returns the path under which it is served. The filename is prefixed
// with the owner id and a timestamp so uploads never collide.
func SaveProfilePhoto(c *gin.Context, file *multipart.FileHeader, uploadDir, userID string) (string, error) {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%s-%d-%s", userID, time.Now().UnixMilli(), filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(uploadDir, filename)); err != nil {
		return "", err
	}

	return "/uploads/" + filename, nil
}
