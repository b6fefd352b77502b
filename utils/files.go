package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// UploadRoot returns the base upload directory (UPLOAD_PATH, default ./uploads).
func UploadRoot() string {
	root := os.Getenv("UPLOAD_PATH")
	if root == "" {
		root = "./uploads"
	}
	return root
}

// BucketPath ensures the named bucket directory exists under the upload root
// and returns its path.
func BucketPath(bucket string) (string, error) {
	path := filepath.Join(UploadRoot(), bucket)
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		return "", err
	}
	return path, nil
}

// StoredFilename builds the canonical stored name {org}_{purpose}_{timestamp}.{ext}
// from the original upload name.
func StoredFilename(orgCategory, purpose, originalName string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%s_%s_%d%s", orgCategory, purpose, now.Unix(), ext)
}

// AllowedUploadExt reports whether the file extension is accepted for upload.
func AllowedUploadExt(name string) bool {
	allowed := map[string]bool{
		".pdf":  true,
		".doc":  true,
		".docx": true,
		".xls":  true,
		".xlsx": true,
		".png":  true,
		".jpg":  true,
		".jpeg": true,
	}
	return allowed[strings.ToLower(filepath.Ext(name))]
}
