package controllers

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"org-compliance-api/config"
	"org-compliance-api/models"
	"org-compliance-api/utils"
)

// UploadDocument stores an uploaded file in a named bucket and records it.
// Stored name follows {org}_{purpose}_{timestamp}.{ext}.
func UploadDocument(c *gin.Context) {
	orgID, ok := getCurrentOrgID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	category, _ := getCurrentCategory(c)

	bucket := c.PostForm("bucket")
	switch bucket {
	case models.BucketSubmissions, models.BucketFormTemplates, models.BucketOsldFiles:
	case "":
		bucket = models.BucketSubmissions
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown bucket"})
		return
	}

	purpose := utils.SanitizeInput(c.PostForm("purpose"))
	if purpose == "" {
		purpose = "attachment"
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	maxSize := int64(10 * 1024 * 1024) // 10MB
	if file.Size > maxSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File size exceeds 10MB limit"})
		return
	}

	if !utils.AllowedUploadExt(file.Filename) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File type not allowed"})
		return
	}

	bucketPath, err := utils.BucketPath(bucket)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create storage directory"})
		return
	}

	now := time.Now()
	storedName := utils.StoredFilename(category, purpose, file.Filename, now)
	fullPath := filepath.Join(bucketPath, storedName)

	if err := c.SaveUploadedFile(file, fullPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}

	fileUpload := models.FileUpload{
		OriginalName: file.Filename,
		StoredPath:   fullPath,
		Bucket:       bucket,
		FileSize:     file.Size,
		MimeType:     file.Header.Get("Content-Type"),
		UploadedBy:   orgID,
		UploadedAt:   now,
		CreateAt:     now,
		UpdateAt:     now,
	}

	if err := config.DB.Create(&fileUpload).Error; err != nil {
		// Remove the stored file if the record could not be written.
		os.Remove(fullPath)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file info"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "File uploaded successfully",
		"file":    fileUpload,
	})
}

// DownloadDocument streams a stored file back to the caller.
func DownloadDocument(c *gin.Context) {
	fileID, err := strconv.Atoi(c.Param("file_id"))
	if err != nil || fileID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file ID"})
		return
	}

	var fileUpload models.FileUpload
	if err := config.DB.Where("file_id = ? AND delete_at IS NULL", fileID).First(&fileUpload).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}

	if _, err := os.Stat(fileUpload.StoredPath); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "File missing from storage"})
		return
	}

	c.FileAttachment(fileUpload.StoredPath, fileUpload.OriginalName)
}
