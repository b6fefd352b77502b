package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"org-compliance-api/config"
	"org-compliance-api/models"
)

// GetFormTemplates lists published blank forms.
func GetFormTemplates(c *gin.Context) {
	var templates []models.FormTemplate
	if err := config.DB.Preload("File").
		Where("delete_at IS NULL").
		Order("create_at DESC").
		Find(&templates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch templates"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"templates": templates,
	})
}

type createTemplateReq struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	FileID      int     `json:"file_id" binding:"required"`
}

// CreateFormTemplate publishes a template. OSLD only (enforced in routes).
func CreateFormTemplate(c *gin.Context) {
	orgID, ok := getCurrentOrgID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req createTemplateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	var fileUpload models.FileUpload
	if err := config.DB.Where("file_id = ? AND delete_at IS NULL", req.FileID).First(&fileUpload).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File not found"})
		return
	}

	now := time.Now()
	template := models.FormTemplate{
		Name:        req.Name,
		Description: req.Description,
		FileID:      req.FileID,
		UploadedBy:  orgID,
		CreateAt:    now,
		UpdateAt:    now,
	}

	if err := config.DB.Create(&template).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create template"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"template": template,
	})
}
