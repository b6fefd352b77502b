package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"org-compliance-api/config"
	"org-compliance-api/models"
	"org-compliance-api/utils"
)

// GetOfficers lists the caller's officer and adviser roster.
func GetOfficers(c *gin.Context) {
	orgID, ok := getCurrentOrgID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var officers []models.OrgOfficer
	if err := config.DB.Where("org_id = ?", orgID).Order("is_adviser DESC, name ASC").Find(&officers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch officers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "officers": officers})
}

type officerReq struct {
	Name      string  `json:"name" binding:"required"`
	Position  string  `json:"position" binding:"required"`
	IsAdviser bool    `json:"is_adviser"`
	Email     *string `json:"email"`
	PhotoID   *int    `json:"photo_id"`
}

// CreateOfficer adds an officer or adviser record.
func CreateOfficer(c *gin.Context) {
	orgID, ok := getCurrentOrgID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req officerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Email != nil && !utils.ValidateEmail(*req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid officer email"})
		return
	}

	officer := models.OrgOfficer{
		OrgID:     orgID,
		Name:      utils.SanitizeInput(req.Name),
		Position:  utils.SanitizeInput(req.Position),
		IsAdviser: req.IsAdviser,
		Email:     req.Email,
		PhotoID:   req.PhotoID,
		CreateAt:  time.Now(),
	}

	if err := config.DB.Create(&officer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create officer"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "officer": officer})
}

// DeleteOfficer removes an officer record. Officer rows are one of the few
// hard deletes in the system.
func DeleteOfficer(c *gin.Context) {
	orgID, ok := getCurrentOrgID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	officerID, err := strconv.Atoi(c.Param("id"))
	if err != nil || officerID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid officer ID"})
		return
	}

	result := config.DB.Delete(&models.OrgOfficer{}, "officer_id = ? AND org_id = ?", officerID, orgID)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete officer"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Officer not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Officer deleted"})
}

// GetSocialContacts lists the caller's social media contacts.
func GetSocialContacts(c *gin.Context) {
	orgID, ok := getCurrentOrgID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var contacts []models.OrgSocialContact
	if err := config.DB.Where("org_id = ?", orgID).Find(&contacts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contacts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "contacts": contacts})
}

type socialContactReq struct {
	Platform string  `json:"platform" binding:"required"`
	Handle   string  `json:"handle" binding:"required"`
	URL      *string `json:"url"`
}

// CreateSocialContact adds a social media contact.
func CreateSocialContact(c *gin.Context) {
	orgID, ok := getCurrentOrgID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req socialContactReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	contact := models.OrgSocialContact{
		OrgID:    orgID,
		Platform: utils.SanitizeInput(req.Platform),
		Handle:   utils.SanitizeInput(req.Handle),
		URL:      req.URL,
		CreateAt: time.Now(),
	}

	if err := config.DB.Create(&contact).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create contact"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "contact": contact})
}

// GetOrgDocuments lists the caller's filed documents.
func GetOrgDocuments(c *gin.Context) {
	orgID, ok := getCurrentOrgID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var documents []models.OrgDocument
	if err := config.DB.Preload("File").
		Where("org_id = ? AND delete_at IS NULL", orgID).
		Order("create_at DESC").
		Find(&documents).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch documents"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "documents": documents})
}

type orgDocumentReq struct {
	Title  string `json:"title" binding:"required"`
	FileID int    `json:"file_id" binding:"required"`
}

// CreateOrgDocument files a document against the caller's org.
func CreateOrgDocument(c *gin.Context) {
	orgID, ok := getCurrentOrgID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req orgDocumentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	var fileUpload models.FileUpload
	if err := config.DB.Where("file_id = ? AND delete_at IS NULL", req.FileID).First(&fileUpload).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File not found"})
		return
	}

	document := models.OrgDocument{
		OrgID:    orgID,
		Title:    utils.SanitizeInput(req.Title),
		FileID:   req.FileID,
		CreateAt: time.Now(),
	}

	if err := config.DB.Create(&document).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create document"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "document": document})
}
