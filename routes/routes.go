package routes

import (
	"github.com/gin-gonic/gin"

	"org-compliance-api/controllers"
	"org-compliance-api/middleware"
	"org-compliance-api/models"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			public.POST("/login", controllers.Login)

			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Org Compliance API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// Account
			protected.GET("/profile", controllers.GetProfile)
			protected.PUT("/change-password", controllers.ChangePassword)

			reviewers := middleware.RequireCategory(
				models.CategoryOSLD, models.CategoryCOA, models.CategoryLCO, models.CategoryUSG)

			// Submissions
			submissions := protected.Group("/submissions")
			{
				submissions.GET("", controllers.GetSubmissions)
				submissions.GET("/:id", controllers.GetSubmission)
				submissions.GET("/revision-checklist", controllers.GetRevisionChecklist)
				submissions.POST("", controllers.CreateSubmission)

				// Only reviewing bodies decide. Endorse is approve as seen
				// from an intermediate reviewer (LCO/USG).
				submissions.POST("/:id/approve", reviewers, controllers.ApproveSubmission)
				submissions.POST("/:id/endorse", reviewers, controllers.ApproveSubmission)
				submissions.POST("/:id/reject", reviewers, controllers.RejectSubmission)
				submissions.POST("/:id/revise", reviewers, controllers.RequestRevision)
			}

			// Deadline appeals
			appeals := protected.Group("/appeals")
			{
				appeals.POST("", controllers.FileAppeal)
				appeals.GET("/state", controllers.GetAppealState)
				appeals.POST("/:id/approve", reviewers, controllers.ApproveAppeal)
				appeals.POST("/:id/decline", reviewers, controllers.DeclineAppeal)
			}

			// Events (scheduling is OSLD's)
			events := protected.Group("/events")
			{
				events.GET("", controllers.GetEvents)
				events.GET("/:id", controllers.GetEvent)
				events.GET("/:id/deadlines", controllers.GetEventDeadlines)
				events.POST("", middleware.RequireCategory(models.CategoryOSLD), controllers.CreateEvent)
				events.PUT("/:id", middleware.RequireCategory(models.CategoryOSLD), controllers.UpdateEvent)
				events.DELETE("/:id", middleware.RequireCategory(models.CategoryOSLD), controllers.DeleteEvent)
			}

			// Notifications
			notifications := protected.Group("/notifications")
			{
				notifications.GET("", controllers.GetNotifications)
				notifications.GET("/counter", controllers.GetNotificationCounter)
				notifications.PUT("/:id/read", controllers.MarkNotificationRead)
				notifications.PUT("/read-all", controllers.MarkAllNotificationsRead)
				notifications.DELETE("/:id", controllers.DeleteNotification)
			}

			// Documents
			documents := protected.Group("/documents")
			{
				documents.POST("/upload", controllers.UploadDocument)
				documents.GET("/download/:file_id", controllers.DownloadDocument)
			}

			// Form templates
			templates := protected.Group("/form-templates")
			{
				templates.GET("", controllers.GetFormTemplates)
				templates.POST("", middleware.RequireCategory(models.CategoryOSLD), controllers.CreateFormTemplate)
			}

			// Organization registry
			organizations := protected.Group("/organizations")
			{
				organizations.GET("/officers", controllers.GetOfficers)
				organizations.POST("/officers", controllers.CreateOfficer)
				organizations.DELETE("/officers/:id", controllers.DeleteOfficer)
				organizations.GET("/social-contacts", controllers.GetSocialContacts)
				organizations.POST("/social-contacts", controllers.CreateSocialContact)
				organizations.GET("/documents", controllers.GetOrgDocuments)
				organizations.POST("/documents", controllers.CreateOrgDocument)
			}

			// COA audit surfaces
			coa := protected.Group("/coa")
			{
				coa.GET("/review-copies", controllers.GetReviewCopies)
				coa.POST("/review-copies", middleware.RequireCategory(models.CategoryCOA), controllers.CreateReviewCopy)
				coa.GET("/audit-schedule", controllers.GetAuditSchedule)
				coa.POST("/audit-schedule", middleware.RequireCategory(models.CategoryCOA), controllers.CreateAuditSchedule)
			}

			// Dashboard
			protected.GET("/dashboard/stats", controllers.GetDashboardStats)
		}
	}
}
