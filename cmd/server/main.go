package main

import (
	"log"

	"template-gateway/internal/api"
	"template-gateway/internal/config"
	"template-gateway/internal/database"
	"template-gateway/internal/gallery"
	"template-gateway/internal/webhook"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()
	database.InitGorm(cfg)
	database.SyncConfig(cfg)

	r := gin.Default()

	// CORS Middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	galleryClient := gallery.NewClient(cfg)
	webhookHandler := webhook.NewHandler(cfg)
	projectHandler := api.NewProjectHandler()
	templateHandler := api.NewTemplateHandler(galleryClient)
	syncHandler := api.NewSyncHandler(galleryClient)
	messageHandler := api.NewMessageHandler(galleryClient)

	// Webhook Routes
	r.GET("/webhook", webhookHandler.VerifyWebhook)
	r.POST("/webhook", webhookHandler.HandleStatusUpdate)

	apiGroup := r.Group("/api")
	{
		// Project Routes
		apiGroup.GET("/projects", projectHandler.GetProjects)
		apiGroup.POST("/projects", projectHandler.CreateProject)
		apiGroup.PUT("/projects/:id", projectHandler.UpdateProject)
		apiGroup.DELETE("/projects/:id", projectHandler.DeleteProject)

		// Sync Routes
		apiGroup.POST("/projects/:id/sync", syncHandler.SyncProject)
		apiGroup.GET("/projects/:id/sync", syncHandler.GetSyncStatus)

		// Template Routes
		apiGroup.GET("/templates", templateHandler.GetTemplates)
		apiGroup.POST("/templates", templateHandler.CreateTemplate)
		apiGroup.GET("/templates/:id", templateHandler.GetTemplate)
		apiGroup.DELETE("/templates/:id", templateHandler.DeleteTemplate)
		apiGroup.POST("/templates/preview", templateHandler.PreviewTemplate)
		apiGroup.GET("/translations/:id/variables", templateHandler.GetTemplateVariables)

		// Delivery Routes
		apiGroup.POST("/messages/template", messageHandler.SendTemplateMessage)
	}

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
