package api

import (
	"log"
	"net/http"

	"template-gateway/internal/database"
	"template-gateway/internal/gallery"
	"template-gateway/internal/models"
	"template-gateway/internal/template"

	"github.com/gin-gonic/gin"
)

type SyncHandler struct {
	Client *gallery.Client
}

func NewSyncHandler(client *gallery.Client) *SyncHandler {
	return &SyncHandler{Client: client}
}

// SyncProject fetches the gallery's approval statuses and reduces them to a
// single rollout status for the project's templates. The per-translation
// statuses are persisted as a side effect so the dashboard stays current.
func (h *SyncHandler) SyncProject(c *gin.Context) {
	var project models.Project
	if err := database.GormDB.First(&project, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	var templates []models.Template
	if err := database.GormDB.Where("project_id = ?", project.ID).Order("id").Find(&templates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	names := make([]string, 0, len(templates))
	for _, t := range templates {
		names = append(names, t.Name)
	}

	statusMap, err := h.Client.FetchTemplateStatuses()
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch statuses from gallery: " + err.Error()})
		return
	}

	status := template.ComputeSyncStatus(statusMap, names)

	// Push the fetched per-translation statuses back onto stored rows.
	for _, t := range templates {
		translations, ok := statusMap[t.Name]
		if !ok || len(translations) == 0 {
			continue
		}
		if err := database.GormDB.Model(&models.TemplateTranslation{}).
			Where("template_id = ?", t.ID).
			Update("status", translations[0].Status).Error; err != nil {
			log.Printf("Error updating status for template %s: %v", t.Name, err)
		}
	}

	syncLog := models.SyncLog{
		ProjectID: project.ID,
		Status:    status,
	}
	if err := database.GormDB.Create(&syncLog).Error; err != nil {
		log.Printf("Error saving sync log for project %d: %v", project.ID, err)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    status,
		"templates": len(names),
	})
}

// GetSyncStatus returns the latest recorded rollout status for a project
func (h *SyncHandler) GetSyncStatus(c *gin.Context) {
	var syncLog models.SyncLog
	err := database.GormDB.Where("project_id = ?", c.Param("id")).
		Order("created_at DESC").First(&syncLog).Error
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"status": template.SyncStatusPending, "checked": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     syncLog.Status,
		"checked":    true,
		"checked_at": syncLog.CreatedAt,
	})
}
