package api

import (
	"encoding/json"
	"log"
	"net/http"

	"template-gateway/internal/database"
	"template-gateway/internal/gallery"
	"template-gateway/internal/models"
	"template-gateway/internal/template"

	"github.com/gin-gonic/gin"
)

type TemplateHandler struct {
	Client *gallery.Client
}

func NewTemplateHandler(client *gallery.Client) *TemplateHandler {
	return &TemplateHandler{Client: client}
}

// GetTemplates returns stored templates with their translations
func (h *TemplateHandler) GetTemplates(c *gin.Context) {
	var templates []models.Template
	query := database.GormDB.Preload("Translations")
	if projectID := c.Query("project_id"); projectID != "" {
		query = query.Where("project_id = ?", projectID)
	}
	if err := query.Find(&templates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, templates)
}

// GetTemplate returns a single template with its translations
func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	var tmpl models.Template
	if err := database.GormDB.Preload("Translations").First(&tmpl, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}
	c.JSON(http.StatusOK, tmpl)
}

type CreateTemplateRequest struct {
	ProjectID uint                `json:"project_id" binding:"required"`
	Name      string              `json:"name" binding:"required"`
	Category  string              `json:"category"`
	Language  string              `json:"language" binding:"required"`
	Body      string              `json:"body" binding:"required"`
	Buttons   []gallery.ButtonObj `json:"buttons"`
}

// CreateTemplate stores a template translation and submits it to the
// gallery. The labeled body is kept as authored; the numeric body and the
// label->position mapping are derived here.
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var project models.Project
	if err := database.GormDB.First(&project, req.ProjectID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	mapping := template.BuildVariableMapping(req.Body)
	numericBody := template.ConvertBodyToNumeric(req.Body)

	mappingJSON, err := json.Marshal(mapping)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	buttonsJSON := "[]"
	if len(req.Buttons) > 0 {
		if b, err := json.Marshal(req.Buttons); err == nil {
			buttonsJSON = string(b)
		}
	}

	var tmpl models.Template
	err = database.GormDB.Where("project_id = ? AND name = ?", req.ProjectID, req.Name).First(&tmpl).Error
	if err != nil {
		tmpl = models.Template{
			ProjectID: req.ProjectID,
			Name:      req.Name,
			Category:  req.Category,
		}
		if err := database.GormDB.Create(&tmpl).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	translation := models.TemplateTranslation{
		TemplateID:  tmpl.ID,
		Language:    req.Language,
		Body:        req.Body,
		NumericBody: numericBody,
		VariableMap: string(mappingJSON),
		Buttons:     buttonsJSON,
		Status:      "PENDING",
	}

	galleryID, err := h.Client.CreateTemplate(req.Name, req.Language, req.Category, numericBody, req.Buttons)
	if err != nil {
		log.Printf("Error submitting template %s to gallery: %v", req.Name, err)
	} else {
		translation.GalleryID = galleryID
	}

	if err := database.GormDB.Create(&translation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"template":    tmpl,
		"translation": translation,
	})
}

// DeleteTemplate removes a template locally and from the gallery
func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	var tmpl models.Template
	if err := database.GormDB.First(&tmpl, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}

	if err := h.Client.DeleteTemplate(tmpl.Name); err != nil {
		log.Printf("Error deleting template %s from gallery: %v", tmpl.Name, err)
	}

	if err := database.GormDB.Select("Translations").Delete(&tmpl).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "Template deleted"})
}

// GetTemplateVariables returns the stored variable mapping for a translation
func (h *TemplateHandler) GetTemplateVariables(c *gin.Context) {
	var translation models.TemplateTranslation
	if err := database.GormDB.First(&translation, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Translation not found"})
		return
	}

	var mapping map[string]int
	if err := json.Unmarshal([]byte(translation.VariableMap), &mapping); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stored variable map is corrupt"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"labels":  template.ExtractVariableLabels(translation.Body),
		"mapping": mapping,
	})
}

type PreviewRequest struct {
	Body string `json:"body"`
}

// PreviewTemplate runs the variable engine over a body without persisting
// anything, for authoring UIs.
func (h *TemplateHandler) PreviewTemplate(c *gin.Context) {
	var req PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"labels":       template.ExtractVariableLabels(req.Body),
		"mapping":      template.BuildVariableMapping(req.Body),
		"numeric_body": template.ConvertBodyToNumeric(req.Body),
	})
}
