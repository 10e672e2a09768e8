package api

import (
	"net/http"

	"template-gateway/internal/database"
	"template-gateway/internal/models"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct{}

func NewProjectHandler() *ProjectHandler {
	return &ProjectHandler{}
}

// GetProjects returns all projects
func (h *ProjectHandler) GetProjects(c *gin.Context) {
	var projects []models.Project
	if err := database.GormDB.Find(&projects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, projects)
}

// CreateProject creates a new project
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var project models.Project
	if err := c.ShouldBindJSON(&project); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if project.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Project name required"})
		return
	}

	if err := database.GormDB.Create(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, project)
}

// UpdateProject updates an existing project
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	var project models.Project
	if err := database.GormDB.First(&project, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	var updates models.Project
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project.Name = updates.Name
	project.WabaID = updates.WabaID
	project.PhoneNumberID = updates.PhoneNumberID

	if err := database.GormDB.Save(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject deletes a project and its templates
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	var project models.Project
	if err := database.GormDB.First(&project, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	var templates []models.Template
	database.GormDB.Where("project_id = ?", project.ID).Find(&templates)
	for _, tmpl := range templates {
		database.GormDB.Select("Translations").Delete(&tmpl)
	}

	if err := database.GormDB.Delete(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "Project deleted"})
}
