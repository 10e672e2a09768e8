package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"template-gateway/internal/database"
	"template-gateway/internal/gallery"
	"template-gateway/internal/models"
	"template-gateway/internal/template"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	Client *gallery.Client
}

func NewMessageHandler(client *gallery.Client) *MessageHandler {
	return &MessageHandler{Client: client}
}

type SendTemplateRequest struct {
	To            string         `json:"to" binding:"required"`
	TranslationID uint           `json:"translation_id" binding:"required"`
	Variables     map[string]any `json:"variables"`
}

// SendTemplateMessage delivers a template message. Labeled variables are
// remapped to positional keys through the translation's stored mapping;
// labels the mapping does not know are a client error.
func (h *MessageHandler) SendTemplateMessage(c *gin.Context) {
	var req SendTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var translation models.TemplateTranslation
	if err := database.GormDB.First(&translation, req.TranslationID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Translation not found"})
		return
	}
	var tmpl models.Template
	if err := database.GormDB.First(&tmpl, translation.TemplateID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}

	variables := req.Variables
	if template.HasLabeledVariables(variables) {
		var mapping map[string]int
		if err := json.Unmarshal([]byte(translation.VariableMap), &mapping); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Stored variable map is corrupt"})
			return
		}

		renamed, unknown := template.MapLabeledVariablesToNumeric(variables, mapping)
		if len(unknown) > 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":  "Unknown variable labels",
				"labels": unknown,
			})
			return
		}
		variables = renamed
	}

	bodyParams, imageURL, buttonPayload, err := orderedBodyParams(variables)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	if err := h.Client.SendTemplateMessage(req.To, tmpl.Name, translation.Language, bodyParams, imageURL, buttonPayload); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "Message sent"})
}

// orderedBodyParams splits a numeric-keyed payload into the positional body
// parameter list plus the special header/button values.
func orderedBodyParams(variables map[string]any) ([]string, string, string, error) {
	var imageURL, buttonPayload string
	positional := make(map[int]string)
	maxPosition := 0

	for key, value := range variables {
		switch key {
		case "image_url":
			imageURL = fmt.Sprintf("%v", value)
		case "button":
			buttonPayload = fmt.Sprintf("%v", value)
		default:
			n, err := strconv.Atoi(key)
			if err != nil || n < 1 {
				return nil, "", "", fmt.Errorf("invalid variable key %q", key)
			}
			positional[n] = fmt.Sprintf("%v", value)
			if n > maxPosition {
				maxPosition = n
			}
		}
	}

	params := make([]string, 0, maxPosition)
	for i := 1; i <= maxPosition; i++ {
		value, ok := positional[i]
		if !ok {
			return nil, "", "", fmt.Errorf("missing variable for position %d", i)
		}
		params = append(params, value)
	}

	return params, imageURL, buttonPayload, nil
}
