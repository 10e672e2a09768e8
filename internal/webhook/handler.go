package webhook

import (
	"log"
	"net/http"

	"template-gateway/internal/config"
	"template-gateway/internal/database"
	gwmodels "template-gateway/internal/models"
	"template-gateway/pkg/models"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Config *config.Config
}

func NewHandler(cfg *config.Config) *Handler {
	return &Handler{Config: cfg}
}

func (h *Handler) VerifyWebhook(c *gin.Context) {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode != "" && token != "" {
		if mode == "subscribe" && token == h.Config.VerifyToken {
			log.Println("Webhook verified successfully!")
			c.String(http.StatusOK, challenge)
		} else {
			c.Status(http.StatusForbidden)
		}
	} else {
		c.Status(http.StatusBadRequest)
	}
}

// HandleStatusUpdate ingests template review events from the gallery and
// updates the matching stored translation.
func (h *Handler) HandleStatusUpdate(c *gin.Context) {
	var payload models.TemplateStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("Error binding JSON: %v", err)
		c.Status(http.StatusBadRequest)
		return
	}

	for _, entry := range payload.Entry {
		for _, change := range entry.Changes {
			if change.Field != "message_template_status_update" {
				continue
			}
			value := change.Value
			log.Printf("Template %s (%s) changed status to %s", value.MessageTemplateName, value.MessageTemplateLanguage, value.Event)

			result := database.GormDB.Model(&gwmodels.TemplateTranslation{}).
				Where("language = ? AND template_id IN (?)",
					value.MessageTemplateLanguage,
					database.GormDB.Model(&gwmodels.Template{}).Select("id").Where("name = ?", value.MessageTemplateName),
				).
				Update("status", value.Event)
			if result.Error != nil {
				log.Printf("Error updating translation status: %v", result.Error)
			} else if result.RowsAffected == 0 {
				log.Printf("No stored translation for template %s (%s)", value.MessageTemplateName, value.MessageTemplateLanguage)
			}
		}
	}

	c.Status(http.StatusOK)
}
