package main

import (
	"encoding/json"
	"log"

	"template-gateway/internal/config"
	"template-gateway/internal/database"
	"template-gateway/internal/models"
	"template-gateway/internal/template"
)

// Backfills NumericBody and VariableMap for translations whose labeled body
// was edited outside the API, or that predate the variable engine.
func main() {
	cfg := config.LoadConfig()
	database.InitGorm(cfg)
	db := database.GormDB

	var translations []models.TemplateTranslation
	if err := db.Find(&translations).Error; err != nil {
		log.Fatalf("Error loading translations: %v", err)
	}

	log.Printf("Checking %d translations...", len(translations))

	updated := 0
	for _, t := range translations {
		numericBody := template.ConvertBodyToNumeric(t.Body)
		mappingJSON, err := json.Marshal(template.BuildVariableMapping(t.Body))
		if err != nil {
			log.Printf("Error encoding mapping for translation %d: %v", t.ID, err)
			continue
		}

		if numericBody == t.NumericBody && string(mappingJSON) == t.VariableMap {
			continue
		}

		err = db.Model(&models.TemplateTranslation{}).Where("id = ?", t.ID).
			Updates(map[string]interface{}{
				"numeric_body": numericBody,
				"variable_map": string(mappingJSON),
			}).Error
		if err != nil {
			log.Printf("Error updating translation %d: %v", t.ID, err)
			continue
		}
		updated++
	}

	log.Printf("DONE! Updated %d of %d translations", updated, len(translations))
}
