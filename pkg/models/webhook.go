package models

// TemplateStatusPayload represents the webhook payload Meta sends when a
// template's review state changes (field "message_template_status_update")
type TemplateStatusPayload struct {
	Object string `json:"object"`
	Entry  []struct {
		ID      string `json:"id"`
		Changes []struct {
			Value struct {
				Event                   string `json:"event"` // APPROVED, REJECTED, PENDING, ...
				MessageTemplateID       int64  `json:"message_template_id"`
				MessageTemplateName     string `json:"message_template_name"`
				MessageTemplateLanguage string `json:"message_template_language"`
				Reason                  string `json:"reason,omitempty"`
			} `json:"value"`
			Field string `json:"field"`
		} `json:"changes"`
	} `json:"entry"`
}
