package gallery

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"template-gateway/internal/config"
	"template-gateway/internal/template"
)

const defaultBaseURL = "https://graph.facebook.com/v19.0"

// Client talks to the Meta template gallery (Graph API) for one configured
// WhatsApp Business account.
type Client struct {
	Config  *config.Config
	BaseURL string
}

func NewClient(cfg *config.Config) *Client {
	return &Client{Config: cfg, BaseURL: defaultBaseURL}
}

// --- Gallery Structures ---

type GalleryTemplate struct {
	ID         string         `json:"id,omitempty"`
	Name       string         `json:"name"`
	Language   string         `json:"language"`
	Category   string         `json:"category,omitempty"`
	Status     string         `json:"status,omitempty"`
	Components []ComponentObj `json:"components,omitempty"`
}

type templateListResponse struct {
	Data []GalleryTemplate `json:"data"`
}

type ComponentObj struct {
	Type       string         `json:"type"`
	SubType    string         `json:"sub_type,omitempty"`
	Text       string         `json:"text,omitempty"`
	Format     string         `json:"format,omitempty"`
	Buttons    []ButtonObj    `json:"buttons,omitempty"`
	Parameters []ParameterObj `json:"parameters,omitempty"`
	Index      string         `json:"index,omitempty"` // For button components
}

type ButtonObj struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
	URL  string `json:"url,omitempty"`
}

type ParameterObj struct {
	Type    string    `json:"type"`
	Text    string    `json:"text,omitempty"`
	Payload string    `json:"payload,omitempty"`
	Image   *MediaObj `json:"image,omitempty"`
}

type MediaObj struct {
	ID   string `json:"id,omitempty"`
	Link string `json:"link,omitempty"`
}

type TemplateMessage struct {
	MessagingProduct string       `json:"messaging_product"`
	To               string       `json:"to"`
	Type             string       `json:"type"`
	Template         *TemplateObj `json:"template,omitempty"`
}

type TemplateObj struct {
	Name       string         `json:"name"`
	Language   LanguageObj    `json:"language"`
	Components []ComponentObj `json:"components,omitempty"`
}

type LanguageObj struct {
	Code string `json:"code"`
}

// --- Helper Functions ---

func (c *Client) sendRequest(method, url string, body interface{}, headers map[string]string) ([]byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, url, bodyReader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+c.Config.GalleryToken)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if req.Header.Get("Content-Type") == "" && body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		return respBody, fmt.Errorf("gallery API error: %s - %s", resp.Status, string(respBody))
	}

	return respBody, nil
}

// --- Template Management Methods ---

// ListTemplates returns every template the gallery knows for the account.
func (c *Client) ListTemplates() ([]GalleryTemplate, error) {
	url := fmt.Sprintf("%s/%s/message_templates?fields=name,status,language,category", c.BaseURL, c.Config.WabaID)
	resp, err := c.sendRequest("GET", url, nil, nil)
	if err != nil {
		return nil, err
	}

	var result templateListResponse
	if err := json.Unmarshal(resp, &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

// FetchTemplateStatuses groups the gallery's per-translation approval
// statuses by template name, the shape the sync aggregator consumes.
func (c *Client) FetchTemplateStatuses() (map[string][]template.TranslationStatus, error) {
	templates, err := c.ListTemplates()
	if err != nil {
		return nil, err
	}

	statusMap := make(map[string][]template.TranslationStatus)
	for _, t := range templates {
		statusMap[t.Name] = append(statusMap[t.Name], template.TranslationStatus{Status: t.Status})
	}
	return statusMap, nil
}

// CreateTemplate submits a template translation for gallery review. The body
// must already use numeric placeholders.
func (c *Client) CreateTemplate(name, language, category, numericBody string, buttons []ButtonObj) (string, error) {
	components := []ComponentObj{
		{Type: "BODY", Text: numericBody},
	}
	if len(buttons) > 0 {
		components = append(components, ComponentObj{Type: "BUTTONS", Buttons: buttons})
	}

	payload := GalleryTemplate{
		Name:       name,
		Language:   language,
		Category:   category,
		Components: components,
	}

	url := fmt.Sprintf("%s/%s/message_templates", c.BaseURL, c.Config.WabaID)
	resp, err := c.sendRequest("POST", url, payload, nil)
	if err != nil {
		return "", err
	}

	var result struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(resp, &result); err != nil {
		return "", err
	}
	return result.ID, nil
}

// DeleteTemplate removes a template (all its translations) by name.
func (c *Client) DeleteTemplate(name string) error {
	url := fmt.Sprintf("%s/%s/message_templates?name=%s", c.BaseURL, c.Config.WabaID, name)
	_, err := c.sendRequest("DELETE", url, nil, nil)
	return err
}

// --- Delivery Methods ---

// SendTemplateMessage delivers a template message. bodyParams must be in
// positional order ({{1}} first); imageURL and buttonPayload fill the header
// and button components when present.
func (c *Client) SendTemplateMessage(to, name, languageCode string, bodyParams []string, imageURL, buttonPayload string) error {
	var components []ComponentObj

	if imageURL != "" {
		components = append(components, ComponentObj{
			Type: "header",
			Parameters: []ParameterObj{
				{Type: "image", Image: &MediaObj{Link: imageURL}},
			},
		})
	}

	if len(bodyParams) > 0 {
		params := make([]ParameterObj, 0, len(bodyParams))
		for _, p := range bodyParams {
			params = append(params, ParameterObj{Type: "text", Text: p})
		}
		components = append(components, ComponentObj{Type: "body", Parameters: params})
	}

	if buttonPayload != "" {
		components = append(components, ComponentObj{
			Type:    "button",
			SubType: "quick_reply",
			Index:   "0",
			Parameters: []ParameterObj{
				{Type: "payload", Payload: buttonPayload},
			},
		})
	}

	msg := TemplateMessage{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "template",
		Template: &TemplateObj{
			Name:       name,
			Language:   LanguageObj{Code: languageCode},
			Components: components,
		},
	}

	url := fmt.Sprintf("%s/%s/messages", c.BaseURL, c.Config.PhoneNumberID)
	_, err := c.sendRequest("POST", url, msg, nil)
	return err
}
