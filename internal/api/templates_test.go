package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/templates/preview", NewTemplateHandler(nil).PreviewTemplate)

	body := `{"body":"Hello {{client_name}}, order {{order_id}} arrives {{delivery_date}}"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/templates/preview", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Labels      []string       `json:"labels"`
		Mapping     map[string]int `json:"mapping"`
		NumericBody string         `json:"numeric_body"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, []string{"client_name", "order_id", "delivery_date"}, resp.Labels)
	assert.Equal(t, map[string]int{"client_name": 1, "order_id": 2, "delivery_date": 3}, resp.Mapping)
	assert.Equal(t, "Hello {{1}}, order {{2}} arrives {{3}}", resp.NumericBody)
}

func TestPreviewTemplate_EmptyBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/templates/preview", NewTemplateHandler(nil).PreviewTemplate)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/templates/preview", strings.NewReader(`{"body":""}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Labels      []string       `json:"labels"`
		Mapping     map[string]int `json:"mapping"`
		NumericBody string         `json:"numeric_body"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Labels)
	assert.Empty(t, resp.Mapping)
	assert.Equal(t, "", resp.NumericBody)
}
