package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractVariableLabels(t *testing.T) {
	body := "Hello {{client_name}}, order {{order_id}} arrives {{delivery_date}}"
	assert.Equal(t, []string{"client_name", "order_id", "delivery_date"}, ExtractVariableLabels(body))
}

func TestExtractVariableLabels_SkipsNumericPlaceholders(t *testing.T) {
	labels := ExtractVariableLabels("Hi {{1}}, your code is {{code}} ({{2}})")
	assert.Equal(t, []string{"code"}, labels)
}

func TestExtractVariableLabels_KeepsDuplicates(t *testing.T) {
	labels := ExtractVariableLabels("Hi {{name}}, {{name}} again")
	assert.Equal(t, []string{"name", "name"}, labels)
}

func TestExtractVariableLabels_EmptyBody(t *testing.T) {
	assert.Empty(t, ExtractVariableLabels(""))
}

func TestExtractVariableLabels_UnbalancedBraces(t *testing.T) {
	assert.Empty(t, ExtractVariableLabels("Hello {{name, welcome"))
}

func TestBuildVariableMapping(t *testing.T) {
	body := "Hello {{client_name}}, order {{order_id}} arrives {{delivery_date}}"
	mapping := BuildVariableMapping(body)
	assert.Equal(t, map[string]int{"client_name": 1, "order_id": 2, "delivery_date": 3}, mapping)
}

func TestVariableMapping_DuplicateLabelLastWins(t *testing.T) {
	mapping := BuildVariableMapping("Hi {{name}}, {{name}} again")
	assert.Equal(t, map[string]int{"name": 2}, mapping)
}

func TestBuildVariableMapping_EmptyBody(t *testing.T) {
	assert.Empty(t, BuildVariableMapping(""))
}

func TestConvertBodyToNumeric(t *testing.T) {
	body := "Hello {{client_name}}, order {{order_id}} arrives {{delivery_date}}"
	assert.Equal(t, "Hello {{1}}, order {{2}} arrives {{3}}", ConvertBodyToNumeric(body))
}

func TestConvertBodyToNumeric_DuplicateLabels(t *testing.T) {
	// Each occurrence gets its own number even though the mapping collapses
	// the label to a single position.
	assert.Equal(t, "Hi {{1}}, {{2}} again", ConvertBodyToNumeric("Hi {{name}}, {{name}} again"))
}

func TestConvertBodyToNumeric_LeavesNumericPlaceholders(t *testing.T) {
	assert.Equal(t, "Hi {{5}}, code {{1}}", ConvertBodyToNumeric("Hi {{5}}, code {{code}}"))
}

func TestConvertBodyToNumeric_Idempotent(t *testing.T) {
	bodies := []string{
		"",
		"no placeholders here",
		"Hello {{client_name}}, order {{order_id}}",
		"Hi {{name}}, {{name}} again",
		"mixed {{1}} and {{label}} and {{2}}",
	}
	for _, body := range bodies {
		once := ConvertBodyToNumeric(body)
		assert.Equal(t, once, ConvertBodyToNumeric(once), "body: %q", body)
	}
}

func TestMapLabeledVariablesToNumeric(t *testing.T) {
	variables := map[string]any{"client_name": "João", "order_id": "123"}
	mapping := map[string]int{"client_name": 1, "order_id": 2}

	renamed, unknown := MapLabeledVariablesToNumeric(variables, mapping)

	require.Empty(t, unknown)
	assert.Equal(t, map[string]any{"1": "João", "2": "123"}, renamed)
}

func TestMapLabeledVariablesToNumeric_UnknownLabelDropped(t *testing.T) {
	renamed, unknown := MapLabeledVariablesToNumeric(
		map[string]any{"unknown_x": "v", "button": "b"},
		map[string]int{},
	)

	assert.Equal(t, []string{"unknown_x"}, unknown)
	assert.Equal(t, map[string]any{"button": "b"}, renamed)
}

func TestMapLabeledVariablesToNumeric_SpecialAndNumericKeysPassThrough(t *testing.T) {
	variables := map[string]any{
		"image_url": "https://example.com/a.png",
		"button":    "payload",
		"3":         "already numeric",
	}

	renamed, unknown := MapLabeledVariablesToNumeric(variables, map[string]int{})

	require.Empty(t, unknown)
	assert.Equal(t, variables, renamed)
}

func TestHasLabeledVariables(t *testing.T) {
	assert.False(t, HasLabeledVariables(map[string]any{"1": "a", "button": "b"}))
	assert.False(t, HasLabeledVariables(map[string]any{"image_url": "u"}))
	assert.False(t, HasLabeledVariables(nil))
	assert.True(t, HasLabeledVariables(map[string]any{"client_name": "a"}))
	assert.True(t, HasLabeledVariables(map[string]any{"1": "a", "name": "b"}))
}
