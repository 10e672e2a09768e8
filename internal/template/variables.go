package template

import (
	"regexp"
	"strconv"
)

// placeholderPattern matches a {{token}} placeholder. A token is a run of
// word characters; tokens made entirely of digits are the numeric form the
// delivery API expects, everything else is a human-readable label.
var placeholderPattern = regexp.MustCompile(`\{\{(\w+)\}\}`)

// specialKeys are payload keys that bypass label-to-number renaming.
var specialKeys = map[string]bool{
	"button":    true,
	"image_url": true,
}

func isNumericToken(token string) bool {
	if token == "" {
		return false
	}
	for i := 0; i < len(token); i++ {
		if token[i] < '0' || token[i] > '9' {
			return false
		}
	}
	return true
}

// ExtractVariableLabels returns the labels of all labeled placeholders in
// body, in order of appearance. Numeric placeholders are skipped and
// duplicate labels are kept, one entry per occurrence.
func ExtractVariableLabels(body string) []string {
	if body == "" {
		return nil
	}

	var labels []string
	for _, match := range placeholderPattern.FindAllStringSubmatch(body, -1) {
		if !isNumericToken(match[1]) {
			labels = append(labels, match[1])
		}
	}
	return labels
}

// BuildVariableMapping builds the label -> 1-indexed position mapping for
// body. The label sequence is walked front to back and every occurrence
// overwrites the previous entry for its label, so a repeated label ends up
// mapped to its last occurrence's position. That is intentionally different
// from ConvertBodyToNumeric, which numbers every occurrence separately;
// both behaviors are load-bearing for templates already in the gallery.
func BuildVariableMapping(body string) map[string]int {
	mapping := make(map[string]int)
	for i, label := range ExtractVariableLabels(body) {
		mapping[label] = i + 1
	}
	return mapping
}

// ConvertBodyToNumeric rewrites every labeled placeholder in body to the
// numeric {{n}} form, numbering occurrences left to right. Placeholders
// that are already numeric are left alone and do not advance the counter,
// so converting an already-converted body is a no-op.
func ConvertBodyToNumeric(body string) string {
	if body == "" {
		return body
	}

	position := 0
	return placeholderPattern.ReplaceAllStringFunc(body, func(match string) string {
		token := match[2 : len(match)-2]
		if isNumericToken(token) {
			return match
		}
		position++
		return "{{" + strconv.Itoa(position) + "}}"
	})
}

// MapLabeledVariablesToNumeric renames the keys of a variables payload from
// labels to the positions assigned by mapping (as strings, the form the
// delivery API takes). Special keys and keys that are already numeric pass
// through unchanged. Labels missing from the mapping are dropped from the
// result and returned in the second value; it is the caller's job to decide
// whether that is an error.
func MapLabeledVariablesToNumeric(variables map[string]any, mapping map[string]int) (map[string]any, []string) {
	renamed := make(map[string]any, len(variables))
	var unknown []string

	for key, value := range variables {
		if specialKeys[key] {
			renamed[key] = value
			continue
		}
		if position, ok := mapping[key]; ok {
			renamed[strconv.Itoa(position)] = value
			continue
		}
		if isNumericToken(key) {
			renamed[key] = value
			continue
		}
		unknown = append(unknown, key)
	}

	return renamed, unknown
}

// HasLabeledVariables reports whether the payload carries at least one key
// that still needs label-to-number renaming.
func HasLabeledVariables(variables map[string]any) bool {
	for key := range variables {
		if !specialKeys[key] && !isNumericToken(key) {
			return true
		}
	}
	return false
}
