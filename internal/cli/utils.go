package cli

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

var AllowedMultiFormats = []string{"comma", "newline", "space", "json"}

// 各格式对应的输入分隔符，以及输出时使用的连接符
var (
	multiFormatSeps = map[string]string{
		"comma":   ",",
		"newline": "\r\n",
		"space":   " \t",
	}
	multiFormatJoin = map[string]string{
		"comma":   ",",
		"newline": "\n",
		"space":   " ",
	}
)

func checkMultiFormat(formats []string) error {
	for _, format := range formats {
		if !slices.Contains(AllowedMultiFormats, format) {
			return fmt.Errorf("invalid multi format: %s, allowed formats are: %v", format, AllowedMultiFormats)
		}
	}
	if slices.Contains(formats, "json") && len(formats) > 1 {
		return fmt.Errorf("multi format 'json' cannot be combined with other formats")
	}
	return nil
}

// splitElements cuts s at any rune of seps outside square brackets, so the
// bounds form "C[L,U]" stays one element. Blank pieces are dropped.
func splitElements(s string, seps string) []string {
	var parts []string
	depth, start := 0, 0
	flush := func(end int) {
		if p := strings.TrimSpace(s[start:end]); p != "" {
			parts = append(parts, p)
		}
	}
	for i, r := range s {
		switch {
		case r == '[':
			depth++
		case r == ']':
			if depth > 0 {
				depth--
			}
		case depth == 0 && strings.ContainsRune(seps, r):
			flush(i)
			start = i + utf8.RuneLen(r)
		}
	}
	flush(len(s))
	return parts
}

func parseJSONValues(rawValues []string, operand string) ([]string, error) {
	var result []string
	for _, raw := range rawValues {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		// 数组或单个字符串
		var arr []string
		if err := json.Unmarshal([]byte(raw), &arr); err == nil {
			result = append(result, arr...)
			continue
		}
		var s string
		if err := json.Unmarshal([]byte(raw), &s); err != nil {
			return nil, fmt.Errorf("invalid json multi value: %s for %s, %v", raw, operand, err)
		}
		result = append(result, s)
	}
	return result, nil
}

// ParseMultiValues splits every raw operand into its element literals.
//
// formats selects the separators ("comma", "newline", "space"), or "json" for a
// JSON array of strings. With no format each raw value is one element.
// Separators inside "[...]" never split.
func ParseMultiValues(formats []string, rawValues []string, operand string) ([]string, error) {
	if len(formats) == 0 || rawValues == nil {
		return rawValues, nil
	}
	if slices.Contains(formats, "json") {
		if len(formats) > 1 {
			return nil, fmt.Errorf("multi format 'json' for %s cannot be combined with other formats", operand)
		}
		return parseJSONValues(rawValues, operand)
	}

	var seps strings.Builder
	for _, format := range formats {
		sep, ok := multiFormatSeps[format]
		if !ok {
			return nil, fmt.Errorf("unsupported multi format: %s for %s", format, operand)
		}
		seps.WriteString(sep)
	}
	result := []string{}
	for _, raw := range rawValues {
		result = append(result, splitElements(raw, seps.String())...)
	}
	return result, nil
}

// OutputMultiValues joins values so that ParseMultiValues with the same formats
// gives them back: the first of comma, newline, space found in formats, or a JSON array.
func OutputMultiValues(formats []string, values []string) (string, error) {
	if slices.Contains(formats, "json") {
		if len(formats) > 1 {
			return "", fmt.Errorf("multi format 'json' cannot be combined with other formats")
		}
		if values == nil {
			values = []string{}
		}
		data, err := json.Marshal(values)
		if err != nil {
			return "", fmt.Errorf("failed to marshal multi values to json: %w", err)
		}
		return string(data), nil
	}
	if len(formats) == 0 {
		return strings.Join(values, " "), nil
	}
	for _, format := range []string{"comma", "newline", "space"} {
		if slices.Contains(formats, format) {
			return strings.Join(values, multiFormatJoin[format]), nil
		}
	}
	return "", fmt.Errorf("unsupported multi formats: %v", formats)
}
