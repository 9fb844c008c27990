package judge

import (
	"encoding/json"
	"strings"
)

// Lenient field extraction over the judge's parsed JSON object. Missing or
// mistyped fields fall back to safe defaults so a partially valid response
// still produces a usable evaluation instead of an error.

func intField(obj map[string]any, key string, def int) int {
	v, ok := obj[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return int(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i)
		}
	case string:
		var f float64
		if err := json.Unmarshal([]byte(strings.TrimSpace(n)), &f); err == nil {
			return int(f)
		}
	}
	return def
}

func stringField(obj map[string]any, key, def string) string {
	if v, ok := obj[key].(string); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

func evidenceField(obj map[string]any, key string) string {
	switch v := obj[key].(type) {
	case string:
		return v
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "; ")
	default:
		return ""
	}
}
