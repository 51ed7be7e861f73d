// Package fieldparse normalizes array-valued free-text fields that clients
// send in several shapes: repeated form values, a JSON-array string, or a
// single comma-delimited string. One parser is shared by every resource so
// qualification, expertise, tags, detailBenefits and clientTypes all behave
// the same way.
package fieldparse

import (
	"encoding/json"
	"strings"
)

// List normalizes values into a string slice.
//
// If values holds more than one element it is treated as a native list and
// each element is trimmed. A single element is split on commas with each
// piece trimmed. Empty input yields nil.
func List(values []string) []string {
	switch len(values) {
	case 0:
		return nil
	case 1:
		return splitComma(values[0])
	default:
		out := make([]string, 0, len(values))
		for _, v := range values {
			out = append(out, strings.TrimSpace(v))
		}
		return out
	}
}

// ListJSONFirst is List with a JSON fallback chain: a single value is first
// tried as a JSON array; when that fails it degrades to comma-splitting.
// Used for detailBenefits, which some clients send as '["A","B"]'.
func ListJSONFirst(values []string) []string {
	if len(values) == 1 {
		var arr []string
		if err := json.Unmarshal([]byte(values[0]), &arr); err == nil {
			for i, v := range arr {
				arr[i] = strings.TrimSpace(v)
			}
			return arr
		}
	}
	return List(values)
}

// Compact returns items with blank entries removed and the rest trimmed.
func Compact(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s := strings.TrimSpace(it); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func splitComma(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}
