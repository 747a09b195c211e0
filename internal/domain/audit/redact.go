package audit

import (
	"encoding/json"
	"strings"
)

// RedactedPlaceholder replaces sensitive values in audited payloads
const RedactedPlaceholder = "***REDACTED***"

// MaxPayloadBytes caps the stored payload size
const MaxPayloadBytes = 10 * 1024

var sensitiveKeys = []string{"password", "token", "secret"}

func isSensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	for _, s := range sensitiveKeys {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}

// RedactPayload masks sensitive fields in a JSON body and truncates the
// result to MaxPayloadBytes. Non-JSON bodies are stored redacted wholesale
// rather than risking a credential leak.
func RedactPayload(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return RedactedPlaceholder
	}

	redacted, err := json.Marshal(redactValue(doc))
	if err != nil {
		return RedactedPlaceholder
	}

	if len(redacted) > MaxPayloadBytes {
		return string(redacted[:MaxPayloadBytes])
	}
	return string(redacted)
}

func redactValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, inner := range val {
			if isSensitiveKey(k) {
				out[k] = RedactedPlaceholder
				continue
			}
			out[k] = redactValue(inner)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, inner := range val {
			out[i] = redactValue(inner)
		}
		return out
	default:
		return v
	}
}
