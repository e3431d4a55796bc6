package socketio_utils

/**
 * Inbound socket.io arguments arrive as untyped JSON-shaped values. Every
 * handler decodes its first argument into a typed payload struct here, so
 * unknown fields are dropped and missing fields fall back to zero values
 * (and later to documented defaults) before anything reaches the
 * coordinator. Malformed input is never a reason to reject an event.
 */

import (
	"encoding/json"
)

// Bind decodes the first argument into out via a JSON round-trip. Returns
// false when there is no argument or it does not decode; out keeps its zero
// values in that case.
func Bind(args []interface{}, out interface{}) bool {
	if len(args) == 0 {
		return false
	}
	raw, err := json.Marshal(args[0])
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

// RawPayload copies the first argument's fields into a fresh map, for events
// the server forwards verbatim. Non-object or missing arguments yield an
// empty map.
func RawPayload(args []interface{}) map[string]interface{} {
	payload := make(map[string]interface{})
	if len(args) == 0 {
		return payload
	}
	if m, ok := args[0].(map[string]interface{}); ok {
		for k, v := range m {
			payload[k] = v
		}
	}
	return payload
}

// ClampInt bounds v to [min, max].
func ClampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// IntField reads a numeric field out of a raw payload map. JSON numbers
// decode as float64.
func IntField(payload map[string]interface{}, key string) (int, bool) {
	switch v := payload[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	default:
		return 0, false
	}
}
