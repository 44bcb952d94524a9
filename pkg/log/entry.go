package log

import (
	"encoding/json"
	"time"
)

// Entry is a single structured log record.
type Entry struct {
	Timestamp time.Time
	Level     Level
	RequestID string
	Message   string
	Fields    map[string]any
}

// MarshalJSON flattens the entry's fields into the root object and
// omits empty optional fields.
func (e Entry) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(e.Fields)+4)

	m["timestamp"] = e.Timestamp.UTC().Format(time.RFC3339)
	m["level"] = e.Level.String()
	m["msg"] = e.Message

	if e.RequestID != "" {
		m["request_id"] = e.RequestID
	}

	for k, v := range e.Fields {
		m[k] = v
	}

	return json.Marshal(m)
}
