package models

import (
	"encoding/json"
	"time"
)

// AuditEntry is one immutable record in a daily audit log. Detail fields are
// flattened into the top-level JSON object alongside the fixed fields, so a
// day's log reads as a uniform sequence of {timestamp, source, action, ...}.
type AuditEntry struct {
	Timestamp time.Time
	Source    string
	Action    string
	Details   map[string]any
}

func (e AuditEntry) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(e.Details)+3)
	for k, v := range e.Details {
		flat[k] = v
	}
	flat["timestamp"] = e.Timestamp.Format(time.RFC3339)
	flat["source"] = e.Source
	flat["action"] = e.Action
	return json.Marshal(flat)
}

func (e *AuditEntry) UnmarshalJSON(data []byte) error {
	var flat map[string]any
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}
	if ts, ok := flat["timestamp"].(string); ok {
		if parsed, err := time.Parse(time.RFC3339, ts); err == nil {
			e.Timestamp = parsed
		}
	}
	e.Source, _ = flat["source"].(string)
	e.Action, _ = flat["action"].(string)
	delete(flat, "timestamp")
	delete(flat, "source")
	delete(flat, "action")
	if len(flat) > 0 {
		e.Details = flat
	}
	return nil
}
