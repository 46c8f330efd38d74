package collection

import (
	"encoding/json"
	"fmt"
)

// Record is a JSON-compatible mapping with a stable "id" field. Views read
// whatever subset of fields they care about; no rigid cross-resource
// schema is assumed.
type Record map[string]any

// ID returns the record's id rendered as a string
func (r Record) ID() string {
	v, ok := r["id"]
	if !ok {
		return ""
	}
	switch id := v.(type) {
	case string:
		return id
	case float64:
		return fmt.Sprintf("%.0f", id)
	default:
		return fmt.Sprint(id)
	}
}

// String returns the field rendered as a string, tolerating the type
// variance JSON decoding produces
func (r Record) String(field string) string {
	v, ok := r[field]
	if !ok || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case float64:
		if s == float64(int64(s)) {
			return fmt.Sprintf("%.0f", s)
		}
		return fmt.Sprintf("%g", s)
	case bool:
		if s {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprint(s)
	}
}

// Number returns the field as a float64 when it is numeric
func (r Record) Number(field string) (float64, bool) {
	v, ok := r[field]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

// Bool returns the field as a bool; absent or non-bool values are false
func (r Record) Bool(field string) bool {
	v, ok := r[field]
	if !ok {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

// RecordOf converts any JSON-marshalable value into a Record
func RecordOf(v any) (Record, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("cannot convert to record: %w", err)
	}
	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("cannot convert to record: %w", err)
	}
	return record, nil
}

// RecordsOf converts a slice of JSON-marshalable values into Records,
// preserving order
func RecordsOf[T any](items []T) ([]Record, error) {
	records := make([]Record, 0, len(items))
	for _, item := range items {
		record, err := RecordOf(item)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}
