package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// JSON is a free-form object stored in a jsonb column. Audit metadata uses it.
type JSON map[string]interface{}

// Value implements driver.Valuer.
func (j JSON) Value() (driver.Value, error) {
	if j == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(j)
}

// Scan implements sql.Scanner.
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("unsupported type for JSON scan")
	}
	return json.Unmarshal(raw, j)
}
