package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONRaw is a json.RawMessage that round-trips through a Postgres jsonb
// column.
type JSONRaw json.RawMessage

func (m JSONRaw) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	return m, nil
}

func (m *JSONRaw) UnmarshalJSON(data []byte) error {
	*m = data
	return nil
}

func (m JSONRaw) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return []byte(m), nil
}

// Scan implements the sql.Scanner interface.
func (m *JSONRaw) Scan(src interface{}) error {
	switch src := src.(type) {
	case []byte:
		*m = JSONRaw(src)
		return nil
	case string:
		*m = JSONRaw(src)
		return nil
	case nil:
		return nil
	}

	return fmt.Errorf("pq: cannot convert %T to json.RawMessage", src)
}
