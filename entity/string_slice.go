package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringSlice stores a list of strings as a JSON text column. An empty
// or nil slice round-trips as [] so responses never carry null features.
type StringSlice []string

func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		s = StringSlice{}
	}
	b, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *StringSlice) Scan(v any) error {
	if v == nil {
		*s = StringSlice{}
		return nil
	}
	switch data := v.(type) {
	case []byte:
		return json.Unmarshal(data, (*[]string)(s))
	case string:
		return json.Unmarshal([]byte(data), (*[]string)(s))
	default:
		return fmt.Errorf("cannot scan %T into StringSlice", v)
	}
}

func (s StringSlice) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(s))
}
