package entities

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList stores an ordered slice of strings in a single text column as a
// JSON array. The encoded form never leaves the storage layer: callers only
// ever see the decoded slice. An empty slice encodes to "[]"; NULL or an
// empty string decodes to an empty slice.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	encoded, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("failed to encode string list: %w", err)
	}
	return string(encoded), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("cannot decode string list from %T", value)
	}

	if len(raw) == 0 {
		*l = StringList{}
		return nil
	}

	var decoded []string
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return fmt.Errorf("failed to decode string list: %w", err)
	}
	if decoded == nil {
		decoded = []string{}
	}
	*l = decoded
	return nil
}

// BoolFlag stores a boolean as a 0/1 integer column. All boolean fields
// share this one encode/decode pair so the mapping cannot drift between
// entities: true writes 1, false writes 0, and any nonzero value reads
// back as true.
type BoolFlag bool

func (f BoolFlag) Value() (driver.Value, error) {
	if f {
		return int64(1), nil
	}
	return int64(0), nil
}

func (f *BoolFlag) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*f = false
	case int64:
		*f = v != 0
	case bool:
		*f = BoolFlag(v)
	default:
		return fmt.Errorf("cannot decode bool flag from %T", value)
	}
	return nil
}

// Bool returns the flag as a plain bool for callers outside the entity layer.
func (f BoolFlag) Bool() bool {
	return bool(f)
}
