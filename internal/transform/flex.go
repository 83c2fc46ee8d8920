package transform

import (
	"bytes"
	"encoding/json"
	"errors"
)

// flexString decodes a JSON scalar that the backend sometimes sends as a
// number and sometimes as a string (ids, durations, years). Objects and
// arrays fail the field, not the whole item.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	if b[0] == '{' || b[0] == '[' {
		return errors.New("flex: expected scalar")
	}
	*f = flexString(b)
	return nil
}

func (f flexString) String() string { return string(f) }
