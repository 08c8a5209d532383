package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// SafeURLString marshals without HTML escaping so query strings keep their
// literal '&'.
type SafeURLString string

func (s SafeURLString) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(string(s)); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}

// UnmarshalJSON trims surrounding whitespace from the submitted URL.
func (s *SafeURLString) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = SafeURLString(strings.TrimSpace(str))
	return nil
}

func (s SafeURLString) String() string {
	return string(s)
}
