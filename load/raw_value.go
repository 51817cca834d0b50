package load

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// RawValue is a field exactly as it was entered into a form. It may be empty,
// numeric text, or text that is not a number at all; the normalizer decides
// what it means.
type RawValue string

// Num renders a number as a RawValue.
func Num(f float64) RawValue {
	return RawValue(strconv.FormatFloat(f, 'g', -1, 64))
}

// UnmarshalJSON accepts a JSON string, a JSON number or null. Any other JSON
// value is kept verbatim so that it later fails to parse and takes the default.
func (v *RawValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0, bytes.Equal(b, []byte("null")):
		*v = ""
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = RawValue(s)
	default:
		*v = RawValue(b)
	}
	return nil
}
