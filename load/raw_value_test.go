package load

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawValue_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
		want RawValue
	}{
		{name: "string", body: `{"length":"6.5"}`, want: "6.5"},
		{name: "number", body: `{"length":6.5}`, want: "6.5"},
		{name: "null", body: `{"length":null}`, want: ""},
		{name: "absent", body: `{}`, want: ""},
		{name: "bool kept verbatim", body: `{"length":true}`, want: "true"},
		{name: "object kept verbatim", body: `{"length":{"a":1}}`, want: `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var room RoomInput
			require.NoError(t, json.Unmarshal([]byte(tt.body), &room))
			assert.Equal(t, tt.want, room.Length)
		})
	}
}

func TestNum(t *testing.T) {
	assert.Equal(t, RawValue("2.5"), Num(2.5))
	assert.Equal(t, RawValue("100"), Num(100))
	assert.Equal(t, RawValue("-4"), Num(-4))
}
