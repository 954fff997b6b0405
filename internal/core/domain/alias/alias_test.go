package alias

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_Coerce(t *testing.T) {
	tests := []struct {
		name    string
		value   Value
		kind    Kind
		want    string
		wantErr bool
	}{
		{name: "int to int", value: Int(7), kind: KindInt, want: "7"},
		{name: "int to string", value: Int(7), kind: KindString, want: "7"},
		{name: "numeric string to int", value: String(" 12 "), kind: KindInt, want: "12"},
		{name: "path to string", value: String("/tmp/x"), kind: KindString, want: "/tmp/x"},
		{name: "path to int fails", value: String("/tmp/x"), kind: KindInt, wantErr: true},
		{name: "empty to int fails", value: String(""), kind: KindInt, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.value.Coerce(tt.kind)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.kind, got.Kind())
			assert.Equal(t, tt.want, got.AsString())
		})
	}
}

func TestValue_UnmarshalJSON(t *testing.T) {
	input := `{"path": "/a/b", "count": 5, "ratio": 0.5, "flag": true, "nothing": null}`

	var got map[string]Value
	require.NoError(t, json.Unmarshal([]byte(input), &got))

	assert.Equal(t, String("/a/b"), got["path"])
	assert.Equal(t, Int(5), got["count"])
	assert.Equal(t, String("0.5"), got["ratio"])
	assert.Equal(t, String("true"), got["flag"])
	assert.Equal(t, String(""), got["nothing"])
}
