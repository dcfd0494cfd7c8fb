package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "short format", input: "10:00", want: "10:00"},
		{name: "long format drops seconds", input: "10:00:30", want: "10:00"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "garbage", input: "ten o'clock", wantErr: true},
		{name: "out of range", input: "25:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestTimeString_Ordering(t *testing.T) {
	a := TimeString("10:00")
	b := TimeString("11:30")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsBefore(a))
	assert.False(t, a.IsAfter(a))
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("10:45").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:15"), got)
}

func TestTimeString_UnmarshalJSON(t *testing.T) {
	var ts TimeString
	require.NoError(t, json.Unmarshal([]byte(`"09:30:00"`), &ts))
	assert.Equal(t, TimeString("09:30"), ts)

	require.NoError(t, json.Unmarshal([]byte(`""`), &ts))
	assert.Equal(t, TimeString(""), ts)

	assert.Error(t, json.Unmarshal([]byte(`"later"`), &ts))
}
