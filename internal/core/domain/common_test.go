package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/business_panel/internal/core/domain"
	"github.com/SscSPs/business_panel/internal/platform/timezone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  domain.ID
	}{
		{name: "numeric id", input: `42`, want: "42"},
		{name: "uuid string", input: `"7f1c7f1a-1c1e-4d6e-9b0e-4a2b8c9d0e1f"`, want: "7f1c7f1a-1c1e-4d6e-9b0e-4a2b8c9d0e1f"},
		{name: "numeric string", input: `"17"`, want: "17"},
		{name: "null", input: `null`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got domain.ID
			require.NoError(t, json.Unmarshal([]byte(tt.input), &got))
			assert.Equal(t, tt.want, got)
		})
	}

	var bad domain.ID
	assert.Error(t, json.Unmarshal([]byte(`{}`), &bad))
}

func TestID_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(map[string]domain.ID{"a": "12", "b": "abc", "c": ""})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":12,"b":"abc","c":null}`, string(out))
}

func TestParseDay(t *testing.T) {
	timezone.Use("Europe/Warsaw")

	tests := []struct {
		name    string
		input   string
		want    string
		display string
	}{
		{name: "plain date", input: "2024-05-01", want: "2024-05-01", display: "01.05.2024"},
		{name: "naive date-time", input: "2024-05-01T00:00:00", want: "2024-05-01", display: "01.05.2024"},
		{name: "utc late evening moves to next local day", input: "2024-05-01T22:30:00Z", want: "2024-05-02", display: "02.05.2024"},
		{name: "rfc1123 gmt midnight", input: "Wed, 01 May 2024 00:00:00 GMT", want: "2024-05-01", display: "01.05.2024"},
		{name: "empty", input: "", want: "", display: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseDay(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
			assert.Equal(t, tt.display, got.Display())
		})
	}

	_, err := domain.ParseDay("01/05/2024")
	assert.Error(t, err)
}

func TestDay_JSONRoundTrip(t *testing.T) {
	var payload struct {
		Date domain.Day `json:"date"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2024-03-09T00:00:00"}`), &payload))
	assert.Equal(t, "2024-03-09", payload.Date.String())

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2024-03-09"}`, string(out))
}

func TestDay_FirstOfMonth(t *testing.T) {
	d := domain.NewDay(time.Date(2024, time.February, 29, 12, 0, 0, 0, timezone.Current()))
	assert.Equal(t, "2024-02-01", d.FirstOfMonth().String())
	assert.True(t, d.FirstOfMonth().Before(d))
}
