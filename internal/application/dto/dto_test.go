package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumber_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
		raw  Number
		want float64
	}{
		{"number", `{"length": 50}`, "50", 50},
		{"decimal", `{"length": 3.5}`, "3.5", 3.5},
		{"string", `{"length": " 20 "}`, " 20 ", 20},
		{"junk string", `{"length": "abc"}`, "abc", 0},
		{"negative", `{"length": -4}`, "-4", 0},
		{"null", `{"length": null}`, "", 0},
		{"bool", `{"length": true}`, "", 0},
		{"object", `{"length": {"ft": 5}}`, "", 0},
		{"array", `{"length": [1, 2]}`, "", 0},
		{"absent", `{}`, "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req EstimateRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.raw, req.Length)
			assert.Equal(t, tt.want, req.Length.Float())
		})
	}
}

func TestEstimateRequest_ThicknessPresence(t *testing.T) {
	var absent EstimateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"length": 1}`), &absent))
	assert.Nil(t, absent.Thickness)

	var present EstimateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"thickness": "4", "length": 50}`), &present))
	require.NotNil(t, present.Thickness)
	assert.Equal(t, 4.0, present.Thickness.Float())
	assert.Equal(t, Number("50"), present.Length)

	for _, body := range []string{`{"thickness": null}`, `{"thickness": ""}`, `{"thickness": false}`} {
		var blank EstimateRequest
		require.NoError(t, json.Unmarshal([]byte(body), &blank), body)
		require.NotNil(t, blank.Thickness, body)
		assert.Equal(t, Number(""), *blank.Thickness, body)
		assert.Equal(t, 0.0, blank.Thickness.Float(), body)
	}

	var notObject EstimateRequest
	assert.Error(t, json.Unmarshal([]byte(`[1]`), &notObject))
}

func TestSectionsRequest_Unmarshal(t *testing.T) {
	body := `{"price": "80", "sections": [
		{"name": "a", "length": 50, "width": "20", "thickness": 3},
		{"name": "b"},
		{"name": "c", "thickness": null}
	]}`

	var req SectionsRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	require.Len(t, req.Sections, 3)
	assert.Equal(t, 80.0, req.Price.Float())
	assert.Equal(t, "a", req.Sections[0].Name)
	assert.Equal(t, 20.0, req.Sections[0].Width.Float())
	assert.Equal(t, 3.0, req.Sections[0].Thickness.Float())
	assert.Nil(t, req.Sections[1].Thickness)
	require.NotNil(t, req.Sections[2].Thickness)
	assert.Equal(t, 0.0, req.Sections[2].Thickness.Float())
}

func TestNewResponses(t *testing.T) {
	ok := NewSuccessResponse(EstimateResponse{}).WithMeta(&ResponseMeta{RequestID: "abc"})
	assert.True(t, ok.Success)
	assert.Nil(t, ok.Error)
	assert.Equal(t, "abc", ok.Meta.RequestID)

	bad := NewErrorResponse[any]("INVALID_REQUEST", "body is not JSON")
	assert.False(t, bad.Success)
	assert.Equal(t, "INVALID_REQUEST", bad.Error.Code)

	invalid := NewValidationErrorResponse[any]([]ValidationError{{Field: "sections", Message: "too many"}})
	assert.False(t, invalid.Success)
	assert.Equal(t, CodeValidation, invalid.Error.Code)
	require.Len(t, invalid.Error.ValidationErrors, 1)
}

func TestAPIResponse_WithDetails(t *testing.T) {
	base := NewErrorResponse[any]("REQUEST_TOO_LARGE", "too large")
	detailed := base.WithDetails(map[string]any{"limit_bytes": 16})

	assert.Equal(t, map[string]any{"limit_bytes": 16}, detailed.Error.Details)
	assert.Nil(t, base.Error.Details)

	ok := NewSuccessResponse(1).WithDetails(map[string]any{"x": 1})
	assert.Nil(t, ok.Error)
}
