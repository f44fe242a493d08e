package domain

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHotelSettings_Config(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected HotelConfig
	}{
		{
			name: "Chaves ausentes recebem os valores padrão",
			body: `{"name":"Harbor Inn"}`,
			expected: HotelConfig{
				Name:          "Harbor Inn",
				TotalRooms:    DefaultTotalRooms,
				BaseOccupancy: DefaultBaseOccupancy,
				MinPrice:      DefaultMinPrice,
				MaxPrice:      DefaultMaxPrice,
				StarRating:    DefaultStarRating,
			},
		},
		{
			name: "Zeros explícitos são mantidos",
			body: `{"total_rooms":0,"base_occupancy":0,"min_price":0,"max_price":0,"star_rating":0}`,
			expected: HotelConfig{},
		},
		{
			name: "Mistura de chaves informadas e ausentes",
			body: `{"total_rooms":40,"base_occupancy":0}`,
			expected: HotelConfig{
				TotalRooms:    40,
				BaseOccupancy: 0,
				MinPrice:      DefaultMinPrice,
				MaxPrice:      DefaultMaxPrice,
				StarRating:    DefaultStarRating,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var settings HotelSettings
			require.NoError(t, jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal([]byte(tt.body), &settings))

			assert.Equal(t, tt.expected, settings.Config())
		})
	}
}

func TestCreateHotelRequest_DecodeEmbeddedSettings(t *testing.T) {
	var request CreateHotelRequest
	body := `{"name":"Rambla","total_rooms":0,"auto_mode":true}`
	require.NoError(t, jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal([]byte(body), &request))

	require.NotNil(t, request.TotalRooms)
	assert.Equal(t, 0, *request.TotalRooms)
	assert.Nil(t, request.BaseOccupancy)
	assert.True(t, request.AutoMode)
	assert.Equal(t, 0, request.Config().TotalRooms)
}
