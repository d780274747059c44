package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "https://homeradar.app")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateListingQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://homeradar.app")
	listingID := uuid.New()

	qrBytes, err := service.GenerateListingQR(listingID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GenerateListingQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M", "")
			listingID := uuid.New()

			qrBytes, err := service.GenerateListingQR(listingID)
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_ParseListingQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://homeradar.app")
	listingID := uuid.New()

	data := QRCodeData{
		ListingID: listingID.String(),
		Type:      "listing_share",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	parsedID, err := service.ParseListingQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, listingID, parsedID)
}

func TestQRCodeService_ParseListingQR_InvalidType(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://homeradar.app")

	data := QRCodeData{
		ListingID: uuid.New().String(),
		Type:      "subscription",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = service.ParseListingQR(string(jsonData))
	assert.ErrorContains(t, err, "invalid QR code type")
}

func TestQRCodeService_ParseListingQR_InvalidJSON(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://homeradar.app")

	_, err := service.ParseListingQR("not json")
	assert.ErrorContains(t, err, "failed to unmarshal")
}

func TestQRCodeService_ParseListingQR_InvalidUUID(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://homeradar.app")

	data := QRCodeData{
		ListingID: "not-a-uuid",
		Type:      "listing_share",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = service.ParseListingQR(string(jsonData))
	assert.ErrorContains(t, err, "failed to parse listing ID")
}

func TestQRCodeService_RoundTrip(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://homeradar.app")
	listingID := uuid.New()

	qrBytes, err := service.GenerateListingQR(listingID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	data := QRCodeData{
		ListingID: listingID.String(),
		Type:      "listing_share",
		URL:       "https://homeradar.app/listings/" + listingID.String(),
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	parsedID, err := service.ParseListingQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, listingID, parsedID)
}
