package qrcode

import (
	"fmt"
	"testing"

	"foodmarket/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func menuURL(vendorID uuid.UUID) string {
	return fmt.Sprintf("https://foodmarket.example.com/api/v1/vendor/%s/menu", vendorID)
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
		wantSize             int
	}{
		{"Low error correction", 256, "L", 256},
		{"Medium error correction", 300, "M", 300},
		{"High error correction", 256, "q", 256},
		{"Highest error correction", 256, "H", 256},
		{"Default error correction", 256, "invalid", 256},
		{"Size too small falls back", 10, "M", defaultSize},
		{"Size too large falls back", 10000, "M", defaultSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			require.NotNil(t, svc)
			assert.Equal(t, tt.wantSize, svc.(*qrcodeService).size)
		})
	}
}

func TestNewQRCodeServiceFromConfig(t *testing.T) {
	svc := NewQRCodeServiceFromConfig(&config.Config{})
	assert.Equal(t, defaultSize, svc.(*qrcodeService).size)

	svc = NewQRCodeServiceFromConfig(&config.Config{QRCode: &config.QRCodeConfig{Size: 512, ErrorCorrectionLevel: "H"}})
	assert.Equal(t, 512, svc.(*qrcodeService).size)
}

func TestQRCodeService_GenerateMenuQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")
	vendorID := uuid.New()

	qrBytes, err := svc.GenerateMenuQR(vendorID, menuURL(vendorID))
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateMenuQR_OtherVendorURL(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	_, err := svc.GenerateMenuQR(uuid.New(), menuURL(uuid.New()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not belong to vendor")
}

func TestQRCodeService_ParseMenuQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")
	vendorID := uuid.New()

	tests := []struct {
		name    string
		data    string
		want    uuid.UUID
		wantErr string
	}{
		{name: "valid url", data: menuURL(vendorID), want: vendorID},
		{name: "trailing slash", data: menuURL(vendorID) + "/", want: vendorID},
		{name: "not a url", data: "invalid data", wantErr: "invalid menu url"},
		{name: "other path", data: "https://foodmarket.example.com/api/v1/menu", wantErr: "not a vendor menu url"},
		{name: "bad uuid", data: "https://foodmarket.example.com/vendor/not-a-uuid/menu", wantErr: "failed to parse vendor ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ParseMenuQR(tt.data)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
