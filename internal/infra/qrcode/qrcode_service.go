package qrcode

import (
	"net/url"
	"strings"

	"foodmarket/config"
	"foodmarket/internal/domain/service"
	"foodmarket/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 256
	vendorsPath = "vendor"
	menuSuffix  = "menu"
	minimumSize = 64
	maximumSize = 2048
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size < minimumSize || size > maximumSize {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// NewQRCodeServiceFromConfig builds the service from the qrcode config section, falling back to defaults.
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// GenerateMenuQR encodes the public menu URL of a vendor as a PNG.
// The URL must name the same vendor so a scan can be resolved back with ParseMenuQR.
func (s *qrcodeService) GenerateMenuQR(vendorID uuid.UUID, menuURL string) ([]byte, error) {
	parsedID, err := s.ParseMenuQR(menuURL)
	if err != nil {
		return nil, err
	}
	if parsedID != vendorID {
		return nil, errors.Errorf("menu url %q does not belong to vendor %s", menuURL, vendorID)
	}

	qrCode, err := qrcode.New(menuURL, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseMenuQR extracts the vendor ID from a scanned menu URL of the form .../vendor/{id}/menu.
func (s *qrcodeService) ParseMenuQR(qrData string) (uuid.UUID, error) {
	parsed, err := url.Parse(strings.TrimSpace(qrData))
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return uuid.Nil, errors.Errorf("invalid menu url: %q", qrData)
	}

	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	for idx := 0; idx+2 < len(segments); idx++ {
		if segments[idx] != vendorsPath || segments[idx+2] != menuSuffix {
			continue
		}

		vendorID, parseErr := uuid.Parse(segments[idx+1])
		if parseErr != nil {
			return uuid.Nil, errors.Wrap(parseErr, "failed to parse vendor ID")
		}

		return vendorID, nil
	}

	return uuid.Nil, errors.Errorf("not a vendor menu url: %q", qrData)
}
