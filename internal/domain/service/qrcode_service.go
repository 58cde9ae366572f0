package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateMenuQR generates a PNG QR code that links to a vendor's public menu
	GenerateMenuQR(vendorID uuid.UUID, menuURL string) ([]byte, error)

	// ParseMenuQR parses QR code data and returns the vendor ID
	ParseMenuQR(qrData string) (uuid.UUID, error)
}
