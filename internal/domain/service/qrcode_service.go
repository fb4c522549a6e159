package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation services.
type QRCodeService interface {
	// GenerateArtistShareQR renders a QR code image pointing at the public
	// page of an artist profile.
	GenerateArtistShareQR(artistID uuid.UUID) ([]byte, error)
}
