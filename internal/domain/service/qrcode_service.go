package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for listing share-code generation.
type QRCodeService interface {
	// GenerateListingQR generates a QR code image encoding the share link for
	// a listing.
	GenerateListingQR(listingID uuid.UUID) ([]byte, error)

	// ParseListingQR parses share-code data and returns the listing ID.
	ParseListingQR(qrData string) (uuid.UUID, error)
}
