package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateCartQR generates a PNG QR code pointing at the cart's share link
	GenerateCartQR(cartID string) ([]byte, error)

	// ParseCartQR parses QR code payload data and returns the cart ID
	ParseCartQR(qrData string) (string, error)
}
