package service

// QRCodeService defines the interface for rendering QR codes.
type QRCodeService interface {
	// GeneratePNG renders the content as a QR code PNG image.
	GeneratePNG(content string) ([]byte, error)
}
