package service

// QRCodeService defines the interface for rendering QR code images.
type QRCodeService interface {
	// GeneratePNG renders the given content as a PNG image of size x size pixels.
	GeneratePNG(content string, size int) ([]byte, error)
}
