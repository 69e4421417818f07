package service

// QRCodeService renders QR codes for console links.
type QRCodeService interface {
	// GenerateShopQR generates a PNG QR code pointing at a shop's page.
	GenerateShopQR(shopURL string) ([]byte, error)
}
