package service

// QRCodeService defines the interface for notice deep-link QR codes.
type QRCodeService interface {
	// GenerateNoticeQR generates a PNG QR code encoding the recipient view
	// link for a notice token id.
	GenerateNoticeQR(noticeID uint64) ([]byte, error)

	// ParseNoticeQR parses QR code data and returns the notice token id.
	ParseNoticeQR(qrData string) (uint64, error)
}
