package qrcode

import (
	"encoding/json"
	"fmt"

	"noticetrack/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	NoticeID uint64 `json:"notice_id"`
	Type     string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
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

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateNoticeQR generates a QR code that deep-links to a served notice
func (s *qrcodeService) GenerateNoticeQR(noticeID uint64) ([]byte, error) {
	// Create QR code data
	data := QRCodeData{
		NoticeID: noticeID,
		Type:     "notice",
	}

	// Convert to JSON
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	// Generate QR code
	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseNoticeQR parses QR code data and returns the notice token id
func (s *qrcodeService) ParseNoticeQR(qrData string) (uint64, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return 0, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != "notice" {
		return 0, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	if data.NoticeID == 0 {
		return 0, fmt.Errorf("missing notice id in QR code data")
	}

	return data.NoticeID, nil
}
