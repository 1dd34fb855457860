package qrcode

import (
	"encoding/json"
	"fmt"
	"strings"

	"buyhive/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const cartPayloadType = "cart"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// CartQRData is the JSON payload encoded into a cart QR code
type CartQRData struct {
	Type   string `json:"type"`
	CartID string `json:"cart_id"`
	URL    string `json:"url,omitempty"`
}

// NewQRCodeService creates a new QR code service instance.
// baseURL is the share page prefix; the cart id is appended to it.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
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
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GenerateCartQR generates a PNG QR code for a cart share link
func (s *qrcodeService) GenerateCartQR(cartID string) ([]byte, error) {
	if _, err := uuid.Parse(cartID); err != nil {
		return nil, fmt.Errorf("invalid cart ID %q: %w", cartID, err)
	}

	data := CartQRData{
		Type:   cartPayloadType,
		CartID: cartID,
	}
	if s.baseURL != "" {
		data.URL = s.baseURL + "/" + cartID
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseCartQR parses QR code data and returns the cart ID
func (s *qrcodeService) ParseCartQR(qrData string) (string, error) {
	var data CartQRData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != cartPayloadType {
		return "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	cartID, err := uuid.Parse(data.CartID)
	if err != nil {
		return "", fmt.Errorf("failed to parse cart ID: %w", err)
	}

	return cartID.String(), nil
}
