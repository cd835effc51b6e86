package qrcode

import (
	"encoding/json"
	"fmt"

	"uniform/internal/domain/entity"
	"uniform/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
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

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// EncodeReceipt serializes the receipt as JSON
func (s *qrcodeService) EncodeReceipt(receipt *entity.Receipt) (string, error) {
	jsonData, err := json.Marshal(receipt)
	if err != nil {
		return "", fmt.Errorf("failed to marshal receipt: %w", err)
	}

	return string(jsonData), nil
}

// GenerateReceiptQR renders encoded receipt data as a PNG
func (s *qrcodeService) GenerateReceiptQR(receiptData string) ([]byte, error) {
	if receiptData == "" {
		return nil, fmt.Errorf("receipt data is empty")
	}

	qrCode, err := qrcode.New(receiptData, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseReceiptQR decodes scanned receipt data
func (s *qrcodeService) ParseReceiptQR(qrData string) (*entity.Receipt, error) {
	var receipt entity.Receipt
	if err := json.Unmarshal([]byte(qrData), &receipt); err != nil {
		return nil, fmt.Errorf("failed to unmarshal receipt: %w", err)
	}

	if receipt.Type != entity.ReceiptTypeOrder {
		return nil, fmt.Errorf("invalid QR code type: %s", receipt.Type)
	}

	if receipt.OrderNumber == "" {
		return nil, fmt.Errorf("receipt has no order number")
	}

	if receipt.StudentID == uuid.Nil {
		return nil, fmt.Errorf("receipt has no student ID")
	}

	return &receipt, nil
}
