package service

import "uniform/internal/domain/entity"

// QRCodeService defines the interface for receipt encoding and QR code rendering
type QRCodeService interface {
	// EncodeReceipt serializes a receipt into the string stored on the order and embedded in the QR code
	EncodeReceipt(receipt *entity.Receipt) (string, error)

	// GenerateReceiptQR renders encoded receipt data as a PNG QR code
	GenerateReceiptQR(receiptData string) ([]byte, error)

	// ParseReceiptQR decodes scanned QR data back into a receipt
	ParseReceiptQR(qrData string) (*entity.Receipt, error)
}
