package qr

import (
	"encoding/base64" // Base64 encoding for the JSON delivery mode

	"github.com/sirupsen/logrus"        // Logging library
	qrcode "github.com/skip2/go-qrcode" // QR symbol encoder
)

// pngSize is the side length in pixels of the generated PNG
const pngSize = 256

// Generate encodes data as a QR symbol and returns it as PNG bytes.
// Capacity limits are those of the QR standard; inputs that exceed the
// largest symbol version fail with the encoder's error.
func Generate(data string) ([]byte, error) {
	png, err := qrcode.Encode(data, qrcode.Medium, pngSize) // Encode with medium error correction
	if err != nil {
		// Log the failure with context
		logrus.WithFields(logrus.Fields{
			"data_len": len(data),   // Input length, not the payload itself
			"error":    err.Error(), // Encoder error
		}).Error("QR generation failed")
		return nil, err // Surface the encoder error to the caller
	}
	return png, nil // Return the PNG bytes
}

// GenerateBase64 encodes data as a QR symbol and returns the PNG as a
// standard base64 string (padded, no line breaks)
func GenerateBase64(data string) (string, error) {
	png, err := Generate(data) // Generate the PNG bytes
	if err != nil {
		return "", err // Propagate the encoding error
	}
	return base64.StdEncoding.EncodeToString(png), nil // Encode to base64
}
