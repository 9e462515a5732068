// Package qr renders the per-asset QR code used on printed lab labels.
package qr

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/crucial707/lab-inventory/internal/models"
)

// pngSize is the rendered image edge in pixels.
const pngSize = 256

// Payload is the text encoded for one asset.
func Payload(a models.Asset) string {
	return fmt.Sprintf("ID: %d\nName: %s", a.ID, a.Name)
}

// PNG renders the asset payload as a QR PNG.
func PNG(a models.Asset) ([]byte, error) {
	return qrcode.Encode(Payload(a), qrcode.Medium, pngSize)
}
