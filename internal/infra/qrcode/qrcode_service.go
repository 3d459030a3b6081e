// Package qrcode renders the printable per-table codes that deep-link a
// seated guest into the storefront with the table preselected.
package qrcode

import (
	"fmt"

	"fogon/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

var recoveryLevels = map[string]qrcode.RecoveryLevel{
	"L": qrcode.Low,
	"M": qrcode.Medium,
	"Q": qrcode.High,
	"H": qrcode.Highest,
}

type qrcodeService struct {
	size    int
	level   qrcode.RecoveryLevel
	baseURL string
}

// NewQRCodeService builds the renderer. An unrecognized correction level
// falls back to medium.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	level, ok := recoveryLevels[errorCorrectionLevel]
	if !ok {
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:    size,
		level:   level,
		baseURL: baseURL,
	}
}

// GenerateTableQR renders the storefront deep link for one table as a PNG.
func (s *qrcodeService) GenerateTableQR(table int) ([]byte, error) {
	link := fmt.Sprintf("%s?mesa=%d", s.baseURL, table)

	pngBytes, err := qrcode.Encode(link, s.level, s.size)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to render QR for table %d", table)
	}

	return pngBytes, nil
}
