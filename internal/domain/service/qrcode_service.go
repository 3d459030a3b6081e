package service

// QRCodeService generates the printable per-table QR codes that deep-link a
// dine-in guest into the storefront with the table preselected.
type QRCodeService interface {
	// GenerateTableQR renders the QR for one table as PNG bytes.
	GenerateTableQR(table int) ([]byte, error)
}
