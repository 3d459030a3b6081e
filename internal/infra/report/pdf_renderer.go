// Package report renders the on-demand financial report as a PDF. The
// document is generated per request and streamed to the admin; nothing is
// persisted server-side.
package report

import (
	"bytes"

	"fogon/internal/domain/service"
	"fogon/internal/util"

	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"
)

type pdfRenderer struct {
	title string
}

// NewPDFRenderer creates the financial report renderer.
func NewPDFRenderer() service.ReportRenderer {
	return &pdfRenderer{title: "Reporte financiero"}
}

func (r *pdfRenderer) Render(rep *service.FinancialReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(r.title, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, r.title, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	window := rep.From.Format("02/01/2006") + " - " + rep.To.Format("02/01/2006")
	pdf.CellFormat(0, 6, window, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// Header row.
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	widths := []float64{32, 45, 22, 28, 32, 31}
	headers := []string{"Fecha", "Cliente", "Tipo", "Pago", "Estado", "Total"}
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, order := range rep.Orders {
		cells := []string{
			order.CreatedAt.Format("02/01/2006 15:04"),
			order.UserName,
			string(order.Type),
			string(order.PaymentMethod),
			string(order.Status),
			util.FormatCurrency(order.Total),
		}
		for i, cell := range cells {
			align := "L"
			if i == len(cells)-1 {
				align = "R"
			}
			pdf.CellFormat(widths[i], 6, cell, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 8, "Total: "+util.FormatCurrency(rep.Total), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to render report PDF")
	}

	return buf.Bytes(), nil
}
