package render

import (
	"bytes"
	"fmt"

	"shoplink/models"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// BuildCatalogPDF renders a printable one-sheet catalog: store name, product
// list with prices, and a QR code linking to the store page so walk-in
// customers can order from their phone.
func BuildCatalogPDF(store models.Store, products []models.Product, storeURL string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 22)
	pdf.CellFormat(0, 12, store.Name, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Order on WhatsApp: %s", store.Whatsapp), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(130, 8, "Product", "B", 0, "L", false, 0, "")
	pdf.CellFormat(0, 8, "Price", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, p := range products {
		pdf.CellFormat(130, 8, p.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 8, fmt.Sprintf("$%.2f", p.Price), "", 1, "R", false, 0, "")
		if p.Description != "" {
			pdf.SetFont("Helvetica", "I", 9)
			pdf.SetTextColor(110, 110, 110)
			pdf.MultiCell(0, 5, p.Description, "", "L", false)
			pdf.SetTextColor(0, 0, 0)
			pdf.SetFont("Helvetica", "", 11)
		}
	}

	qrPNG, err := qrcode.Encode(storeURL, qrcode.Medium, 256)
	if err == nil {
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("store-qr", opts, bytes.NewReader(qrPNG))
		pdf.Ln(10)
		pdf.ImageOptions("store-qr", 85, pdf.GetY(), 40, 40, false, opts, 0, "")
		pdf.SetY(pdf.GetY() + 42)
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(0, 5, "Scan to browse and order", "", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output failed: %w", err)
	}
	return buf.Bytes(), nil
}
