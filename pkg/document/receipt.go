package document

import (
	"Resto-Manager/domain"
	"Resto-Manager/entities"
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// renderReceiptPDF lays out the boleta: one line per order item with its
// snapshotted price, then subtotal, IVA and total.
func renderReceiptPDF(order *entities.Order) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "--- BOLETA ---", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	customerName := order.CustomerEmail
	if order.Customer != nil {
		customerName = order.Customer.Name
	}
	pdf.CellFormat(0, 7, fmt.Sprintf("Order: %s", order.ID), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Customer: %s", customerName), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Date: %s", order.OrderDate.Format("2006-01-02")), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(100, 7, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(25, 7, "Qty", "B", 0, "R", false, 0, "")
	pdf.CellFormat(30, 7, "Price", "B", 0, "R", false, 0, "")
	pdf.CellFormat(30, 7, "Amount", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	var subtotal float64
	for _, item := range order.Items {
		name := item.MenuItemID.String()
		if item.MenuItem != nil {
			name = item.MenuItem.Name
		}
		amount := item.PriceAtTime * float64(item.Quantity)
		subtotal += amount

		pdf.CellFormat(100, 7, name, "", 0, "L", false, 0, "")
		pdf.CellFormat(25, 7, fmt.Sprintf("%d", item.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("$%.2f", item.PriceAtTime), "", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("$%.2f", amount), "", 1, "R", false, 0, "")
	}

	iva := subtotal * domain.ReceiptIVARate
	total := subtotal + iva

	pdf.Ln(3)
	pdf.CellFormat(155, 7, "Subtotal", "T", 0, "R", false, 0, "")
	pdf.CellFormat(30, 7, fmt.Sprintf("$%.2f", subtotal), "T", 1, "R", false, 0, "")
	pdf.CellFormat(155, 7, "IVA (19%)", "", 0, "R", false, 0, "")
	pdf.CellFormat(30, 7, fmt.Sprintf("$%.2f", iva), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(155, 8, "TOTAL", "", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, fmt.Sprintf("$%.2f", total), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
