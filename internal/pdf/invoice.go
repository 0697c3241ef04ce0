// Package pdf renders saved invoices to PDF for printing and sharing.
package pdf

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

type InvoiceItem struct {
	Position int
	Name     string
	HSN      string
	Size     string
	Quantity float64
	Rate     float64
	Amount   float64
	Tax      float64
	Total    float64
}

type CustomerData struct {
	Name      string
	Address   string
	Phone     string
	GSTNumber string
	State     string
}

type CompanyData struct {
	Name    string
	Address string
	GSTIN   string
	Phone   string
}

type InvoiceData struct {
	InvoiceNumber string
	Date          string
	GSTType       string
	TransportName string
	Bundles       string
	EwayBill      string
	Items         []InvoiceItem
	Subtotal      float64
	CGST          float64
	SGST          float64
	IGST          float64
	RoundOff      float64
	GrandTotal    float64
	TotalInWords  string
	Customer      CustomerData
	Company       CompanyData
}

func amount(v float64) string { return fmt.Sprintf("%.2f", v) }

// InvoicePDF renders the invoice as a single-page A4 document.
func InvoicePDF(data InvoiceData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		Build()
	m := maroto.New(cfg)

	m.AddRow(10, text.NewCol(12, data.Company.Name,
		props.Text{Size: 16, Style: fontstyle.Bold, Align: align.Center}))
	m.AddRow(5, text.NewCol(12, data.Company.Address, props.Text{Size: 9, Align: align.Center}))
	if data.Company.GSTIN != "" {
		m.AddRow(5, text.NewCol(12, "GSTIN: "+data.Company.GSTIN, props.Text{Size: 9, Align: align.Center}))
	}
	if data.Company.Phone != "" {
		m.AddRow(5, text.NewCol(12, "Phone: "+data.Company.Phone, props.Text{Size: 9, Align: align.Center}))
	}
	m.AddRow(8, text.NewCol(12, "TAX INVOICE ("+data.GSTType+")",
		props.Text{Size: 11, Style: fontstyle.Bold, Align: align.Center}))
	m.AddRow(2, line.NewCol(12))

	m.AddRow(6,
		text.NewCol(6, "Invoice No: "+data.InvoiceNumber, props.Text{Size: 10, Style: fontstyle.Bold}),
		text.NewCol(6, "Date: "+data.Date, props.Text{Size: 10, Align: align.Right}),
	)
	m.AddRow(6, text.NewCol(12, "Bill To: "+data.Customer.Name, props.Text{Size: 10, Style: fontstyle.Bold}))
	if data.Customer.Address != "" {
		m.AddRow(5, text.NewCol(12, data.Customer.Address, props.Text{Size: 9}))
	}
	details := ""
	if data.Customer.GSTNumber != "" {
		details += "GSTIN: " + data.Customer.GSTNumber + "  "
	}
	if data.Customer.State != "" {
		details += "State: " + data.Customer.State + "  "
	}
	if data.Customer.Phone != "" {
		details += "Phone: " + data.Customer.Phone
	}
	if details != "" {
		m.AddRow(5, text.NewCol(12, details, props.Text{Size: 9}))
	}
	if data.TransportName != "" || data.Bundles != "" || data.EwayBill != "" {
		transport := "Transport: " + data.TransportName
		if data.Bundles != "" {
			transport += "  Bundles: " + data.Bundles
		}
		if data.EwayBill != "" {
			transport += "  E-Way Bill: " + data.EwayBill
		}
		m.AddRow(5, text.NewCol(12, transport, props.Text{Size: 9}))
	}
	m.AddRow(2, line.NewCol(12))

	header := props.Text{Size: 9, Style: fontstyle.Bold}
	m.AddRow(6,
		text.NewCol(1, "No.", header),
		text.NewCol(3, "Item", header),
		text.NewCol(1, "HSN", header),
		text.NewCol(1, "Size", header),
		text.NewCol(1, "Qty", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}),
		text.NewCol(2, "Rate", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}),
		text.NewCol(1, "GST", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}),
		text.NewCol(2, "Total", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}),
	)
	cell := props.Text{Size: 9}
	right := props.Text{Size: 9, Align: align.Right}
	for _, it := range data.Items {
		m.AddRow(5,
			text.NewCol(1, fmt.Sprintf("%d", it.Position), cell),
			text.NewCol(3, it.Name, cell),
			text.NewCol(1, it.HSN, cell),
			text.NewCol(1, it.Size, cell),
			text.NewCol(1, amount(it.Quantity), right),
			text.NewCol(2, amount(it.Rate), right),
			text.NewCol(1, amount(it.Tax), right),
			text.NewCol(2, amount(it.Total), right),
		)
	}
	m.AddRow(2, line.NewCol(12))

	totalLabel := props.Text{Size: 10, Align: align.Right}
	totalValue := props.Text{Size: 10, Align: align.Right, Style: fontstyle.Bold}
	m.AddRow(5, text.NewCol(10, "Subtotal", totalLabel), text.NewCol(2, amount(data.Subtotal), totalValue))
	if data.CGST > 0 || data.SGST > 0 {
		m.AddRow(5, text.NewCol(10, "CGST @2.5%", totalLabel), text.NewCol(2, amount(data.CGST), totalValue))
		m.AddRow(5, text.NewCol(10, "SGST @2.5%", totalLabel), text.NewCol(2, amount(data.SGST), totalValue))
	}
	if data.IGST > 0 {
		m.AddRow(5, text.NewCol(10, "IGST @5%", totalLabel), text.NewCol(2, amount(data.IGST), totalValue))
	}
	m.AddRow(5, text.NewCol(10, "Round Off", totalLabel), text.NewCol(2, amount(data.RoundOff), totalValue))
	m.AddRow(7, text.NewCol(10, "Grand Total", props.Text{Size: 11, Align: align.Right, Style: fontstyle.Bold}),
		text.NewCol(2, amount(data.GrandTotal), props.Text{Size: 11, Align: align.Right, Style: fontstyle.Bold}))
	m.AddRow(6, text.NewCol(12, data.TotalInWords, props.Text{Size: 9, Style: fontstyle.Italic}))

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}
