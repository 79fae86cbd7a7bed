package pdf

import (
	"context"
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/servostack/garagedesk/internal/money"
	"github.com/servostack/garagedesk/internal/tax"
)

const footerDisclaimer = "This is a computer generated bill. Goods once sold will not be taken back. Subject to local jurisdiction."

func (r *renderer) RenderGSTBill(ctx context.Context, bill Bill) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	addHeader(m, bill, "TAX INVOICE")

	// Item table
	m.AddRow(8,
		text.NewCol(4, "Description", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "HSN", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(1, "Qty", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Rate", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(1, "GST%", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Amount", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	for _, item := range bill.Invoice.LineItems {
		m.AddRow(8,
			text.NewCol(4, item.Description, props.Text{Size: 9}),
			text.NewCol(2, item.HSNCode, props.Text{Size: 9}),
			text.NewCol(1, fmt.Sprintf("%d", item.Quantity), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, money.Format(item.Rate), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(1, fmt.Sprintf("%d", item.GSTPercent), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, money.Format(item.LineTotal), props.Text{Size: 9, Align: align.Right}),
		)
	}

	addTotalRow(m, "Subtotal", money.Format(bill.Invoice.Subtotal), false)

	// Tax section is a display-only regrouping of the stored lines.
	breakdown := tax.NewBreakdown()
	for _, item := range bill.Invoice.LineItems {
		breakdown.Add(tax.Bucket(item.GSTPercent), item.TaxAmount)
	}
	for _, entry := range breakdown.Ordered() {
		if entry.Amount.IsZero() {
			continue
		}
		label := fmt.Sprintf("GST @ %d%%", int(entry.Bucket))
		addTotalRow(m, label, money.Format(entry.Amount), false)
	}

	if !bill.Invoice.ServiceCharge.IsZero() {
		addTotalRow(m, "Service Charge", money.Format(bill.Invoice.ServiceCharge), false)
	}
	addTotalRow(m, "Grand Total", money.Format(bill.Invoice.GrandTotal), true)

	addWordsAndFooter(m, bill)

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}

func addHeader(m core.Maroto, bill Bill, title string) {
	if bill.Profile.LogoPath != "" {
		m.AddRow(25,
			image.NewFromFileCol(3, bill.Profile.LogoPath, props.Rect{
				Center:  false,
				Percent: 80,
			}),
			col.New(9),
		)
	}

	m.AddRow(10,
		text.NewCol(12, title, props.Text{
			Size:  18,
			Style: fontstyle.Bold,
			Align: align.Center,
		}),
	)

	garageLines := []string{bill.Profile.Name}
	garageLines = append(garageLines, bill.Profile.AddressLines...)
	if bill.Profile.GSTIN != "" {
		garageLines = append(garageLines, "GSTIN: "+bill.Profile.GSTIN)
	}
	if bill.Profile.Phone != "" {
		garageLines = append(garageLines, "Ph: "+bill.Profile.Phone)
	}

	garage := col.New(6)
	for i, line := range garageLines {
		style := props.Text{Size: 9, Top: float64(i * 4)}
		if i == 0 {
			style.Style = fontstyle.Bold
		}
		garage.Add(text.New(line, style))
	}

	m.AddRow(30,
		garage,
		col.New(6).Add(
			text.New("Bill No: "+bill.Invoice.Number, props.Text{Size: 9, Align: align.Right}),
			text.New("Date: "+bill.Invoice.InvoiceDate.Format("02-01-2006"), props.Text{Size: 9, Top: 4, Align: align.Right}),
		),
	)

	m.AddRow(22,
		col.New(6).Add(
			text.New("Billed To", props.Text{Size: 9, Style: fontstyle.Bold}),
			text.New(bill.CustomerName, props.Text{Size: 9, Top: 4}),
			text.New(bill.CustomerAddress, props.Text{Size: 9, Top: 8}),
			text.New(bill.CustomerPhone, props.Text{Size: 9, Top: 12}),
		),
		col.New(6).Add(
			text.New("Vehicle", props.Text{Size: 9, Style: fontstyle.Bold}),
			text.New(bill.VehicleRegistration, props.Text{Size: 9, Top: 4}),
			text.New(bill.VehicleMakeModel, props.Text{Size: 9, Top: 8}),
		),
	)
}

func addTotalRow(m core.Maroto, label, amount string, emphasized bool) {
	style := props.Text{Size: 9, Align: align.Right}
	if emphasized {
		style.Size = 11
		style.Style = fontstyle.Bold
	}
	m.AddRow(7,
		col.New(7),
		text.NewCol(3, label, style),
		text.NewCol(2, amount, style),
	)
}

func addWordsAndFooter(m core.Maroto, bill Bill) {
	words := money.InWords(bill.Invoice.GrandTotal)
	m.AddRow(10,
		text.NewCol(12, "Amount in words: "+strings.TrimSpace(words), props.Text{Size: 9, Style: fontstyle.Italic}),
	)

	m.AddRow(12,
		text.NewCol(12, footerDisclaimer, props.Text{Size: 7, Align: align.Center, Top: 4}),
	)

	m.AddRow(14,
		col.New(8),
		text.NewCol(4, "For "+bill.Profile.Name, props.Text{Size: 9, Align: align.Right, Top: 8}),
	)
}
