package pdf

import (
	"context"
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/servostack/garagedesk/internal/money"
)

// RenderNonGSTBill is the plain-bill layout. No HSN or tax columns and
// no tax section in the totals; everything else mirrors the GST bill.
func (r *renderer) RenderNonGSTBill(ctx context.Context, bill Bill) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	addHeader(m, bill, "BILL OF SUPPLY")

	m.AddRow(8,
		text.NewCol(6, "Description", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Qty", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Rate", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Amount", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	for _, item := range bill.Invoice.LineItems {
		m.AddRow(8,
			text.NewCol(6, item.Description, props.Text{Size: 9}),
			text.NewCol(2, fmt.Sprintf("%d", item.Quantity), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, money.Format(item.Rate), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, money.Format(item.LineTotal), props.Text{Size: 9, Align: align.Right}),
		)
	}

	addTotalRow(m, "Subtotal", money.Format(bill.Invoice.Subtotal), false)
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
