package sheets

import (
	"context"
	"log"

	"paydash/domain/ledger"
)

// DemoSource returns a fixed four-row payment dataset. It sits last in
// the payment source chain so the dashboard always has something to show
// when no spreadsheet is reachable.
type DemoSource struct{}

// NewDemoSource creates the built-in demonstration source
func NewDemoSource() *DemoSource {
	return &DemoSource{}
}

// Name identifies this source in logs and refresh reports
func (s *DemoSource) Name() string {
	return "demo"
}

// Fetch returns the built-in rows. The values are deliberately raw
// (currency commas, textual dates) so they exercise the full
// normalization path like any real sheet would.
func (s *DemoSource) Fetch(ctx context.Context) (*ledger.RowSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	headers := []string{
		"Unit Name", "Work Order No", "Order Amount", "Final Amount",
		"Payment Received", "Pending Amount", "Payment Mode", "Work Status", "Date",
	}
	values := [][]string{
		{"Unit A", "WO001", "79,290,940.00", "91,102,303.30", "36,923,263.30", "54,179,040.00", "Online", "Completed", "01/01/2024"},
		{"Unit B", "WO002", "65,000,000.00", "75,000,000.00", "30,000,000.00", "45,000,000.00", "Cash", "In Progress", "15/01/2024"},
		{"Unit C", "WO003", "45,500,000.00", "52,500,000.00", "25,000,000.00", "27,500,000.00", "Cheque", "Pending", "20/01/2024"},
		{"Unit D", "WO004", "38,750,000.00", "44,750,000.00", "18,500,000.00", "26,250,000.00", "Cash and Online", "Completed", "25/01/2024"},
	}

	rows := make([]ledger.RawRow, 0, len(values))
	for _, record := range values {
		row := make(ledger.RawRow, len(headers))
		for i, h := range headers {
			row[h] = record[i]
		}
		rows = append(rows, row)
	}

	log.Printf("[DemoSource] serving %d built-in payment rows", len(rows))
	return &ledger.RowSet{Headers: headers, Rows: rows}, nil
}
