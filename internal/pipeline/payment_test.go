package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paydash/domain/ledger"
	"paydash/internal/schema"
)

func fixedClock() time.Time {
	return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
}

func newTestPaymentProcessor() *PaymentProcessor {
	return &PaymentProcessor{aliases: schema.PaymentAliases(), now: fixedClock}
}

func paymentRowSet() ledger.RowSet {
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
	return ledger.RowSet{Headers: headers, Rows: rows}
}

func TestPaymentProcessEndToEnd(t *testing.T) {
	ds := newTestPaymentProcessor().Process(paymentRowSet())
	require.Len(t, ds.Records, 4)

	var totalFinal, totalPending float64
	for _, rec := range ds.Records {
		totalFinal += rec.FinalAmount
		totalPending += rec.PendingAmount
	}
	assert.InDelta(t, 91102303.30+75000000.00+52500000.00+44750000.00, totalFinal, 0.01)

	first := ds.Records[0]
	assert.Equal(t, "Unit A", first.UnitName)
	assert.Equal(t, "WO001", first.WorkOrderNo)
	assert.Equal(t, "Online", first.PaymentMode)
	assert.Equal(t, "Completed", first.WorkStatus)
	assert.True(t, first.HasDate)
	assert.Equal(t, 2024, first.Year)
	assert.Equal(t, time.January, first.Date.Month())

	// Pending is always derived from final minus received, not the
	// sheet's own column.
	assert.InDelta(t, 91102303.30-36923263.30, first.PendingAmount, 0.01)
	assert.InDelta(t, 54179040.00, first.SourcePending, 0.01)

	assert.Equal(t, "Cash And Online", ds.Records[3].PaymentMode)
	assert.Zero(t, ds.Report.MalformedAmounts)
}

func TestPaymentPendingDerivationClipsAtZero(t *testing.T) {
	rs := ledger.RowSet{
		Headers: []string{"final_amount", "payment_received"},
		Rows: []ledger.RawRow{
			{"final_amount": "100", "payment_received": "250"},
		},
	}

	ds := newTestPaymentProcessor().Process(rs)
	require.Len(t, ds.Records, 1)
	assert.Zero(t, ds.Records[0].PendingAmount, "overpayment must not yield negative pending")
}

func TestPaymentSynthesizedColumnsReported(t *testing.T) {
	rs := ledger.RowSet{
		Headers: []string{"Unit Name"},
		Rows:    []ledger.RawRow{{"Unit Name": "Unit A"}},
	}

	ds := newTestPaymentProcessor().Process(rs)
	assert.Contains(t, ds.Report.SynthesizedColumns, schema.ColOrderAmount)
	assert.Contains(t, ds.Report.SynthesizedColumns, schema.ColFinalAmount)
	assert.Contains(t, ds.Report.SynthesizedColumns, schema.ColPaymentReceived)
	assert.Contains(t, ds.Report.SynthesizedColumns, schema.ColPendingAmount)

	require.Len(t, ds.Records, 1)
	assert.Zero(t, ds.Records[0].FinalAmount)
	assert.Zero(t, ds.Records[0].PendingAmount)
}

func TestPaymentDateChainPrefersFirstPresent(t *testing.T) {
	rs := ledger.RowSet{
		Headers: []string{"p_date", "payment_date", "final_amount"},
		Rows: []ledger.RawRow{
			{"p_date": "05/03/2024", "payment_date": "09/09/2019", "final_amount": "10"},
		},
	}

	ds := newTestPaymentProcessor().Process(rs)
	require.Len(t, ds.Records, 1)
	require.True(t, ds.Records[0].HasDate)
	assert.Equal(t, time.March, ds.Records[0].Date.Month())
	assert.Equal(t, 2024, ds.Records[0].Year)
}

func TestPaymentYearFallsBackToCurrentYear(t *testing.T) {
	rs := ledger.RowSet{
		Headers: []string{"final_amount", "date"},
		Rows: []ledger.RawRow{
			{"final_amount": "10", "date": "not a date"},
		},
	}

	ds := newTestPaymentProcessor().Process(rs)
	require.Len(t, ds.Records, 1)
	assert.False(t, ds.Records[0].HasDate)
	assert.Equal(t, 2025, ds.Records[0].Year)
	assert.Equal(t, 1, ds.Report.MalformedDates)
}

func TestPaymentMalformedAmountsCounted(t *testing.T) {
	rs := ledger.RowSet{
		Headers: []string{"final_amount", "payment_received"},
		Rows: []ledger.RawRow{
			{"final_amount": "garbage", "payment_received": "50"},
		},
	}

	ds := newTestPaymentProcessor().Process(rs)
	require.Len(t, ds.Records, 1)
	assert.Equal(t, 1, ds.Report.MalformedAmounts)
	assert.Zero(t, ds.Records[0].FinalAmount)
	assert.Zero(t, ds.Records[0].PendingAmount)
}

func TestPaymentAliasedHeadersReported(t *testing.T) {
	rs := ledger.RowSet{
		Headers: []string{"Unit", "Final Amt", "Paid"},
		Rows: []ledger.RawRow{
			{"Unit": "Unit A", "Final Amt": "100", "Paid": "40"},
		},
	}

	ds := newTestPaymentProcessor().Process(rs)
	assert.Equal(t, schema.ColUnitName, ds.Report.MappedColumns["unit"])
	assert.Equal(t, schema.ColFinalAmount, ds.Report.MappedColumns["final_amt"])
	require.Len(t, ds.Records, 1)
	assert.InDelta(t, 60, ds.Records[0].PendingAmount, 0.001)
}
