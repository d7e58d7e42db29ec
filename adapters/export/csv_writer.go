// Package export serializes normalized datasets back to CSV. The output
// carries canonical column names and normalized values, not the raw
// sheet contents, so a downloaded file can be diffed across refreshes.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"paydash/domain/ledger"
)

const dateLayout = "02/01/2006"

var paymentColumns = []string{
	"unit_name", "work_order_no", "order_amount", "final_amount",
	"payment_received", "pending_amount", "payment_mode", "work_status",
	"date", "year",
}

var proposalColumns = []string{
	"sno", "year", "date", "wo_date", "no", "name", "industry_type",
	"district", "scope_of_work", "type", "source", "status",
	"refrence_no", "contact_person", "amount", "present_status",
}

// WritePayments writes the payment dataset as CSV
func WritePayments(w io.Writer, ds ledger.PaymentDataset) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(paymentColumns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, rec := range ds.Records {
		date := ""
		if rec.HasDate {
			date = rec.Date.Format(dateLayout)
		}
		record := []string{
			rec.UnitName,
			rec.WorkOrderNo,
			formatAmount(rec.OrderAmount),
			formatAmount(rec.FinalAmount),
			formatAmount(rec.PaymentReceived),
			formatAmount(rec.PendingAmount),
			rec.PaymentMode,
			rec.WorkStatus,
			date,
			strconv.Itoa(rec.Year),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteProposals writes the proposal dataset as CSV
func WriteProposals(w io.Writer, ds ledger.ProposalDataset) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(proposalColumns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, rec := range ds.Records {
		date := ""
		if rec.HasDate {
			date = rec.Date.Format(dateLayout)
		}
		woDate := ""
		if rec.HasWODate {
			woDate = rec.WODate.Format(dateLayout)
		}
		record := []string{
			rec.SNo,
			strconv.Itoa(rec.Year),
			date,
			woDate,
			rec.No,
			rec.Name,
			rec.IndustryType,
			rec.District,
			rec.ScopeOfWork,
			rec.Type,
			rec.Source,
			rec.Status,
			rec.RefrenceNo,
			rec.ContactPerson,
			formatAmount(rec.Amount),
			rec.PresentStatus,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
