// Package pipeline orchestrates one refresh cycle: reconcile the fetched
// row-set against the dataset's alias table, normalize every cell, derive
// the computed columns and hand back an immutable dataset snapshot.
package pipeline

import (
	"math"
	"time"

	"paydash/domain/ledger"
	"paydash/internal"
	"paydash/internal/normalize"
	"paydash/internal/schema"
)

// requiredPaymentColumns must exist after reconciliation; any that are
// missing are synthesized as all-zero columns rather than treated as errors
var requiredPaymentColumns = []string{
	schema.ColOrderAmount,
	schema.ColFinalAmount,
	schema.ColPaymentReceived,
}

// paymentDateChain is checked in order; the first present column supplies
// the record date for the whole dataset
var paymentDateChain = []string{"date", "p_date", "payment_date"}

// PaymentProcessor normalizes raw payment ledger rows into the canonical
// payment schema
type PaymentProcessor struct {
	aliases schema.AliasTable
	now     func() time.Time
}

// NewPaymentProcessor creates a payment processor using the wall clock for
// the year fallback
func NewPaymentProcessor() *PaymentProcessor {
	return &PaymentProcessor{aliases: schema.PaymentAliases(), now: time.Now}
}

// Process reconciles, normalizes and derives one payment dataset from a
// raw row-set. It never fails: malformed cells become defaults and missing
// columns are synthesized, all of it tallied in the report.
func (p *PaymentProcessor) Process(rs ledger.RowSet) ledger.PaymentDataset {
	renames := schema.Reconcile(rs.Headers, p.aliases)
	mapped := schema.Apply(rs, renames)

	for raw, canonical := range renames {
		internal.DefaultLogger.Debug("[PaymentProcessor] mapped column %q -> %q", raw, canonical)
	}

	present := make(map[string]bool, len(mapped.Headers))
	for _, h := range mapped.Headers {
		present[h] = true
	}

	report := ledger.ProcessingReport{
		SourceRows:    len(mapped.Rows),
		MappedColumns: map[string]string(renames),
	}
	for _, col := range requiredPaymentColumns {
		if !present[col] {
			report.SynthesizedColumns = append(report.SynthesizedColumns, col)
			internal.DefaultLogger.Warn("[PaymentProcessor] column %q not found, synthesizing zeros", col)
		}
	}
	if !present[schema.ColPendingAmount] {
		report.SynthesizedColumns = append(report.SynthesizedColumns, schema.ColPendingAmount)
	}

	dateColumn := ""
	for _, col := range paymentDateChain {
		if present[col] {
			dateColumn = col
			break
		}
	}

	records := make([]ledger.PaymentRecord, 0, len(mapped.Rows))
	for _, row := range mapped.Rows {
		rec := ledger.PaymentRecord{
			UnitName:    normalize.FreeText(row[schema.ColUnitName]),
			WorkOrderNo: normalize.FreeText(row[schema.ColWorkOrderNo]),
			PaymentMode: normalize.Categorical(row[schema.ColPaymentMode]),
			WorkStatus:  normalize.Categorical(row[schema.ColWorkStatus]),
		}

		rec.OrderAmount = p.amount(row[schema.ColOrderAmount], &report)
		rec.FinalAmount = p.amount(row[schema.ColFinalAmount], &report)
		rec.PaymentReceived = p.amount(row[schema.ColPaymentReceived], &report)
		rec.SourcePending = p.amount(row[schema.ColPendingAmount], &report)

		// The sheet's own pending figure is routinely stale; the derived
		// value always wins and is clipped at zero.
		rec.PendingAmount = math.Max(0, rec.FinalAmount-rec.PaymentReceived)

		if dateColumn != "" {
			parsed := normalize.Date(row[dateColumn])
			if parsed.Status == normalize.StatusMalformed {
				report.MalformedDates++
			}
			if parsed.Valid() {
				rec.Date = parsed.Time
				rec.HasDate = true
			}
		}
		if rec.HasDate {
			rec.Year = rec.Date.Year()
		} else {
			rec.Year = p.now().Year()
		}

		report.SourcePendingTotal += rec.SourcePending
		report.DerivedPendingTotal += rec.PendingAmount

		records = append(records, rec)
	}

	if math.Abs(report.SourcePendingTotal-report.DerivedPendingTotal) > 100 {
		internal.DefaultLogger.Info("[PaymentProcessor] pending mismatch: sheet says %.2f, derived %.2f - using derived",
			report.SourcePendingTotal, report.DerivedPendingTotal)
	}

	return ledger.PaymentDataset{Records: records, Report: report}
}

func (p *PaymentProcessor) amount(raw string, report *ledger.ProcessingReport) float64 {
	result := normalize.Amount(raw)
	if result.Status == normalize.StatusMalformed {
		report.MalformedAmounts++
	}
	return result.Value
}
