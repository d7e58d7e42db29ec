package pipeline

import (
	"paydash/domain/ledger"
	"paydash/internal"
	"paydash/internal/normalize"
	"paydash/internal/schema"
)

// ProposalProcessor normalizes raw proposal rows into the canonical
// proposal schema. Unlike payments there is no derived-versus-provided
// reconciliation: amount, the two date columns and year are each
// normalized independently in place.
type ProposalProcessor struct {
	aliases schema.AliasTable
}

// NewProposalProcessor creates a proposal processor
func NewProposalProcessor() *ProposalProcessor {
	return &ProposalProcessor{aliases: schema.ProposalAliases()}
}

// Process reconciles and normalizes one proposal dataset from a raw
// row-set
func (p *ProposalProcessor) Process(rs ledger.RowSet) ledger.ProposalDataset {
	renames := schema.Reconcile(rs.Headers, p.aliases)
	mapped := schema.Apply(rs, renames)

	for raw, canonical := range renames {
		internal.DefaultLogger.Debug("[ProposalProcessor] mapped column %q -> %q", raw, canonical)
	}

	present := make(map[string]bool, len(mapped.Headers))
	for _, h := range mapped.Headers {
		present[h] = true
	}

	report := ledger.ProcessingReport{
		SourceRows:    len(mapped.Rows),
		MappedColumns: map[string]string(renames),
	}
	if !present[schema.ColAmount] {
		report.SynthesizedColumns = append(report.SynthesizedColumns, schema.ColAmount)
		internal.DefaultLogger.Warn("[ProposalProcessor] amount column not found, synthesizing zeros")
	}

	records := make([]ledger.ProposalRecord, 0, len(mapped.Rows))
	for _, row := range mapped.Rows {
		rec := ledger.ProposalRecord{
			SNo:           normalize.FreeText(row[schema.ColSNo]),
			No:            normalize.FreeText(row[schema.ColNo]),
			Name:          normalize.FreeText(row[schema.ColName]),
			IndustryType:  normalize.FreeText(row[schema.ColIndustryType]),
			District:      normalize.FreeText(row[schema.ColDistrict]),
			ScopeOfWork:   normalize.FreeText(row[schema.ColScopeOfWork]),
			Type:          normalize.FreeText(row[schema.ColType]),
			Source:        normalize.FreeText(row[schema.ColSource]),
			RefrenceNo:    normalize.FreeText(row[schema.ColRefrenceNo]),
			ContactPerson: normalize.FreeText(row[schema.ColContactPerson]),
			Status:        normalize.Categorical(row[schema.ColStatus]),
			PresentStatus: normalize.Categorical(row[schema.ColPresentStatus]),
		}

		amount := normalize.Amount(row[schema.ColAmount])
		if amount.Status == normalize.StatusMalformed {
			report.MalformedAmounts++
		}
		rec.Amount = amount.Value

		// Year is whatever the sheet says, zero when unparseable. It is
		// deliberately not derived from the date columns.
		rec.Year = normalize.Int(row[schema.ColYear]).Value

		if date := normalize.Date(row[schema.ColDate]); date.Valid() {
			rec.Date = date.Time
			rec.HasDate = true
		} else if date.Status == normalize.StatusMalformed {
			report.MalformedDates++
		}
		if woDate := normalize.Date(row[schema.ColWODate]); woDate.Valid() {
			rec.WODate = woDate.Time
			rec.HasWODate = true
		} else if woDate.Status == normalize.StatusMalformed {
			report.MalformedDates++
		}

		records = append(records, rec)
	}

	return ledger.ProposalDataset{Records: records, Report: report}
}
