package ledger

import (
	"time"
)

// RawRow represents one spreadsheet row as cleaned-column-name → cell value.
// Cell values arrive as strings regardless of how the sheet formats them.
type RawRow map[string]string

// RowSet is the raw table handed over by a fetch collaborator: ordered
// headers plus homogeneous rows. Every row in a RowSet shares one column set.
type RowSet struct {
	Headers []string `json:"headers"`
	Rows    []RawRow `json:"rows"`
}

// IsEmpty reports whether the row-set carries no usable data rows
func (rs *RowSet) IsEmpty() bool {
	return rs == nil || len(rs.Rows) == 0
}

// PaymentRecord is one normalized payment ledger row.
// PendingAmount is always derived (max(0, FinalAmount-PaymentReceived));
// SourcePending keeps whatever the sheet claimed, for diagnostics only.
type PaymentRecord struct {
	UnitName        string    `json:"unit_name"`
	WorkOrderNo     string    `json:"work_order_no"`
	OrderAmount     float64   `json:"order_amount"`
	FinalAmount     float64   `json:"final_amount"`
	PaymentReceived float64   `json:"payment_received"`
	PendingAmount   float64   `json:"pending_amount"`
	SourcePending   float64   `json:"-"`
	PaymentMode     string    `json:"payment_mode"`
	WorkStatus      string    `json:"work_status"`
	Date            time.Time `json:"date"`
	HasDate         bool      `json:"has_date"`
	Year            int       `json:"year"`
}

// ProposalRecord is one normalized sales proposal row
type ProposalRecord struct {
	SNo           string    `json:"s_no"`
	Year          int       `json:"year"`
	Date          time.Time `json:"date"`
	HasDate       bool      `json:"has_date"`
	WODate        time.Time `json:"wo_date"`
	HasWODate     bool      `json:"has_wo_date"`
	No            string    `json:"no"`
	Name          string    `json:"name"`
	IndustryType  string    `json:"industry_type"`
	District      string    `json:"district"`
	ScopeOfWork   string    `json:"scope_of_work"`
	Type          string    `json:"type"`
	Source        string    `json:"source"`
	Status        string    `json:"status"`
	RefrenceNo    string    `json:"refrence_no"`
	ContactPerson string    `json:"contact_person"`
	Amount        float64   `json:"amount"`
	PresentStatus string    `json:"present_status"`
}

// ProcessingReport carries the diagnostics a processing pass produced.
// It replaces the sidebar debug output of the dashboard: which raw columns
// were bound, which had to be synthesized, and how the sheet's own pending
// figures compare against the derived ones.
type ProcessingReport struct {
	SourceRows          int               `json:"source_rows"`
	MappedColumns       map[string]string `json:"mapped_columns"`
	SynthesizedColumns  []string          `json:"synthesized_columns"`
	MalformedAmounts    int               `json:"malformed_amounts"`
	MalformedDates      int               `json:"malformed_dates"`
	SourcePendingTotal  float64           `json:"source_pending_total"`
	DerivedPendingTotal float64           `json:"derived_pending_total"`
}

// PaymentDataset is one processed payment snapshot. Datasets are rebuilt
// wholesale on every refresh and never mutated in place.
type PaymentDataset struct {
	Records []PaymentRecord  `json:"records"`
	Report  ProcessingReport `json:"report"`
}

// ProposalDataset is one processed proposal snapshot
type ProposalDataset struct {
	Records []ProposalRecord `json:"records"`
	Report  ProcessingReport `json:"report"`
}

// Len returns the record count
func (d *PaymentDataset) Len() int { return len(d.Records) }

// Len returns the record count
func (d *ProposalDataset) Len() int { return len(d.Records) }
