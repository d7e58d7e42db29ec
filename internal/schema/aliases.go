package schema

// AliasTable maps canonical field names to the ordered raw-name variants
// recognized as that field. Both the canonical order and each alias list's
// order are contracts: reconciliation walks them exactly as declared, and
// the first present alias wins.
type AliasTable struct {
	Canonical []string
	Aliases   map[string][]string
}

// Payment canonical column names
const (
	ColUnitName        = "unit_name"
	ColWorkOrderNo     = "work_order_no"
	ColOrderAmount     = "order_amount"
	ColFinalAmount     = "final_amount"
	ColPaymentReceived = "payment_received"
	ColPendingAmount   = "pending_amount"
	ColPaymentMode     = "payment_mode"
	ColWorkStatus      = "work_status"
	ColDate            = "date"
)

// Proposal canonical column names
const (
	ColSNo           = "s_no"
	ColYear          = "year"
	ColWODate        = "wo_date"
	ColNo            = "no"
	ColName          = "name"
	ColIndustryType  = "industry_type"
	ColDistrict      = "district"
	ColScopeOfWork   = "scope_of_work"
	ColType          = "type"
	ColSource        = "source"
	ColStatus        = "status"
	ColRefrenceNo    = "refrence_no"
	ColContactPerson = "contact_person"
	ColAmount        = "amount"
	ColPresentStatus = "present_status"
)

// PaymentAliases returns the alias table for the payment ledger sheet.
// Every alias list leads with the canonical name itself, so already-clean
// sheets reconcile to the identity mapping.
func PaymentAliases() AliasTable {
	return AliasTable{
		Canonical: []string{
			ColUnitName, ColWorkOrderNo, ColOrderAmount, ColFinalAmount,
			ColPaymentReceived, ColPendingAmount, ColPaymentMode,
			ColWorkStatus, ColDate,
		},
		Aliases: map[string][]string{
			ColUnitName:        {"unit_name", "unit", "unitname", "name", "client", "customer"},
			ColWorkOrderNo:     {"work_order_no", "work_order", "wo_no", "order_no", "workorder", "wo_number"},
			ColOrderAmount:     {"order_amount", "order", "amount", "order_amt", "initial_amount", "quoted_amount"},
			ColFinalAmount:     {"final_amount", "final", "final_amt", "total_amount", "grand_total", "invoice_amount"},
			ColPaymentReceived: {"payment_received", "received", "paid", "amount_received", "paid_amount"},
			ColPendingAmount:   {"pending_amount", "pending", "balance", "due_amount", "outstanding", "remaining"},
			ColPaymentMode:     {"payment_mode", "mode", "payment_type", "type", "payment_method"},
			ColWorkStatus:      {"work_status", "status", "job_status", "project_status", "completion_status"},
			ColDate:            {"date", "p_date", "payment_date", "transaction_date", "invoice_date", "entry_date"},
		},
	}
}

// ProposalAliases returns the alias table for the proposals sheet. The
// "refrence_no" spelling is the sheet's own; it is part of the schema.
func ProposalAliases() AliasTable {
	return AliasTable{
		Canonical: []string{
			ColSNo, ColYear, ColDate, ColWODate, ColNo, ColName,
			ColIndustryType, ColDistrict, ColScopeOfWork, ColType,
			ColSource, ColStatus, ColRefrenceNo, ColContactPerson,
			ColAmount, ColPresentStatus,
		},
		Aliases: map[string][]string{
			ColSNo:           {"s_no", "sno", "sl_no", "serial_no", "serial_number"},
			ColYear:          {"year", "yr", "year_"},
			ColDate:          {"date", "proposal_date", "submission_date"},
			ColWODate:        {"wo_date", "work_order_date", "order_date"},
			ColNo:            {"no", "wo_no", "work_order_no", "order_no"},
			ColName:          {"name", "client_name", "company", "customer", "client"},
			ColIndustryType:  {"industry_type", "industry", "business_type", "sector"},
			ColDistrict:      {"district", "location", "city_district", "area"},
			ColScopeOfWork:   {"scope_of_work", "scope", "work_scope", "description"},
			ColType:          {"type", "proposal_type", "category"},
			ColSource:        {"source", "lead_source", "referral_source"},
			ColStatus:        {"status", "proposal_status", "current_status"},
			ColRefrenceNo:    {"refrence_no", "reference_no", "ref_no", "proposal_no"},
			ColContactPerson: {"contact_person", "contact", "person", "representative"},
			ColAmount:        {"amount", "proposal_amount", "value", "quoted_amount"},
			ColPresentStatus: {"present_status", "current_status", "latest_status", "status_update"},
		},
	}
}
