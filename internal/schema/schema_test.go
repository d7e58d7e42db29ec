package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paydash/domain/ledger"
)

func TestCleanColumnName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Unit Name", "unit_name"},
		{"  Work Order No  ", "work_order_no"},
		{"Order Amount (₹)", "order_amount_"},
		{"already_clean", "already_clean"},
		{"UPPER", "upper"},
		{"!!!", "col"},
		{"", "col"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, CleanColumnName(test.input), "input %q", test.input)
	}
}

func TestCleanHeaders(t *testing.T) {
	headers := CleanHeaders([]string{"Unit Name", "Date", "???"})
	assert.Equal(t, []string{"unit_name", "date", "col"}, headers)
}

func TestReconcileIdentityOnCanonicalHeaders(t *testing.T) {
	table := PaymentAliases()
	renames := Reconcile(table.Canonical, table)
	assert.Empty(t, renames, "canonical headers must reconcile to the identity mapping")
}

func TestReconcileBindsFirstPresentAlias(t *testing.T) {
	table := PaymentAliases()
	renames := Reconcile([]string{"Unit", "WO No", "Paid", "Final Amt"}, table)

	assert.Equal(t, ColUnitName, renames["unit"])
	assert.Equal(t, ColWorkOrderNo, renames["wo_no"])
	assert.Equal(t, ColPaymentReceived, renames["paid"])
	assert.Equal(t, ColFinalAmount, renames["final_amt"])
}

func TestReconcileEarlierCanonicalWinsContestedAlias(t *testing.T) {
	// "amount" is an alias of order_amount and appears ahead of
	// final_amount in the declared order, so order_amount claims it.
	table := PaymentAliases()
	renames := Reconcile([]string{"Amount"}, table)
	assert.Equal(t, ColOrderAmount, renames["amount"])
}

func TestReconcileClaimedAliasNotReused(t *testing.T) {
	// "current_status" is an alias for both status and present_status in
	// the proposal table; once status claims it, present_status cannot.
	table := ProposalAliases()
	renames := Reconcile([]string{"Current Status"}, table)
	assert.Equal(t, ColStatus, renames["current_status"])
	assert.Len(t, renames, 1)
}

func TestReconcileDeclaredAliasOrderWins(t *testing.T) {
	table := PaymentAliases()

	// With the canonical name itself present, competing aliases stay
	// unbound entirely.
	renames := Reconcile([]string{"paid", "payment_received"}, table)
	assert.Empty(t, renames)

	// With only aliases present, the one earliest in the declared list
	// claims the canonical name.
	renames = Reconcile([]string{"amount_received", "paid"}, table)
	assert.Equal(t, ColPaymentReceived, renames["paid"])
	_, bound := renames["amount_received"]
	assert.False(t, bound)
}

func TestReconcileCanonicalPresenceBlocksRebinding(t *testing.T) {
	// With work_status present verbatim, its "status" alias stays free
	// for another canonical to claim later in the declared order.
	table := PaymentAliases()
	renames := Reconcile([]string{"Work Status", "Status"}, table)
	_, claimed := renames["work_status"]
	assert.False(t, claimed, "exact canonical header must not be rebound")
}

func TestApplyRekeysRows(t *testing.T) {
	rs := ledger.RowSet{
		Headers: []string{"Unit", "Final Amt"},
		Rows: []ledger.RawRow{
			{"Unit": "Unit A", "Final Amt": "100"},
		},
	}

	table := PaymentAliases()
	renames := Reconcile(rs.Headers, table)
	mapped := Apply(rs, renames)

	require.Len(t, mapped.Rows, 1)
	assert.Equal(t, []string{ColUnitName, ColFinalAmount}, mapped.Headers)
	assert.Equal(t, "Unit A", mapped.Rows[0][ColUnitName])
	assert.Equal(t, "100", mapped.Rows[0][ColFinalAmount])
}

func TestApplyLeavesUnclaimedColumnsAlone(t *testing.T) {
	rs := ledger.RowSet{
		Headers: []string{"Unit Name", "Remarks"},
		Rows: []ledger.RawRow{
			{"Unit Name": "Unit A", "Remarks": "urgent"},
		},
	}

	mapped := Apply(rs, Reconcile(rs.Headers, PaymentAliases()))
	assert.Equal(t, "urgent", mapped.Rows[0]["remarks"])
}
