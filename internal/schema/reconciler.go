// Package schema binds the arbitrary, human-entered column labels of a
// fetched row-set onto the closed canonical column set each dataset
// processor operates on. Reconciliation happens once per row-set; all
// downstream logic then works over canonical names only.
package schema

import (
	"paydash/domain/ledger"
)

// RenameMap maps a cleaned raw column name to the canonical name that
// claimed it. Raw columns absent from the map pass through untouched and
// are simply ignored downstream.
type RenameMap map[string]string

// Reconcile scans each canonical name's alias list in declared order and
// binds the canonical name to the first raw column present in the input.
// A canonical name already present under its own exact form is never
// rebound, which makes reconciling an already-canonical header set the
// identity mapping.
func Reconcile(rawHeaders []string, table AliasTable) RenameMap {
	current := make(map[string]bool, len(rawHeaders))
	for _, h := range rawHeaders {
		current[CleanColumnName(h)] = true
	}

	renames := make(RenameMap)
	for _, canonical := range table.Canonical {
		if current[canonical] {
			continue
		}
		for _, alias := range table.Aliases[canonical] {
			if current[alias] {
				renames[alias] = canonical
				delete(current, alias)
				current[canonical] = true
				break
			}
		}
	}

	return renames
}

// Apply re-keys a raw row-set through the rename map. Headers are cleaned,
// renamed where the map claims them, and rows are rebuilt keyed by the
// final column names. The input row-set is left untouched.
func Apply(rs ledger.RowSet, renames RenameMap) ledger.RowSet {
	final := make([]string, len(rs.Headers))
	for i, h := range rs.Headers {
		name := CleanColumnName(h)
		if target, ok := renames[name]; ok {
			name = target
		}
		final[i] = name
	}

	rows := make([]ledger.RawRow, len(rs.Rows))
	for i, row := range rs.Rows {
		rekeyed := make(ledger.RawRow, len(final))
		for j, rawHeader := range rs.Headers {
			rekeyed[final[j]] = row[rawHeader]
		}
		rows[i] = rekeyed
	}

	return ledger.RowSet{Headers: final, Rows: rows}
}
