// Package model defines the core domain types shared across the application.
package model

import (
	"strings"
	"time"
)

// TransactionType classifies a ledger entry. The values mirror the
// "Revenu/dépense" column of the source spreadsheet, so they stay French.
type TransactionType string

const (
	// TypeRevenue represents income ("Revenu").
	TypeRevenue TransactionType = "Revenu"
	// TypeExpense represents spending ("Dépense").
	TypeExpense TransactionType = "Dépense"
	// TypeSavings represents outflows to savings or investments ("Sorties").
	TypeSavings TransactionType = "Sorties"
)

// categorySeparator splits a description into its category key and the rest.
const categorySeparator = " - "

// Transaction represents a single ledger entry loaded from a spreadsheet
// or bank statement. Amount is always a non-negative magnitude; its
// direction is given by Type. Transactions are immutable after ingestion.
type Transaction struct {
	Date        time.Time
	Description string
	Account     string
	Type        TransactionType
	Amount      float64
}

// CategoryKey returns the grouping key for the transaction: the part of
// the description before the first " - " separator, or the whole
// description when no separator is present.
func (t Transaction) CategoryKey() string {
	if idx := strings.Index(t.Description, categorySeparator); idx >= 0 {
		return t.Description[:idx]
	}
	return t.Description
}

// Budget maps a trimmed category key to its annual budget amount.
// Keys need not match every expense category seen in transactions.
type Budget map[string]float64
