// Package model defines the core domain types shared across the application.
package model

import (
	"fmt"
	"time"
)

// TransactionType indicates whether a transaction records income or expense.
type TransactionType string

const (
	// TypeIncome marks money coming in.
	TypeIncome TransactionType = "INCOME"
	// TypeExpense marks money going out.
	TypeExpense TransactionType = "EXPENSE"
)

// ParseTransactionType converts a stored enum string back to its type.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case TypeIncome:
		return TypeIncome, nil
	case TypeExpense:
		return TypeExpense, nil
	default:
		return "", fmt.Errorf("invalid transaction type %q", s)
	}
}

// Valid reports whether the type is one of the two known values.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction is a single recorded money movement. Amount is always a
// positive whole number of the base currency (VND); the sign is derived
// from Type. Date is the calendar day the transaction is attributed to,
// distinct from CreatedAt which only breaks ties within a day.
type Transaction struct {
	CreatedAt  time.Time
	Note       string
	Type       TransactionType
	ID         int64
	Amount     int64
	CategoryID int64
	Date       Date
}
