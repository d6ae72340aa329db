package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalStatus indicates the state of a journal entry.
type JournalStatus string

const (
	Draft  JournalStatus = "DRAFT"
	Posted JournalStatus = "POSTED"
)

// JournalEntry represents a single, balanced financial event. Entries are
// immutable once posted.
type JournalEntry struct {
	EntryID     string        `json:"entryID"`   // Primary Key (e.g., UUID)
	ClientID    string        `json:"clientID"`  // FK -> clients.client_id
	EntryDate   time.Time     `json:"entryDate"` // Date the event occurred
	Description string        `json:"description"`
	Status      JournalStatus `json:"status"`
	AuditFields
}

// JournalLineItem is one leg of a journal entry. Debit and credit are
// independent accumulators; a source row may carry both.
type JournalLineItem struct {
	EntryID     string          `json:"entryID"`
	EntryDate   time.Time       `json:"entryDate"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}
