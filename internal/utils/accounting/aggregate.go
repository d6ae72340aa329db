package accounting

import (
	"github.com/bahikhata/bahikhata_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountTotal carries the accumulated debit and credit for one account.
type AccountTotal struct {
	AccountCode string
	AccountName string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
}

// Balance returns credit minus debit for the account.
func (t AccountTotal) Balance() decimal.Decimal {
	return t.Credit.Sub(t.Debit)
}

// AccumulateByAccount folds journal line items into per-account debit/credit
// totals. Accounts are keyed by code, falling back to the account name when
// the code is absent. Results keep first-seen order so repeated runs over the
// same input produce identical output.
func AccumulateByAccount(items []domain.JournalLineItem) []AccountTotal {
	index := make(map[string]int, len(items))
	totals := make([]AccountTotal, 0, len(items))

	for _, item := range items {
		key := item.AccountCode
		if key == "" {
			key = item.AccountName
		}

		i, seen := index[key]
		if !seen {
			i = len(totals)
			index[key] = i
			totals = append(totals, AccountTotal{
				AccountCode: item.AccountCode,
				AccountName: item.AccountName,
				Debit:       decimal.Zero,
				Credit:      decimal.Zero,
			})
		}

		totals[i].Debit = totals[i].Debit.Add(item.Debit)
		totals[i].Credit = totals[i].Credit.Add(item.Credit)
	}

	return totals
}
