package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/bahikhata/bahikhata_backend/internal/core/domain"
	portsrepo "github.com/bahikhata/bahikhata_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ledgerRepository struct {
	BaseRepository
}

func newLedgerRepository(db *pgxpool.Pool) portsrepo.LedgerRepository {
	return &ledgerRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.LedgerRepository = (*ledgerRepository)(nil)

// GetAggregatedTrialBalance retrieves per-account debit/credit totals over all
// posted entries up to and including asOf. Account-type classification is
// owned by this aggregation, not by the report derivations.
func (r *ledgerRepository) GetAggregatedTrialBalance(ctx context.Context, clientID string, asOf time.Time) ([]domain.TrialBalanceRow, error) {
	query := `
		SELECT
			li.account_code,
			li.account_name,
			CASE
				WHEN li.account_code ~ '^1' THEN 'ASSET'
				WHEN li.account_code ~ '^2' THEN 'LIABILITY'
				WHEN li.account_code ~ '^3' THEN 'EQUITY'
				WHEN li.account_code ~ '^4' THEN 'INCOME'
				ELSE 'EXPENSE'
			END AS account_type,
			COALESCE(SUM(li.debit), 0) AS debit_total,
			COALESCE(SUM(li.credit), 0) AS credit_total
		FROM journal_line_items li
		JOIN journal_entries je ON li.entry_id = je.entry_id
		WHERE je.client_id = $1
			AND je.entry_date <= $2
			AND je.status = 'POSTED'
		GROUP BY li.account_code, li.account_name
		ORDER BY li.account_code
	`

	rows, err := r.Pool.Query(ctx, query, clientID, asOf)
	if err != nil {
		return nil, fmt.Errorf("error querying trial balance data: %w", err)
	}
	defer rows.Close()

	result := []domain.TrialBalanceRow{}
	for rows.Next() {
		var row domain.TrialBalanceRow
		var accountType string

		if err := rows.Scan(
			&row.AccountCode,
			&row.AccountName,
			&accountType,
			&row.DebitTotal,
			&row.CreditTotal,
		); err != nil {
			return nil, fmt.Errorf("error scanning trial balance row: %w", err)
		}

		row.AccountType = domain.AccountType(accountType)
		row.Balance = row.DebitTotal.Sub(row.CreditTotal)
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trial balance rows: %w", err)
	}

	return result, nil
}

// GetPostedLineItems retrieves the line items of posted journal entries dated
// within [from, to]. A zero from means no lower bound.
func (r *ledgerRepository) GetPostedLineItems(ctx context.Context, clientID string, from, to time.Time) ([]domain.JournalLineItem, error) {
	query := `
		SELECT
			li.entry_id,
			je.entry_date,
			li.account_code,
			li.account_name,
			COALESCE(li.debit, 0),
			COALESCE(li.credit, 0)
		FROM journal_line_items li
		JOIN journal_entries je ON li.entry_id = je.entry_id
		WHERE je.client_id = $1
			AND je.entry_date >= $2
			AND je.entry_date <= $3
			AND je.status = 'POSTED'
		ORDER BY je.entry_date, li.entry_id, li.line_number
	`

	rows, err := r.Pool.Query(ctx, query, clientID, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying journal line items: %w", err)
	}
	defer rows.Close()

	result := []domain.JournalLineItem{}
	for rows.Next() {
		var item domain.JournalLineItem
		if err := rows.Scan(
			&item.EntryID,
			&item.EntryDate,
			&item.AccountCode,
			&item.AccountName,
			&item.Debit,
			&item.Credit,
		); err != nil {
			return nil, fmt.Errorf("error scanning journal line item: %w", err)
		}
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal line items: %w", err)
	}

	return result, nil
}
