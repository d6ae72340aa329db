package accounting

import "strconv"

// Bucket is the semantic classification of an account code. The code ranges
// are fixed constants of the chart of accounts, not configurable.
type Bucket string

const (
	BucketCurrentAsset     Bucket = "CURRENT_ASSET"
	BucketFixedAsset       Bucket = "FIXED_ASSET"
	BucketInvestment       Bucket = "INVESTMENT"
	BucketCurrentLiability Bucket = "CURRENT_LIABILITY"
	BucketLongTermLoan     Bucket = "LONG_TERM_LOAN"
	BucketShareCapital     Bucket = "SHARE_CAPITAL"
	BucketDrawings         Bucket = "DRAWINGS"
	BucketSales            Bucket = "SALES"
	BucketOtherIncome      Bucket = "OTHER_INCOME"
	BucketCostOfSales      Bucket = "COST_OF_SALES"
	BucketOperatingExpense Bucket = "OPERATING_EXPENSE"
	BucketOtherExpense     Bucket = "OTHER_EXPENSE"
)

// Well-known single account codes referenced by the cash flow derivation.
const (
	CodeCashInHand         = "1110"
	CodeBankAccounts       = "1120"
	CodeAccountsReceivable = "1130"
	CodeInventory          = "1140"
	CodeInvestments        = "1900"
	CodeAccountsPayable    = "2110"
	CodeShareCapital       = "3100"
	CodeDrawings           = "3300"
	CodeDepreciation       = "5320"
	CodeCurrentYearProfit  = "3250" // Synthetic, never persisted
)

// Classify maps an account code to its bucket. Codes outside every recognized
// range (including non-numeric codes) return ok=false and are excluded from
// derived reports.
func Classify(code string) (Bucket, bool) {
	n, err := strconv.Atoi(code)
	if err != nil {
		return "", false
	}

	switch {
	case n >= 1100 && n <= 1499:
		return BucketCurrentAsset, true
	case n >= 1500 && n <= 1899:
		return BucketFixedAsset, true
	case n == 1900:
		return BucketInvestment, true
	case n >= 2100 && n <= 2499:
		return BucketCurrentLiability, true
	case n >= 2500 && n <= 2599:
		return BucketLongTermLoan, true
	case n == 3100:
		return BucketShareCapital, true
	case n == 3300:
		return BucketDrawings, true
	case n >= 4100 && n <= 4199:
		return BucketSales, true
	case n >= 4200 && n <= 4999:
		return BucketOtherIncome, true
	case n >= 5100 && n <= 5199:
		return BucketCostOfSales, true
	case n >= 5200 && n <= 5899:
		return BucketOperatingExpense, true
	case n >= 5900 && n <= 5999:
		return BucketOtherExpense, true
	default:
		return "", false
	}
}

// InRange reports whether a numeric account code falls in the half-open
// interval [lo, hi). Non-numeric codes are never in range.
func InRange(code string, lo, hi int) bool {
	n, err := strconv.Atoi(code)
	if err != nil {
		return false
	}
	return n >= lo && n < hi
}
