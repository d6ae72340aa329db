package accounting_test

import (
	"testing"

	"github.com/bahikhata/bahikhata_backend/internal/utils/accounting"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		code   string
		bucket accounting.Bucket
		ok     bool
	}{
		// Range boundaries, both ends of every recognized range
		{"1100", accounting.BucketCurrentAsset, true},
		{"1130", accounting.BucketCurrentAsset, true},
		{"1499", accounting.BucketCurrentAsset, true},
		{"1500", accounting.BucketFixedAsset, true},
		{"1899", accounting.BucketFixedAsset, true},
		{"1900", accounting.BucketInvestment, true},
		{"2100", accounting.BucketCurrentLiability, true},
		{"2499", accounting.BucketCurrentLiability, true},
		{"2500", accounting.BucketLongTermLoan, true},
		{"2599", accounting.BucketLongTermLoan, true},
		{"3100", accounting.BucketShareCapital, true},
		{"3300", accounting.BucketDrawings, true},
		{"4100", accounting.BucketSales, true},
		{"4199", accounting.BucketSales, true},
		{"4200", accounting.BucketOtherIncome, true},
		{"4999", accounting.BucketOtherIncome, true},
		{"5100", accounting.BucketCostOfSales, true},
		{"5199", accounting.BucketCostOfSales, true},
		{"5200", accounting.BucketOperatingExpense, true},
		{"5899", accounting.BucketOperatingExpense, true},
		{"5900", accounting.BucketOtherExpense, true},
		{"5999", accounting.BucketOtherExpense, true},

		// Gaps between ranges
		{"1099", "", false},
		{"1901", "", false},
		{"2099", "", false},
		{"2600", "", false},
		{"3200", "", false},
		{"3250", "", false},
		{"4099", "", false},
		{"5099", "", false},
		{"6000", "", false},

		// Non-numeric codes
		{"", "", false},
		{"ABC", "", false},
		{"11-00", "", false},
	}

	for _, tc := range tests {
		bucket, ok := accounting.Classify(tc.code)
		assert.Equal(t, tc.ok, ok, "code %q", tc.code)
		assert.Equal(t, tc.bucket, bucket, "code %q", tc.code)
	}
}

func TestInRange(t *testing.T) {
	// Half-open: lower bound in, upper bound out
	assert.True(t, accounting.InRange("1500", 1500, 1900))
	assert.True(t, accounting.InRange("1899", 1500, 1900))
	assert.False(t, accounting.InRange("1900", 1500, 1900))
	assert.False(t, accounting.InRange("1499", 1500, 1900))

	assert.False(t, accounting.InRange("", 1500, 1900))
	assert.False(t, accounting.InRange("15A0", 1500, 1900))
}
