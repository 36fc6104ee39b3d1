package loan

import (
	"testing"
	"time"
)

func TestTotalRepayment_FloorArithmetic(t *testing.T) {
	tests := []struct {
		amount uint64
		rate   uint64
		want   uint64
	}{
		{amount: 1000, rate: 5, want: 1050},
		{amount: 999, rate: 5, want: 1048}, // 999*5/100 floors to 49
		{amount: 19, rate: 5, want: 19},    // interest floors to zero
		{amount: 20, rate: 5, want: 21},
		{amount: 1, rate: 5, want: 1},
	}
	for _, tc := range tests {
		l := &Loan{Amount: tc.amount, InterestRatePct: tc.rate}
		if got := l.TotalRepayment(); got != tc.want {
			t.Errorf("TotalRepayment(%d @ %d%%) = %d, want %d", tc.amount, tc.rate, got, tc.want)
		}
	}
}

func TestStatus_Terminal(t *testing.T) {
	if StatusRequested.Terminal() {
		t.Error("requested must not be terminal")
	}
	if !StatusRepaid.Terminal() || !StatusDefaulted.Terminal() {
		t.Error("repaid and defaulted are terminal")
	}
}

func TestDueAt(t *testing.T) {
	issued := time.Date(2026, 1, 2, 3, 0, 0, 0, time.UTC)
	l := &Loan{IssuedAt: issued, DurationSecs: 3600}
	if got := l.DueAt(); !got.Equal(issued.Add(time.Hour)) {
		t.Fatalf("DueAt = %v", got)
	}
}
