package service

import (
	"errors"
	"testing"
)

func TestRepaymentPlan(t *testing.T) {
	tests := []struct {
		name        string
		outstanding int64
		amount      int64
		wantOut     int64
		wantSettled bool
		wantErr     error
	}{
		{name: "partial payment", outstanding: 1000, amount: 400, wantOut: 600},
		{name: "final payment settles", outstanding: 600, amount: 600, wantOut: 0, wantSettled: true},
		{name: "full in one shot", outstanding: 1000, amount: 1000, wantOut: 0, wantSettled: true},
		{name: "overpayment rejected", outstanding: 600, amount: 700, wantErr: ErrOverpayment},
		{name: "one over", outstanding: 1000, amount: 1001, wantErr: ErrOverpayment},
		{name: "zero amount", outstanding: 1000, amount: 0, wantErr: ErrInvalidAmount},
		{name: "negative amount", outstanding: 1000, amount: -5, wantErr: ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotOut, gotSettled, err := repaymentPlan(tt.outstanding, tt.amount)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("repaymentPlan(%d, %d) err = %v, want %v", tt.outstanding, tt.amount, err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if gotOut != tt.wantOut {
				t.Errorf("outstanding = %d, want %d", gotOut, tt.wantOut)
			}
			if gotSettled != tt.wantSettled {
				t.Errorf("settled = %v, want %v", gotSettled, tt.wantSettled)
			}
		})
	}
}

// The repayment sequence from a drawer's point of view: 1000 on credit,
// 400 repaid into a 5000 drawer, then the remaining 600.
func TestRepaymentScenario(t *testing.T) {
	outstanding := int64(1000)
	cash := int64(5000)

	newOut, settled, err := repaymentPlan(outstanding, 400)
	if err != nil {
		t.Fatalf("first repayment: %v", err)
	}
	if newOut != 600 || settled {
		t.Fatalf("after 400: outstanding = %d settled = %v, want 600 false", newOut, settled)
	}
	cash, err = nextBalance(cash, +400)
	if err != nil || cash != 5400 {
		t.Fatalf("cash after 400 = %d (%v), want 5400", cash, err)
	}

	newOut, settled, err = repaymentPlan(newOut, 600)
	if err != nil {
		t.Fatalf("second repayment: %v", err)
	}
	if newOut != 0 || !settled {
		t.Fatalf("after 600: outstanding = %d settled = %v, want 0 true", newOut, settled)
	}
	cash, err = nextBalance(cash, +600)
	if err != nil || cash != 6000 {
		t.Fatalf("cash after 600 = %d (%v), want 6000", cash, err)
	}
}
