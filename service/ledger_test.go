package service

import (
	"errors"
	"testing"
)

func TestMovementSplit(t *testing.T) {
	tests := []struct {
		delta   int64
		wantIn  int64
		wantOut int64
	}{
		{delta: 400, wantIn: 400, wantOut: 0},
		{delta: -2500, wantIn: 0, wantOut: 2500},
		{delta: 0, wantIn: 0, wantOut: 0},
		{delta: 1, wantIn: 1, wantOut: 0},
		{delta: -1, wantIn: 0, wantOut: 1},
	}

	for _, tt := range tests {
		in, out := movementSplit(tt.delta)
		if in != tt.wantIn || out != tt.wantOut {
			t.Errorf("movementSplit(%d) = (%d, %d), want (%d, %d)", tt.delta, in, out, tt.wantIn, tt.wantOut)
		}
	}
}

func TestNextBalance(t *testing.T) {
	tests := []struct {
		name    string
		balance int64
		delta   int64
		want    int64
		wantErr error
	}{
		{name: "deposit", balance: 5000, delta: 400, want: 5400},
		{name: "withdrawal within balance", balance: 5000, delta: -2500, want: 2500},
		{name: "drain to zero", balance: 2500, delta: -2500, want: 0},
		{name: "overdraft rejected", balance: 2000, delta: -2500, wantErr: ErrInsufficientFunds},
		{name: "zero delta", balance: 777, delta: 0, want: 777},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := nextBalance(tt.balance, tt.delta)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("nextBalance(%d, %d) err = %v, want %v", tt.balance, tt.delta, err, tt.wantErr)
			}
			if tt.wantErr == nil && got != tt.want {
				t.Errorf("nextBalance(%d, %d) = %d, want %d", tt.balance, tt.delta, got, tt.want)
			}
		})
	}
}
