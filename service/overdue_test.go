package service

import (
	"testing"
	"time"
)

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("EAT", 3*60*60)
	in := time.Date(2026, 3, 14, 17, 45, 12, 999, loc)
	got := startOfDay(in)
	want := time.Date(2026, 3, 14, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Fatalf("startOfDay(%v) = %v, want %v", in, got, want)
	}
	if got.Location() != loc {
		t.Fatalf("startOfDay changed location to %v", got.Location())
	}
}

func TestIsPastDue(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	cutoff := startOfDay(now)

	tests := []struct {
		name       string
		returnDate time.Time
		want       bool
	}{
		{name: "yesterday", returnDate: now.AddDate(0, 0, -1), want: true},
		{name: "last week", returnDate: now.AddDate(0, 0, -7), want: true},
		{name: "today at midnight", returnDate: cutoff, want: false},
		{name: "later today", returnDate: now, want: false},
		{name: "tomorrow", returnDate: now.AddDate(0, 0, 1), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isPastDue(tt.returnDate, cutoff); got != tt.want {
				t.Errorf("isPastDue(%v) = %v, want %v", tt.returnDate, got, tt.want)
			}
		})
	}
}

func TestOverdueMessages(t *testing.T) {
	if got, want := salesOverdueMessage("Abebe Kebede", 600), "Abebe Kebede owes 600 on an overdue sales credit"; got != want {
		t.Errorf("salesOverdueMessage = %q, want %q", got, want)
	}
	if got, want := buyOverdueMessage("Awash Supplies", 1500), "Awash Supplies is owed 1500 on an overdue purchase credit"; got != want {
		t.Errorf("buyOverdueMessage = %q, want %q", got, want)
	}
}
