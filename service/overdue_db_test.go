package service

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/FuadJemal86/aquaErp-sub001/models"
)

func seedSalesCredit(t *testing.T, db *gorm.DB, name string, amount int64, returnDate time.Time, status models.CreditStatus) models.SalesCredit {
	t.Helper()
	cr := models.SalesCredit{
		SalesTransactionID: 1,
		CustomerID:         1,
		CustomerName:       name,
		TotalMoney:         amount,
		IssuedDate:         returnDate.AddDate(0, 0, -30),
		ReturnDate:         returnDate,
		Status:             status,
		IsActive:           true,
	}
	if err := db.Create(&cr).Error; err != nil {
		t.Fatalf("seed sales credit: %v", err)
	}
	return cr
}

func seedBuyCredit(t *testing.T, db *gorm.DB, name string, amount int64, returnDate time.Time, status models.CreditStatus) models.BuyCredit {
	t.Helper()
	cr := models.BuyCredit{
		BuyTransactionID: 1,
		SupplierID:       1,
		SupplierName:     name,
		TotalMoney:       amount,
		IssuedDate:       returnDate.AddDate(0, 0, -30),
		ReturnDate:       returnDate,
		Status:           status,
		IsActive:         true,
	}
	if err := db.Create(&cr).Error; err != nil {
		t.Fatalf("seed buy credit: %v", err)
	}
	return cr
}

func TestSweepOverdueFlagsPastDueCredits(t *testing.T) {
	s, db := newTestService(t)
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	nextWeek := now.AddDate(0, 0, 7)

	due := seedSalesCredit(t, db, "Abebe Kebede", 600, yesterday, models.CreditAccepted)
	notDue := seedSalesCredit(t, db, "Sara Bekele", 900, nextWeek, models.CreditAccepted)
	settled := seedSalesCredit(t, db, "Paid Up", 0, yesterday, models.CreditPaid)
	if err := db.Model(&models.SalesCredit{}).Where("id = ?", settled.ID).
		Update("is_active", false).Error; err != nil {
		t.Fatal(err)
	}
	dueBuy := seedBuyCredit(t, db, "Awash Supplies", 1500, yesterday, models.CreditAccepted)

	if err := s.SweepOverdue(context.Background(), now); err != nil {
		t.Fatalf("SweepOverdue: %v", err)
	}

	wantStatus := func(id uint, want models.CreditStatus) {
		t.Helper()
		var got models.SalesCredit
		if err := db.First(&got, id).Error; err != nil {
			t.Fatal(err)
		}
		if got.Status != want {
			t.Errorf("sales credit %d status = %s, want %s", id, got.Status, want)
		}
	}
	wantStatus(due.ID, models.CreditOverdue)
	wantStatus(notDue.ID, models.CreditAccepted)
	wantStatus(settled.ID, models.CreditPaid)

	var gotBuy models.BuyCredit
	if err := db.First(&gotBuy, dueBuy.ID).Error; err != nil {
		t.Fatal(err)
	}
	if gotBuy.Status != models.CreditOverdue {
		t.Errorf("buy credit status = %s, want %s", gotBuy.Status, models.CreditOverdue)
	}

	sales, buy, err := s.OverdueMessages(context.Background())
	if err != nil {
		t.Fatalf("OverdueMessages: %v", err)
	}
	if len(sales) != 1 || sales[0] != "Abebe Kebede owes 600 on an overdue sales credit" {
		t.Errorf("sales messages = %v", sales)
	}
	if len(buy) != 1 || buy[0] != "Awash Supplies is owed 1500 on an overdue purchase credit" {
		t.Errorf("buy messages = %v", buy)
	}
}

// A second sweep over the same rows must match nothing: already-OVERDUE
// credits are excluded by the predicate, so their rows are not rewritten.
func TestSweepOverdueIdempotent(t *testing.T) {
	s, db := newTestService(t)
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)

	sc := seedSalesCredit(t, db, "Abebe Kebede", 600, yesterday, models.CreditAccepted)
	bc := seedBuyCredit(t, db, "Awash Supplies", 1500, yesterday, models.CreditAccepted)

	if err := s.SweepOverdue(context.Background(), now); err != nil {
		t.Fatalf("first sweep: %v", err)
	}

	var after1 models.SalesCredit
	if err := db.First(&after1, sc.ID).Error; err != nil {
		t.Fatal(err)
	}
	var afterBuy1 models.BuyCredit
	if err := db.First(&afterBuy1, bc.ID).Error; err != nil {
		t.Fatal(err)
	}

	if err := s.SweepOverdue(context.Background(), now); err != nil {
		t.Fatalf("second sweep: %v", err)
	}

	var after2 models.SalesCredit
	if err := db.First(&after2, sc.ID).Error; err != nil {
		t.Fatal(err)
	}
	var afterBuy2 models.BuyCredit
	if err := db.First(&afterBuy2, bc.ID).Error; err != nil {
		t.Fatal(err)
	}

	if after2.Status != models.CreditOverdue || afterBuy2.Status != models.CreditOverdue {
		t.Fatalf("statuses after second sweep = %s / %s, want OVERDUE / OVERDUE",
			after2.Status, afterBuy2.Status)
	}
	// untouched rows keep their update timestamp from the first sweep
	if !after2.UpdatedAt.Equal(after1.UpdatedAt) {
		t.Errorf("sales credit rewritten by second sweep: %v != %v", after2.UpdatedAt, after1.UpdatedAt)
	}
	if !afterBuy2.UpdatedAt.Equal(afterBuy1.UpdatedAt) {
		t.Errorf("buy credit rewritten by second sweep: %v != %v", afterBuy2.UpdatedAt, afterBuy1.UpdatedAt)
	}

	sales, buy, err := s.OverdueMessages(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(sales) != 1 || len(buy) != 1 {
		t.Errorf("messages after second sweep = %d sales, %d buy, want 1 and 1", len(sales), len(buy))
	}
}
