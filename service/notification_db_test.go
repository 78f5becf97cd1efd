package service

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/FuadJemal86/aquaErp-sub001/models"
)

func TestNotificationsEmptyStore(t *testing.T) {
	s, _ := newTestService(t)

	msgs, err := s.Notifications(context.Background())
	if err != nil {
		t.Fatalf("Notifications: %v", err)
	}
	if !reflect.DeepEqual(msgs, []string{NoAlertsMessage}) {
		t.Errorf("Notifications = %v, want [%q]", msgs, NoAlertsMessage)
	}
}

// The full read path: a low-stock product and credits due yesterday must
// produce alerts in fixed order, with the sweep run as part of the call.
func TestNotificationsCombinesStockAndOverdue(t *testing.T) {
	s, db := newTestService(t)

	cat := models.ProductCategory{Name: "Water", IsActive: true}
	if err := db.Create(&cat).Error; err != nil {
		t.Fatal(err)
	}
	low := models.ProductType{CategoryID: cat.ID, Name: "Bottled Water 1L", Unit: "bottle", SellPrice: 20, BuyPrice: 10, IsActive: true}
	ok := models.ProductType{CategoryID: cat.ID, Name: "Jar 20L", Unit: "jar", SellPrice: 150, BuyPrice: 90, IsActive: true}
	for _, pt := range []*models.ProductType{&low, &ok} {
		if err := db.Create(pt).Error; err != nil {
			t.Fatal(err)
		}
	}
	if err := db.Create(&models.ProductStock{ProductTypeID: low.ID, Quantity: 3}).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Create(&models.ProductStock{ProductTypeID: ok.ID, Quantity: 50}).Error; err != nil {
		t.Fatal(err)
	}

	// still ACCEPTED when seeded; the sweep inside Notifications flags them
	twoDaysAgo := time.Now().AddDate(0, 0, -2)
	seedSalesCredit(t, db, "Abebe Kebede", 600, twoDaysAgo, models.CreditAccepted)
	seedBuyCredit(t, db, "Awash Supplies", 1500, twoDaysAgo, models.CreditAccepted)

	msgs, err := s.Notifications(context.Background())
	if err != nil {
		t.Fatalf("Notifications: %v", err)
	}

	want := []string{
		"Bottled Water 1L is low on stock: 3 left",
		"Abebe Kebede owes 600 on an overdue sales credit",
		"Awash Supplies is owed 1500 on an overdue purchase credit",
	}
	if !reflect.DeepEqual(msgs, want) {
		t.Errorf("Notifications = %v, want %v", msgs, want)
	}
}
