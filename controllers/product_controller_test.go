package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/FuadJemal86/aquaErp-sub001/models"
)

func adjustStockRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/adjust-stock", func(c *gin.Context) {
		c.Set("user_id", uint(1))
		AdjustProductStock(c)
	})
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdjustProductStockReturnsNewQuantity(t *testing.T) {
	db := setupTestDB(t,
		&models.ProductCategory{}, &models.ProductType{},
		&models.ProductStock{}, &models.ProductTransaction{})

	cat := models.ProductCategory{Name: "Water", IsActive: true}
	if err := db.Create(&cat).Error; err != nil {
		t.Fatal(err)
	}
	pt := models.ProductType{CategoryID: cat.ID, Name: "Bottled Water 1L", Unit: "bottle", SellPrice: 20, BuyPrice: 10, IsActive: true}
	if err := db.Create(&pt).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Create(&models.ProductStock{ProductTypeID: pt.ID, Quantity: 10}).Error; err != nil {
		t.Fatal(err)
	}

	r := adjustStockRouter()
	w := postJSON(t, r, "/adjust-stock", fmt.Sprintf(`{"product_type_id": %d, "delta": 5, "note": "recount"}`, pt.ID))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			ProductTypeID uint  `json:"product_type_id"`
			Quantity      int64 `json:"quantity"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.Quantity != 15 {
		t.Errorf("response quantity = %d, want 15", resp.Data.Quantity)
	}
	if resp.Data.ProductTypeID != pt.ID {
		t.Errorf("response product_type_id = %d, want %d", resp.Data.ProductTypeID, pt.ID)
	}

	var ps models.ProductStock
	if err := db.Where("product_type_id = ?", pt.ID).First(&ps).Error; err != nil {
		t.Fatal(err)
	}
	if ps.Quantity != 15 {
		t.Errorf("stored quantity = %d, want 15", ps.Quantity)
	}

	var audit models.ProductTransaction
	if err := db.Where("product_type_id = ? AND ref_type = ?", pt.ID, "adjust").First(&audit).Error; err != nil {
		t.Fatal(err)
	}
	if audit.In != 5 || audit.Stock != 15 {
		t.Errorf("audit row in = %d stock = %d, want 5 and 15", audit.In, audit.Stock)
	}
}

func TestAdjustProductStockRejectsDrainBelowZero(t *testing.T) {
	db := setupTestDB(t,
		&models.ProductCategory{}, &models.ProductType{},
		&models.ProductStock{}, &models.ProductTransaction{})

	cat := models.ProductCategory{Name: "Water", IsActive: true}
	if err := db.Create(&cat).Error; err != nil {
		t.Fatal(err)
	}
	pt := models.ProductType{CategoryID: cat.ID, Name: "Jar 20L", Unit: "jar", SellPrice: 150, BuyPrice: 90, IsActive: true}
	if err := db.Create(&pt).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Create(&models.ProductStock{ProductTypeID: pt.ID, Quantity: 4}).Error; err != nil {
		t.Fatal(err)
	}

	r := adjustStockRouter()
	w := postJSON(t, r, "/adjust-stock", fmt.Sprintf(`{"product_type_id": %d, "delta": -100}`, pt.ID))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body = %s", w.Code, w.Body.String())
	}

	var ps models.ProductStock
	if err := db.Where("product_type_id = ?", pt.ID).First(&ps).Error; err != nil {
		t.Fatal(err)
	}
	if ps.Quantity != 4 {
		t.Errorf("quantity after refused drain = %d, want 4", ps.Quantity)
	}
}
