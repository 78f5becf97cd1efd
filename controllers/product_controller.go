package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/FuadJemal86/aquaErp-sub001/config"
	"github.com/FuadJemal86/aquaErp-sub001/models"
	"github.com/FuadJemal86/aquaErp-sub001/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ===== categories =====

type CategoryInput struct {
	Name string `json:"name" binding:"required"`
}

func CreateProductCategory(c *gin.Context) {
	var in CategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid payload", err)
		return
	}

	var exists models.ProductCategory
	if err := config.DB.Where("name = ?", in.Name).First(&exists).Error; err == nil {
		utils.Error(c, http.StatusBadRequest, "Category name already taken", nil)
		return
	}

	cat := models.ProductCategory{Name: in.Name, IsActive: true}
	if err := config.DB.Create(&cat).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Could not create category", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Category created", "data": cat})
}

func GetAllProductCategory(c *gin.Context) {
	var cats []models.ProductCategory
	if err := config.DB.Order("id ASC").Find(&cats).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Could not load categories", err)
		return
	}
	utils.Success(c, "Categories loaded", cats)
}

// ===== product types =====

type ProductTypeInput struct {
	CategoryID uint   `json:"category_id" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Unit       string `json:"unit"`
	SellPrice  int64  `json:"sell_price" binding:"required,gt=0"`
	BuyPrice   int64  `json:"buy_price" binding:"required,gt=0"`
}

// CreateProductType also seeds the product's stock row at zero so every
// movement has a row to lock.
func CreateProductType(c *gin.Context) {
	var in ProductTypeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid payload", err)
		return
	}

	var cnt int64
	if err := config.DB.Model(&models.ProductCategory{}).Where("id = ?", in.CategoryID).Count(&cnt).Error; err != nil || cnt == 0 {
		utils.Error(c, http.StatusBadRequest, "Category not found", nil)
		return
	}

	pt := models.ProductType{
		CategoryID: in.CategoryID,
		Name:       in.Name,
		Unit:       in.Unit,
		SellPrice:  in.SellPrice,
		BuyPrice:   in.BuyPrice,
		IsActive:   true,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&pt).Error; err != nil {
			return err
		}
		return tx.Create(&models.ProductStock{ProductTypeID: pt.ID, Quantity: 0}).Error
	})
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Could not create product", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Product created", "data": pt})
}

func GetAllProductType(c *gin.Context) {
	var types []models.ProductType
	q := config.DB.Preload("Category").Order("id ASC")
	if name := c.Query("name"); name != "" {
		q = q.Where("name ILIKE ?", "%"+name+"%")
	}
	if err := q.Find(&types).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Could not load products", err)
		return
	}
	utils.Success(c, "Products loaded", types)
}

type ProductTypeUpdateInput struct {
	Name      *string `json:"name,omitempty"`
	Unit      *string `json:"unit,omitempty"`
	SellPrice *int64  `json:"sell_price,omitempty"`
	BuyPrice  *int64  `json:"buy_price,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

func UpdateProductType(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid id", nil)
		return
	}

	var pt models.ProductType
	if err := config.DB.First(&pt, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Product not found", nil)
		return
	}

	var in ProductTypeUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid payload", err)
		return
	}

	updates := map[string]any{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Unit != nil {
		updates["unit"] = *in.Unit
	}
	if in.SellPrice != nil {
		updates["sell_price"] = *in.SellPrice
	}
	if in.BuyPrice != nil {
		updates["buy_price"] = *in.BuyPrice
	}
	if in.IsActive != nil {
		updates["is_active"] = *in.IsActive
	}
	if len(updates) == 0 {
		utils.Error(c, http.StatusBadRequest, "Nothing to update", nil)
		return
	}

	if err := config.DB.Model(&pt).Updates(updates).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Could not update product", err)
		return
	}
	utils.Success(c, "Product updated", pt)
}

// ===== stock =====

func GetProductStock(c *gin.Context) {
	var rows []models.ProductStock
	if err := config.DB.Preload("ProductType").Order("id ASC").Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Could not load stock", err)
		return
	}
	utils.Success(c, "Stock loaded", rows)
}

type StockAdjustInput struct {
	ProductTypeID uint   `json:"product_type_id" binding:"required"`
	Delta         int64  `json:"delta" binding:"required"` // + in, - out
	Note          string `json:"note"`
}

// AdjustProductStock records a manual correction: locked read-modify-write
// on the stock row plus one ProductTransaction audit row.
func AdjustProductStock(c *gin.Context) {
	actorID, err := currentUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	var in StockAdjustInput
	if err := c.ShouldBindJSON(&in); err != nil || in.Delta == 0 {
		utils.Error(c, http.StatusBadRequest, "Invalid payload", nil)
		return
	}

	var newQty int64
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		qty, err := applyStockDelta(tx, in.ProductTypeID, in.Delta, "adjust", in.ProductTypeID, actorID, in.Note, time.Now().UTC())
		if err != nil {
			return err
		}
		newQty = qty
		return nil
	})
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Could not adjust stock", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Stock adjusted",
		"data": gin.H{
			"product_type_id": in.ProductTypeID,
			"quantity":        newQty,
		},
	})
}

// applyStockDelta is the stock twin of the ledger movement primitive:
// lock the ProductStock row, shift quantity, append a ProductTransaction
// with the resulting snapshot. Negative quantities are rejected.
func applyStockDelta(tx *gorm.DB, productTypeID uint, delta int64, refType string, refID uint, actorID uint, note string, txDate time.Time) (int64, error) {
	var ps models.ProductStock
	if err := tx.Clauses(clauseUpdateLock()).
		Where("product_type_id = ?", productTypeID).
		First(&ps).Error; err != nil {
		return 0, err
	}

	newQty := ps.Quantity + delta
	if newQty < 0 {
		return 0, fmt.Errorf("insufficient stock for product %d (have %d, need %d)", productTypeID, ps.Quantity, -delta)
	}

	if err := tx.Model(&models.ProductStock{}).
		Where("id = ?", ps.ID).
		Update("quantity", newQty).Error; err != nil {
		return 0, err
	}

	in, out := int64(0), int64(0)
	if delta >= 0 {
		in = delta
	} else {
		out = -delta
	}
	row := models.ProductTransaction{
		ProductTypeID: productTypeID,
		In:            in,
		Out:           out,
		Stock:         newQty,
		RefType:       refType,
		RefID:         refID,
		ActorID:       actorID,
		Note:          note,
		TxDate:        txDate,
	}
	if err := tx.Create(&row).Error; err != nil {
		return 0, err
	}
	return newQty, nil
}
