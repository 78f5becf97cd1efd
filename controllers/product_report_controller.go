package controllers

import (
	"net/http"
	"strings"

	"github.com/FuadJemal86/aquaErp-sub001/config"
	"github.com/FuadJemal86/aquaErp-sub001/models"
	"github.com/FuadJemal86/aquaErp-sub001/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type productTxSummary struct {
	Count    int64 `json:"count"`
	TotalIn  int64 `json:"total_in"`
	TotalOut int64 `json:"total_out"`
	Net      int64 `json:"net"`
}

// GetProductTransaction lists stock movements with quantity rollups,
// filterable by product name and date range.
func GetProductTransaction(c *gin.Context) {
	page := getIntQ(c, "page", 1)
	limit := getIntQ(c, "limit", 25)

	q := config.DB.Model(&models.ProductTransaction{}).
		Joins("JOIN product_types ON product_types.id = product_transactions.product_type_id")

	if pid := strings.TrimSpace(c.Query("productTypeId")); pid != "" {
		q = q.Where("product_transactions.product_type_id = ?", pid)
	}
	if name := strings.TrimSpace(c.Query("productName")); name != "" {
		q = q.Where("product_types.name ILIKE ?", "%"+name+"%")
	}
	if rt := strings.TrimSpace(c.Query("refType")); rt != "" {
		q = q.Where("product_transactions.ref_type = ?", rt)
	}
	q = applyDateRange(q, "product_transactions.tx_date", getDateQ(c, "startDate"), getDateQ(c, "endDate"))

	var rows []models.ProductTransaction
	if err := paginate(q.Session(&gorm.Session{}).Order("product_transactions.id DESC"), page, limit).
		Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Could not load product transactions", err)
		return
	}

	var all []models.ProductTransaction
	if err := q.Session(&gorm.Session{}).Limit(summaryCap).Find(&all).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Could not load summary", err)
		return
	}
	sum := productTxSummary{Count: int64(len(all))}
	for _, r := range all {
		sum.TotalIn += r.In
		sum.TotalOut += r.Out
	}
	sum.Net = sum.TotalIn - sum.TotalOut

	c.JSON(http.StatusOK, gin.H{
		"data":    rows,
		"summary": sum,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
		},
	})
}
