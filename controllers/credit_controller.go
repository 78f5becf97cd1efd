package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/FuadJemal86/aquaErp-sub001/config"
	"github.com/FuadJemal86/aquaErp-sub001/models"
	"github.com/FuadJemal86/aquaErp-sub001/service"
	"github.com/FuadJemal86/aquaErp-sub001/utils"

	"github.com/gin-gonic/gin"
)

// RepayInput arrives as JSON or multipart form (the latter when a
// receipt image rides along).
type RepayInput struct {
	CreditID      uint   `form:"credit_id" json:"credit_id" binding:"required"`
	Amount        int64  `form:"amount" json:"amount" binding:"required"`
	PaymentMethod string `form:"payment_method" json:"payment_method" binding:"required"` // CASH / BANK
	LedgerID      uint   `form:"ledger_id" json:"ledger_id"`                              // bank ledger, required for BANK
	Note          string `form:"note" json:"note"`
}

func creditErrStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrCreditNotFound),
		errors.Is(err, service.ErrLedgerNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrOverpayment),
		errors.Is(err, service.ErrCreditSettled),
		errors.Is(err, service.ErrInsufficientFunds):
		return http.StatusConflict
	case errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrInvalidPayMethod),
		errors.Is(err, service.ErrLedgerTypeMismatch),
		errors.Is(err, service.ErrLedgerInactive):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func bindRepay(c *gin.Context) (*service.RepayCommand, bool) {
	actorID, err := currentUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, "Unauthorized", nil)
		return nil, false
	}

	var in RepayInput
	if err := c.ShouldBind(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid payload", err)
		return nil, false
	}

	receiptPath, err := utils.SaveUpload(c, "receipt", "receipts")
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Could not store receipt", err)
		return nil, false
	}

	return &service.RepayCommand{
		CreditID:    in.CreditID,
		Amount:      in.Amount,
		Method:      models.PaymentMethod(in.PaymentMethod),
		LedgerID:    in.LedgerID,
		ActorID:     actorID,
		Note:        in.Note,
		ReceiptPath: receiptPath,
	}, true
}

// SalesCreditRepay applies a customer payment against a sales credit.
func SalesCreditRepay(c *gin.Context) {
	cmd, ok := bindRepay(c)
	if !ok {
		return
	}

	res, err := engine.RepaySalesCredit(c.Request.Context(), *cmd)
	if err != nil {
		utils.Error(c, creditErrStatus(err), "Could not repay sales credit", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Repayment recorded", "data": res})
}

// BuyCreditRepay pays down what we owe a supplier.
func BuyCreditRepay(c *gin.Context) {
	cmd, ok := bindRepay(c)
	if !ok {
		return
	}

	res, err := engine.RepayBuyCredit(c.Request.Context(), *cmd)
	if err != nil {
		utils.Error(c, creditErrStatus(err), "Could not repay buy credit", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Repayment recorded", "data": res})
}

// ===== listings =====

func GetSalesCredit(c *gin.Context) {
	page := getIntQ(c, "page", 1)
	limit := getIntQ(c, "limit", 25)

	q := config.DB.Model(&models.SalesCredit{}).Order("return_date ASC, id DESC")
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		q = q.Where("status = ?", st)
	}
	if name := strings.TrimSpace(c.Query("customerName")); name != "" {
		q = q.Where("customer_name ILIKE ?", "%"+name+"%")
	}
	if active := c.Query("is_active"); active != "" {
		q = q.Where("is_active = ?", active == "true")
	}

	var rows []models.SalesCredit
	if err := paginate(q, page, limit).Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Could not load sales credits", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows, "pagination": gin.H{"page": page, "limit": limit}})
}

func GetBuyCredit(c *gin.Context) {
	page := getIntQ(c, "page", 1)
	limit := getIntQ(c, "limit", 25)

	q := config.DB.Model(&models.BuyCredit{}).Order("return_date ASC, id DESC")
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		q = q.Where("status = ?", st)
	}
	if name := strings.TrimSpace(c.Query("supplierName")); name != "" {
		q = q.Where("supplier_name ILIKE ?", "%"+name+"%")
	}
	if active := c.Query("is_active"); active != "" {
		q = q.Where("is_active = ?", active == "true")
	}

	var rows []models.BuyCredit
	if err := paginate(q, page, limit).Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Could not load buy credits", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows, "pagination": gin.H{"page": page, "limit": limit}})
}

// SalesCreditHistory returns the repayment trail for one credit record.
func SalesCreditHistory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid id", nil)
		return
	}

	var cr models.SalesCredit
	if err := config.DB.Select("id").First(&cr, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Sales credit not found", nil)
		return
	}

	var rows []models.SalesCreditTransaction
	if err := config.DB.
		Where("sales_credit_id = ?", cr.ID).
		Order("paid_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Could not load history", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

func BuyCreditHistory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid id", nil)
		return
	}

	var cr models.BuyCredit
	if err := config.DB.Select("id").First(&cr, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Buy credit not found", nil)
		return
	}

	var rows []models.BuyCreditTransaction
	if err := config.DB.
		Where("buy_credit_id = ?", cr.ID).
		Order("paid_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Could not load history", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}
