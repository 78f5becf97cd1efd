package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/FuadJemal86/aquaErp-sub001/config"
	"github.com/FuadJemal86/aquaErp-sub001/models"
	"github.com/FuadJemal86/aquaErp-sub001/service"
	"github.com/FuadJemal86/aquaErp-sub001/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AddBankAccountInput struct {
	Name        string `json:"name" binding:"required"` // label shown in the UI
	AccountName string `json:"account_name" binding:"required"`
	AccountNo   string `json:"account_no" binding:"required"`
	BankName    string `json:"bank_name" binding:"required"`
}

func AddBankAccount(c *gin.Context) {
	var in AddBankAccountInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid payload", err)
		return
	}

	l := models.Ledger{
		Type:        models.LedgerBank,
		Name:        strings.TrimSpace(in.Name),
		AccountName: strings.TrimSpace(in.AccountName),
		AccountNo:   strings.TrimSpace(in.AccountNo),
		BankName:    strings.TrimSpace(in.BankName),
		Balance:     0,
		IsActive:    true,
	}
	if err := config.DB.Create(&l).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Could not create bank account", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Bank account created", "data": l})
}

// GetBankBalance lists the bank ledgers with their current balances.
func GetBankBalance(c *gin.Context) {
	var rows []models.Ledger
	q := config.DB.Where("type = ?", models.LedgerBank).Order("id ASC")
	if active := c.Query("is_active"); active != "" {
		q = q.Where("is_active = ?", active == "true")
	}
	if err := q.Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Could not load bank balances", err)
		return
	}
	utils.Success(c, "Bank balances loaded", rows)
}

type BankMoveInput struct {
	LedgerID uint      `form:"ledger_id" json:"ledger_id" binding:"required"`
	Amount   int64     `form:"amount" json:"amount" binding:"required"`
	Note     string    `form:"note" json:"note"`
	Date     time.Time `form:"date" json:"date" time_format:"2006-01-02"`
}

func bindBankMove(c *gin.Context) (*service.LedgerAdjustment, bool) {
	actorID, err := currentUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, "Unauthorized", nil)
		return nil, false
	}

	var in BankMoveInput
	if err := c.ShouldBind(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid payload", err)
		return nil, false
	}

	// deposits/withdrawals on this route are bank-only
	var l models.Ledger
	if err := config.DB.First(&l, in.LedgerID).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Bank account not found", nil)
		return nil, false
	}
	if l.Type != models.LedgerBank {
		utils.Error(c, http.StatusBadRequest, "Ledger is not a bank account", nil)
		return nil, false
	}

	receiptPath, err := utils.SaveUpload(c, "receipt", "receipts")
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Could not store receipt", err)
		return nil, false
	}

	return &service.LedgerAdjustment{
		LedgerID:    in.LedgerID,
		Amount:      in.Amount,
		ActorID:     actorID,
		Note:        in.Note,
		ReceiptPath: receiptPath,
		Date:        in.Date,
	}, true
}

func AddBankDeposit(c *gin.Context) {
	adj, ok := bindBankMove(c)
	if !ok {
		return
	}

	row, err := engine.Deposit(c.Request.Context(), *adj)
	if err != nil {
		utils.Error(c, ledgerErrStatus(err), "Could not record deposit", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deposit recorded", "data": row})
}

func AddBankWithdrawal(c *gin.Context) {
	adj, ok := bindBankMove(c)
	if !ok {
		return
	}

	row, err := engine.Withdraw(c.Request.Context(), *adj)
	if err != nil {
		utils.Error(c, ledgerErrStatus(err), "Could not record withdrawal", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Withdrawal recorded", "data": row})
}

func ledgerErrStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrLedgerNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInsufficientFunds):
		return http.StatusConflict
	case errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrLedgerInactive):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// GetBankTransaction lists bank ledger movements with in/out/net rollups.
func GetBankTransaction(c *gin.Context) {
	listLedgerTransactions(c, models.LedgerBank)
}

type ledgerSummary struct {
	Count    int64 `json:"count"`
	TotalIn  int64 `json:"total_in"`
	TotalOut int64 `json:"total_out"`
	Net      int64 `json:"net"`
}

// listLedgerTransactions is shared by the cash and bank history
// endpoints: page of rows plus an independent capped fetch for the
// summary, both under the same filters.
func listLedgerTransactions(c *gin.Context, ledgerType models.LedgerType) {
	page := getIntQ(c, "page", 1)
	limit := getIntQ(c, "limit", 25)

	q := config.DB.Model(&models.LedgerTransaction{}).
		Joins("JOIN ledgers ON ledgers.id = ledger_transactions.ledger_id").
		Where("ledgers.type = ?", ledgerType)

	if lid := strings.TrimSpace(c.Query("ledgerId")); lid != "" {
		q = q.Where("ledger_transactions.ledger_id = ?", lid)
	}
	if tid := strings.TrimSpace(c.Query("transactionId")); tid != "" {
		q = q.Where("ledger_transactions.ref_uuid ILIKE ?", "%"+tid+"%")
	}
	if name := strings.TrimSpace(c.Query("bankName")); name != "" {
		q = q.Where("ledgers.bank_name ILIKE ?", "%"+name+"%")
	}
	q = applyDateRange(q, "ledger_transactions.tx_date", getDateQ(c, "startDate"), getDateQ(c, "endDate"))

	var rows []models.LedgerTransaction
	if err := paginate(q.Session(&gorm.Session{}).Order("ledger_transactions.id DESC"), page, limit).
		Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Could not load transactions", err)
		return
	}

	var all []models.LedgerTransaction
	if err := q.Session(&gorm.Session{}).Limit(summaryCap).Find(&all).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Could not load summary", err)
		return
	}
	sum := ledgerSummary{Count: int64(len(all))}
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
