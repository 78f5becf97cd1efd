package controllers

import (
	"net/http"
	"time"

	"github.com/FuadJemal86/aquaErp-sub001/config"
	"github.com/FuadJemal86/aquaErp-sub001/models"
	"github.com/FuadJemal86/aquaErp-sub001/service"
	"github.com/FuadJemal86/aquaErp-sub001/utils"

	"github.com/gin-gonic/gin"
)

// GetCashBalance returns the single cash drawer.
func GetCashBalance(c *gin.Context) {
	l, err := engine.CashLedger(config.DB)
	if err != nil {
		utils.Error(c, ledgerErrStatus(err), "Could not load cash balance", err)
		return
	}
	utils.Success(c, "Cash balance loaded", l)
}

type CashMoveInput struct {
	Amount int64     `form:"amount" json:"amount" binding:"required"`
	Note   string    `form:"note" json:"note"`
	Date   time.Time `form:"date" json:"date" time_format:"2006-01-02"`
}

func bindCashMove(c *gin.Context) (*service.LedgerAdjustment, bool) {
	actorID, err := currentUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, "Unauthorized", nil)
		return nil, false
	}

	var in CashMoveInput
	if err := c.ShouldBind(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid payload", err)
		return nil, false
	}

	l, err := engine.CashLedger(config.DB)
	if err != nil {
		utils.Error(c, ledgerErrStatus(err), "Cash ledger missing", err)
		return nil, false
	}

	receiptPath, err := utils.SaveUpload(c, "receipt", "receipts")
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Could not store receipt", err)
		return nil, false
	}

	return &service.LedgerAdjustment{
		LedgerID:    l.ID,
		Amount:      in.Amount,
		ActorID:     actorID,
		Note:        in.Note,
		ReceiptPath: receiptPath,
		Date:        in.Date,
	}, true
}

func AddCashDeposit(c *gin.Context) {
	adj, ok := bindCashMove(c)
	if !ok {
		return
	}

	row, err := engine.Deposit(c.Request.Context(), *adj)
	if err != nil {
		utils.Error(c, ledgerErrStatus(err), "Could not record cash deposit", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cash deposit recorded", "data": row})
}

func AddCashWithdrawal(c *gin.Context) {
	adj, ok := bindCashMove(c)
	if !ok {
		return
	}

	row, err := engine.Withdraw(c.Request.Context(), *adj)
	if err != nil {
		utils.Error(c, ledgerErrStatus(err), "Could not record cash withdrawal", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cash withdrawal recorded", "data": row})
}

// GetCashTransaction lists drawer movements with in/out/net rollups.
func GetCashTransaction(c *gin.Context) {
	listLedgerTransactions(c, models.LedgerCash)
}
