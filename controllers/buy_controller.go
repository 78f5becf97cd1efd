package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/FuadJemal86/aquaErp-sub001/config"
	"github.com/FuadJemal86/aquaErp-sub001/models"
	"github.com/FuadJemal86/aquaErp-sub001/service"
	"github.com/FuadJemal86/aquaErp-sub001/utils"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type BuyItemInput struct {
	ProductTypeID uint  `json:"product_type_id" binding:"required"`
	Qty           int64 `json:"qty" binding:"required,gt=0"`
	BuyPrice      int64 `json:"buy_price" binding:"required,gt=0"`
}

type BuyInput struct {
	SupplierID uint           `json:"supplier_id" binding:"required"`
	Payment    string         `json:"payment" binding:"required"` // CASH | BANK | CREDIT
	LedgerID   *uint          `json:"ledger_id"`
	ReturnDate *time.Time     `json:"return_date"` // required for CREDIT
	BuyDate    time.Time      `json:"buy_date"`
	Items      []BuyItemInput `json:"items" binding:"required,min=1"`
}

// AddBuy records a purchase: stock comes in per item, and the money
// either leaves a ledger (CASH/BANK, overdraft-guarded) or opens a buy
// credit owed to the supplier.
func AddBuy(c *gin.Context) {
	var in BuyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid payload", err)
		return
	}

	pm := models.PaymentMethod(in.Payment)
	if pm != models.PaymentCash && pm != models.PaymentBank && pm != models.PaymentCredit {
		utils.Error(c, http.StatusBadRequest, "Payment must be CASH, BANK or CREDIT", nil)
		return
	}
	if pm == models.PaymentCredit && in.ReturnDate == nil {
		utils.Error(c, http.StatusBadRequest, "return_date is required for CREDIT purchases", nil)
		return
	}

	actorID, err := currentUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	var supplier models.Supplier
	if err := config.DB.Where("id = ? AND is_active = true", in.SupplierID).First(&supplier).Error; err != nil {
		utils.Error(c, http.StatusBadRequest, "Supplier not found", nil)
		return
	}

	buyDate := in.BuyDate
	if buyDate.IsZero() {
		buyDate = time.Now().UTC()
	}

	const maxRetries = 3
	var created models.BuyTransaction
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		lastErr = config.DB.Transaction(func(tx *gorm.DB) error {
			var last models.BuyTransaction
			if err := tx.Clauses(clauseUpdateLock()).
				Order("trans_seq DESC").
				Limit(1).
				Find(&last).Error; err != nil {
				return err
			}
			nextSeq := last.TransSeq + 1

			items := make([]models.BuyItem, 0, len(in.Items))
			var total int64
			for _, it := range in.Items {
				items = append(items, models.BuyItem{
					ProductTypeID: it.ProductTypeID,
					Qty:           it.Qty,
					BuyPrice:      it.BuyPrice,
					LineTotal:     it.Qty * it.BuyPrice,
				})
				total += it.Qty * it.BuyPrice
			}

			data := models.BuyTransaction{
				TransCode:   utils.GenTransCode("BY", nextSeq, buyDate),
				TransSeq:    nextSeq,
				SupplierID:  in.SupplierID,
				Payment:     pm,
				Total:       total,
				BuyDate:     buyDate,
				Items:       items,
				CreatedByID: actorID,
			}
			if err := tx.Create(&data).Error; err != nil {
				var pgErr *pgconn.PgError
				if errors.As(err, &pgErr) && pgErr.Code == "23505" {
					return errUniqueViolation
				}
				return err
			}

			// stock in, one audit row per item
			for _, it := range in.Items {
				if _, err := applyStockDelta(tx, it.ProductTypeID, +it.Qty, "buy", data.ID, actorID, "", buyDate); err != nil {
					return err
				}
			}

			switch pm {
			case models.PaymentCash, models.PaymentBank:
				var ledgerID uint
				if in.LedgerID != nil {
					ledgerID = *in.LedgerID
				}
				ledger, err := engine.ResolveLedger(tx, pm, ledgerID)
				if err != nil {
					return err
				}
				if _, err := engine.ApplyMovement(tx, ledger.ID, -total, service.Movement{
					Type:    models.LedgerTxPurchasePaid,
					RefType: "buy",
					RefID:   data.ID,
					ActorID: actorID,
					TxDate:  buyDate,
				}); err != nil {
					return err
				}
				if err := tx.Model(&models.BuyTransaction{}).
					Where("id = ?", data.ID).
					Update("ledger_id", ledger.ID).Error; err != nil {
					return err
				}
			case models.PaymentCredit:
				credit := models.BuyCredit{
					BuyTransactionID: data.ID,
					SupplierID:       supplier.ID,
					SupplierName:     supplier.Name,
					TotalMoney:       total,
					IssuedDate:       buyDate,
					ReturnDate:       *in.ReturnDate,
					Status:           models.CreditAccepted,
					IsActive:         true,
				}
				if err := tx.Create(&credit).Error; err != nil {
					return err
				}
			}

			created = data
			return nil
		})

		if lastErr == nil {
			c.JSON(http.StatusCreated, gin.H{"message": "Purchase recorded", "data": created})
			return
		}
		if !errors.Is(lastErr, errUniqueViolation) {
			break
		}
	}

	status := http.StatusBadRequest
	if errors.Is(lastErr, service.ErrInsufficientFunds) {
		status = http.StatusConflict
	}
	utils.Error(c, status, "Could not record purchase", lastErr)
}

// GetBuyTransaction lists purchases the same way GetSalesTransaction
// lists sales.
func GetBuyTransaction(c *gin.Context) {
	page := getIntQ(c, "page", 1)
	limit := getIntQ(c, "limit", 25)

	q := config.DB.Model(&models.BuyTransaction{}).Preload("Supplier").Preload("Items")

	if tid := strings.TrimSpace(c.Query("transactionId")); tid != "" {
		q = q.Where("trans_code ILIKE ?", "%"+tid+"%")
	}
	if name := strings.TrimSpace(c.Query("supplierName")); name != "" {
		q = q.Joins("JOIN suppliers ON suppliers.id = buy_transactions.supplier_id").
			Where("suppliers.name ILIKE ?", "%"+name+"%")
	}
	q = applyDateRange(q, "buy_date", getDateQ(c, "startDate"), getDateQ(c, "endDate"))

	var rows []models.BuyTransaction
	if err := paginate(q.Session(&gorm.Session{}).Order("id DESC"), page, limit).Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Could not load purchases", err)
		return
	}

	var all []models.BuyTransaction
	if err := q.Session(&gorm.Session{}).Limit(summaryCap).Find(&all).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Could not load summary", err)
		return
	}
	sum := salesSummary{Count: int64(len(all))}
	for _, r := range all {
		sum.Total += r.Total
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    rows,
		"summary": sum,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
		},
	})
}

func BuyDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid id", nil)
		return
	}

	var row models.BuyTransaction
	if err := config.DB.Preload("Supplier").Preload("Items.ProductType").First(&row, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Purchase not found", nil)
		return
	}
	utils.Success(c, "Purchase loaded", row)
}
