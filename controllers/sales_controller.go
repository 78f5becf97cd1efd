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

type SalesItemInput struct {
	ProductTypeID uint  `json:"product_type_id" binding:"required"`
	Qty           int64 `json:"qty" binding:"required,gt=0"`
	SellPrice     int64 `json:"sell_price" binding:"required,gt=0"`
}

type SalesInput struct {
	CustomerID uint             `json:"customer_id" binding:"required"`
	Payment    string           `json:"payment" binding:"required"` // CASH | BANK | CREDIT
	LedgerID   *uint            `json:"ledger_id"`                  // bank ledger, required for BANK
	ReturnDate *time.Time       `json:"return_date"`                // due date, required for CREDIT
	SalesDate  time.Time        `json:"sales_date"`
	Items      []SalesItemInput `json:"items" binding:"required,min=1"`
}

// AddSales records a sale: stock goes out per item, and the money either
// lands in a ledger (CASH/BANK) or opens a sales credit (CREDIT). One
// database transaction end to end.
func AddSales(c *gin.Context) {
	var in SalesInput
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
		utils.Error(c, http.StatusBadRequest, "return_date is required for CREDIT sales", nil)
		return
	}

	actorID, err := currentUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	var customer models.Customer
	if err := config.DB.Where("id = ? AND is_active = true", in.CustomerID).First(&customer).Error; err != nil {
		utils.Error(c, http.StatusBadRequest, "Customer not found", nil)
		return
	}

	salesDate := in.SalesDate
	if salesDate.IsZero() {
		salesDate = time.Now().UTC()
	}

	// retry for trans-code collisions under concurrent sales
	const maxRetries = 3
	var created models.SalesTransaction
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		lastErr = config.DB.Transaction(func(tx *gorm.DB) error {
			var last models.SalesTransaction
			if err := tx.Clauses(clauseUpdateLock()).
				Order("trans_seq DESC").
				Limit(1).
				Find(&last).Error; err != nil {
				return err
			}
			nextSeq := last.TransSeq + 1

			items := make([]models.SalesItem, 0, len(in.Items))
			var total int64
			for _, it := range in.Items {
				items = append(items, models.SalesItem{
					ProductTypeID: it.ProductTypeID,
					Qty:           it.Qty,
					SellPrice:     it.SellPrice,
					LineTotal:     it.Qty * it.SellPrice,
				})
				total += it.Qty * it.SellPrice
			}

			data := models.SalesTransaction{
				TransCode:   utils.GenTransCode("SL", nextSeq, salesDate),
				TransSeq:    nextSeq,
				CustomerID:  in.CustomerID,
				Payment:     pm,
				Total:       total,
				SalesDate:   salesDate,
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

			// stock out, one audit row per item
			for _, it := range in.Items {
				if _, err := applyStockDelta(tx, it.ProductTypeID, -it.Qty, "sales", data.ID, actorID, "", salesDate); err != nil {
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
				if _, err := engine.ApplyMovement(tx, ledger.ID, +total, service.Movement{
					Type:    models.LedgerTxSalesPaid,
					RefType: "sales",
					RefID:   data.ID,
					ActorID: actorID,
					TxDate:  salesDate,
				}); err != nil {
					return err
				}
				if err := tx.Model(&models.SalesTransaction{}).
					Where("id = ?", data.ID).
					Update("ledger_id", ledger.ID).Error; err != nil {
					return err
				}
			case models.PaymentCredit:
				credit := models.SalesCredit{
					SalesTransactionID: data.ID,
					CustomerID:         customer.ID,
					CustomerName:       customer.Name,
					TotalMoney:         total,
					IssuedDate:         salesDate,
					ReturnDate:         *in.ReturnDate,
					Status:             models.CreditAccepted,
					IsActive:           true,
				}
				if err := tx.Create(&credit).Error; err != nil {
					return err
				}
			}

			created = data
			return nil
		})

		if lastErr == nil {
			c.JSON(http.StatusCreated, gin.H{"message": "Sale recorded", "data": created})
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
	utils.Error(c, status, "Could not record sale", lastErr)
}

var errUniqueViolation = errors.New("unique_violation")

// ===== reporting =====

type salesSummary struct {
	Count int64 `json:"count"`
	Total int64 `json:"total"`
}

// GetSalesTransaction lists sales with pagination, text and date filters,
// plus a summary over the full filtered set (capped).
func GetSalesTransaction(c *gin.Context) {
	page := getIntQ(c, "page", 1)
	limit := getIntQ(c, "limit", 25)

	q := config.DB.Model(&models.SalesTransaction{}).Preload("Customer").Preload("Items")

	if tid := strings.TrimSpace(c.Query("transactionId")); tid != "" {
		q = q.Where("trans_code ILIKE ?", "%"+tid+"%")
	}
	if name := strings.TrimSpace(c.Query("customerName")); name != "" {
		q = q.Joins("JOIN customers ON customers.id = sales_transactions.customer_id").
			Where("customers.name ILIKE ?", "%"+name+"%")
	}
	q = applyDateRange(q, "sales_date", getDateQ(c, "startDate"), getDateQ(c, "endDate"))

	var rows []models.SalesTransaction
	if err := paginate(q.Session(&gorm.Session{}).Order("id DESC"), page, limit).Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Could not load sales", err)
		return
	}

	// summary from an independent capped fetch of the same filter
	var all []models.SalesTransaction
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

func SalesDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid id", nil)
		return
	}

	var row models.SalesTransaction
	if err := config.DB.Preload("Customer").Preload("Items.ProductType").First(&row, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Sale not found", nil)
		return
	}
	utils.Success(c, "Sale loaded", row)
}
