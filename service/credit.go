package service

import (
	"context"
	"errors"
	"time"

	"github.com/FuadJemal86/aquaErp-sub001/models"

	"gorm.io/gorm"
)

// repaymentPlan validates a payment against the outstanding principal.
// Overpayment is rejected here, not clamped; the client must send an
// amount within the remaining balance.
func repaymentPlan(outstanding, amount int64) (newOutstanding int64, settled bool, err error) {
	if amount <= 0 {
		return 0, false, ErrInvalidAmount
	}
	if amount > outstanding {
		return 0, false, ErrOverpayment
	}
	newOutstanding = outstanding - amount
	return newOutstanding, newOutstanding == 0, nil
}

// RepayCommand is a validated repayment request.
type RepayCommand struct {
	CreditID    uint
	Amount      int64
	Method      models.PaymentMethod // CASH or BANK
	LedgerID    uint                 // bank ledger id, required for BANK
	ActorID     uint
	Note        string
	ReceiptPath string
}

type RepayResult struct {
	Outstanding int64                     `json:"outstanding"`
	Settled     bool                      `json:"settled"`
	LedgerTx    *models.LedgerTransaction `json:"ledger_transaction"`
}

// RepaySalesCredit applies a customer payment against a sales credit:
// one credit-transaction row, the credit principal decremented, and the
// money moved INTO the chosen ledger. All-or-nothing.
func (s *Service) RepaySalesCredit(ctx context.Context, cmd RepayCommand) (*RepayResult, error) {
	if cmd.Method != models.PaymentCash && cmd.Method != models.PaymentBank {
		return nil, ErrInvalidPayMethod
	}

	var res RepayResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cr models.SalesCredit
		if err := tx.Clauses(clauseUpdateLock()).First(&cr, cmd.CreditID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCreditNotFound
			}
			return err
		}
		if !cr.IsActive || cr.Status == models.CreditPaid {
			return ErrCreditSettled
		}

		newOutstanding, settled, err := repaymentPlan(cr.TotalMoney, cmd.Amount)
		if err != nil {
			return err
		}

		ledger, err := s.ResolveLedger(tx, cmd.Method, cmd.LedgerID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		rec := models.SalesCreditTransaction{
			SalesCreditID:      cr.ID,
			AmountPaid:         cmd.Amount,
			PaymentMethod:      cmd.Method,
			OutstandingBalance: newOutstanding,
			LedgerID:           ledger.ID,
			ReceiptPath:        cmd.ReceiptPath,
			Note:               cmd.Note,
			PaidByID:           cmd.ActorID,
			PaidAt:             now,
		}
		if err := tx.Create(&rec).Error; err != nil {
			return err
		}

		updates := map[string]any{"total_money": newOutstanding}
		if settled {
			updates["status"] = models.CreditPaid
			updates["is_active"] = false
		}
		if err := tx.Model(&models.SalesCredit{}).
			Where("id = ?", cr.ID).
			Updates(updates).Error; err != nil {
			return err
		}

		ltx, err := s.ApplyMovement(tx, ledger.ID, +cmd.Amount, Movement{
			Type:        models.LedgerTxSalesCreditPay,
			RefType:     "sales_credit",
			RefID:       cr.ID,
			ActorID:     cmd.ActorID,
			Note:        cmd.Note,
			ReceiptPath: cmd.ReceiptPath,
			TxDate:      now,
		})
		if err != nil {
			return err
		}

		res = RepayResult{Outstanding: newOutstanding, Settled: settled, LedgerTx: ltx}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Uint("sales_credit_id", cmd.CreditID).
		Int64("amount", cmd.Amount).
		Int64("outstanding", res.Outstanding).
		Bool("settled", res.Settled).
		Msg("sales credit repayment")
	return &res, nil
}

// RepayBuyCredit pays a supplier down: the credit principal drops and
// the money moves OUT of the chosen ledger, guarded against overdraft.
func (s *Service) RepayBuyCredit(ctx context.Context, cmd RepayCommand) (*RepayResult, error) {
	if cmd.Method != models.PaymentCash && cmd.Method != models.PaymentBank {
		return nil, ErrInvalidPayMethod
	}

	var res RepayResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cr models.BuyCredit
		if err := tx.Clauses(clauseUpdateLock()).First(&cr, cmd.CreditID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCreditNotFound
			}
			return err
		}
		if !cr.IsActive || cr.Status == models.CreditPaid {
			return ErrCreditSettled
		}

		newOutstanding, settled, err := repaymentPlan(cr.TotalMoney, cmd.Amount)
		if err != nil {
			return err
		}

		ledger, err := s.ResolveLedger(tx, cmd.Method, cmd.LedgerID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		rec := models.BuyCreditTransaction{
			BuyCreditID:        cr.ID,
			AmountPaid:         cmd.Amount,
			PaymentMethod:      cmd.Method,
			OutstandingBalance: newOutstanding,
			LedgerID:           ledger.ID,
			ReceiptPath:        cmd.ReceiptPath,
			Note:               cmd.Note,
			PaidByID:           cmd.ActorID,
			PaidAt:             now,
		}
		if err := tx.Create(&rec).Error; err != nil {
			return err
		}

		updates := map[string]any{"total_money": newOutstanding}
		if settled {
			updates["status"] = models.CreditPaid
			updates["is_active"] = false
		}
		if err := tx.Model(&models.BuyCredit{}).
			Where("id = ?", cr.ID).
			Updates(updates).Error; err != nil {
			return err
		}

		ltx, err := s.ApplyMovement(tx, ledger.ID, -cmd.Amount, Movement{
			Type:        models.LedgerTxBuyCreditPay,
			RefType:     "buy_credit",
			RefID:       cr.ID,
			ActorID:     cmd.ActorID,
			Note:        cmd.Note,
			ReceiptPath: cmd.ReceiptPath,
			TxDate:      now,
		})
		if err != nil {
			return err
		}

		res = RepayResult{Outstanding: newOutstanding, Settled: settled, LedgerTx: ltx}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Uint("buy_credit_id", cmd.CreditID).
		Int64("amount", cmd.Amount).
		Int64("outstanding", res.Outstanding).
		Bool("settled", res.Settled).
		Msg("buy credit repayment")
	return &res, nil
}
