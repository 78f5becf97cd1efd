package service

import (
	"context"
	"errors"
	"time"

	"github.com/FuadJemal86/aquaErp-sub001/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Service is the ledger/credit engine. Every balance mutation in the
// system goes through ApplyMovement under a row lock; the callers own
// the enclosing database transaction.
type Service struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewService(db *gorm.DB, log zerolog.Logger) *Service {
	return &Service{db: db, log: log}
}

func clauseUpdateLock() clause.Locking {
	return clause.Locking{Strength: "UPDATE"}
}

// Movement describes the audit-trail side of a balance mutation.
type Movement struct {
	Type        models.LedgerTxType
	RefType     string
	RefID       uint
	ActorID     uint
	Note        string
	ReceiptPath string
	TxDate      time.Time
}

// movementSplit maps a signed delta onto the in/out columns.
func movementSplit(delta int64) (in, out int64) {
	if delta >= 0 {
		return delta, 0
	}
	return 0, -delta
}

// nextBalance guards the running balance against going negative.
func nextBalance(balance, delta int64) (int64, error) {
	nb := balance + delta
	if nb < 0 {
		return 0, ErrInsufficientFunds
	}
	return nb, nil
}

// ApplyMovement locks the ledger row, shifts its balance by delta and
// appends the matching LedgerTransaction. delta > 0 is money in,
// delta < 0 money out. Must be called inside tx; any error rolls the
// whole operation back.
func (s *Service) ApplyMovement(tx *gorm.DB, ledgerID uint, delta int64, mv Movement) (*models.LedgerTransaction, error) {
	if delta == 0 {
		return nil, nil
	}

	var l models.Ledger
	if err := tx.Clauses(clauseUpdateLock()).First(&l, ledgerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLedgerNotFound
		}
		return nil, err
	}
	if !l.IsActive {
		return nil, ErrLedgerInactive
	}

	newBal, err := nextBalance(l.Balance, delta)
	if err != nil {
		return nil, err
	}

	if err := tx.Model(&models.Ledger{}).
		Where("id = ?", l.ID).
		Update("balance", newBal).Error; err != nil {
		return nil, err
	}

	in, out := movementSplit(delta)
	txDate := mv.TxDate
	if txDate.IsZero() {
		txDate = time.Now().UTC()
	}

	row := models.LedgerTransaction{
		LedgerID:    l.ID,
		Type:        mv.Type,
		In:          in,
		Out:         out,
		Balance:     newBal,
		RefType:     mv.RefType,
		RefID:       mv.RefID,
		RefUUID:     uuid.NewString(),
		ActorID:     mv.ActorID,
		Note:        mv.Note,
		ReceiptPath: mv.ReceiptPath,
		TxDate:      txDate,
	}
	if err := tx.Create(&row).Error; err != nil {
		return nil, err
	}

	s.log.Debug().
		Uint("ledger_id", l.ID).
		Int64("delta", delta).
		Int64("balance", newBal).
		Str("ref", row.RefUUID).
		Msg("ledger movement applied")

	return &row, nil
}

// CashLedger returns the single seeded CASH ledger row.
func (s *Service) CashLedger(tx *gorm.DB) (*models.Ledger, error) {
	var l models.Ledger
	err := tx.Where("type = ? AND is_active = true", models.LedgerCash).First(&l).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrLedgerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// ResolveLedger picks the target ledger for a CASH or BANK payment and
// checks the row's type matches the method.
func (s *Service) ResolveLedger(tx *gorm.DB, method models.PaymentMethod, ledgerID uint) (*models.Ledger, error) {
	switch method {
	case models.PaymentCash:
		return s.CashLedger(tx)
	case models.PaymentBank:
		var l models.Ledger
		err := tx.First(&l, ledgerID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLedgerNotFound
		}
		if err != nil {
			return nil, err
		}
		if l.Type != models.LedgerBank {
			return nil, ErrLedgerTypeMismatch
		}
		if !l.IsActive {
			return nil, ErrLedgerInactive
		}
		return &l, nil
	default:
		return nil, ErrInvalidPayMethod
	}
}

// LedgerAdjustment is a manual deposit or withdrawal.
type LedgerAdjustment struct {
	LedgerID    uint
	Amount      int64 // > 0
	ActorID     uint
	Note        string
	ReceiptPath string
	Date        time.Time
}

func (s *Service) Deposit(ctx context.Context, in LedgerAdjustment) (*models.LedgerTransaction, error) {
	if in.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	var row *models.LedgerTransaction
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		row, err = s.ApplyMovement(tx, in.LedgerID, +in.Amount, Movement{
			Type:        models.LedgerTxDeposit,
			RefType:     "manual",
			RefID:       in.LedgerID,
			ActorID:     in.ActorID,
			Note:        in.Note,
			ReceiptPath: in.ReceiptPath,
			TxDate:      in.Date,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (s *Service) Withdraw(ctx context.Context, in LedgerAdjustment) (*models.LedgerTransaction, error) {
	if in.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	var row *models.LedgerTransaction
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		row, err = s.ApplyMovement(tx, in.LedgerID, -in.Amount, Movement{
			Type:        models.LedgerTxWithdrawal,
			RefType:     "manual",
			RefID:       in.LedgerID,
			ActorID:     in.ActorID,
			Note:        in.Note,
			ReceiptPath: in.ReceiptPath,
			TxDate:      in.Date,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}
