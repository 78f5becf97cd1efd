package models

import "time"

type LedgerType string

const (
	LedgerCash LedgerType = "CASH" // the single drawer, seeded once
	LedgerBank LedgerType = "BANK" // one row per bank account
)

type LedgerTxType string

const (
	LedgerTxSalesPaid       LedgerTxType = "SALES_PAID"        // cash/bank sale -> IN
	LedgerTxPurchasePaid    LedgerTxType = "PURCHASE_PAID"     // cash/bank purchase -> OUT
	LedgerTxSalesCreditPay  LedgerTxType = "SALES_CREDIT_PAY"  // customer repays -> IN
	LedgerTxBuyCreditPay    LedgerTxType = "BUY_CREDIT_PAY"    // we repay supplier -> OUT
	LedgerTxDeposit         LedgerTxType = "DEPOSIT"           // manual IN
	LedgerTxWithdrawal      LedgerTxType = "WITHDRAWAL"        // manual OUT
)

// Ledger is a balance-bearing account: the single cash drawer or one
// bank account. Balance equals the signed sum of its transactions.
type Ledger struct {
	ID   uint       `gorm:"primaryKey" json:"id"`
	Type LedgerType `gorm:"type:text;not null;index" json:"type"`

	Name    string `gorm:"size:120;not null" json:"name"`
	Balance int64  `gorm:"not null;default:0" json:"balance"`

	// bank-only fields, empty for CASH
	AccountName string `gorm:"size:120" json:"account_name,omitempty"`
	AccountNo   string `gorm:"size:64"  json:"account_no,omitempty"`
	BankName    string `gorm:"size:80"  json:"bank_name,omitempty"`

	IsActive bool `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LedgerTransaction is an append-only audit row. Exactly one row is
// written per balance mutation, in the same database transaction.
type LedgerTransaction struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	LedgerID uint `gorm:"index;not null" json:"ledger_id"`

	Type    LedgerTxType `gorm:"type:text;not null" json:"type"`
	In      int64        `gorm:"not null;default:0" json:"in"`
	Out     int64        `gorm:"not null;default:0" json:"out"`
	Balance int64        `gorm:"not null" json:"balance"` // balance after this movement

	RefType string `gorm:"size:40;not null" json:"ref_type"` // "sales", "buy", "sales_credit", "buy_credit", "manual"
	RefID   uint   `gorm:"not null" json:"ref_id"`
	RefUUID string `gorm:"size:36;index" json:"ref_uuid"` // correlation id

	ActorID     uint   `gorm:"index;not null" json:"actor_id"`
	Note        string `gorm:"size:255" json:"note,omitempty"`
	ReceiptPath string `gorm:"size:255" json:"receipt_path,omitempty"`

	TxDate    time.Time `gorm:"not null;index" json:"tx_date"`
	CreatedAt time.Time `json:"created_at"`
}
