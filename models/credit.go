package models

import "time"

type CreditStatus string

const (
	CreditAccepted CreditStatus = "ACCEPTED"
	CreditOverdue  CreditStatus = "OVERDUE"
	CreditPaid     CreditStatus = "PAID"
)

// SalesCredit is money a customer still owes on a credit sale.
// TotalMoney is the REMAINING principal, decremented by each repayment.
type SalesCredit struct {
	ID                 uint `gorm:"primaryKey" json:"id"`
	SalesTransactionID uint `gorm:"index;not null" json:"sales_transaction_id"`

	CustomerID   uint   `gorm:"index;not null" json:"customer_id"`
	CustomerName string `gorm:"size:180;not null" json:"customer_name"` // snapshot

	TotalMoney int64     `gorm:"not null" json:"total_money"`
	IssuedDate time.Time `gorm:"not null" json:"issued_date"`
	ReturnDate time.Time `gorm:"not null;index" json:"return_date"`

	Status   CreditStatus `gorm:"size:12;not null;index" json:"status"`
	IsActive bool         `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BuyCredit is money still owed to a supplier on a credit purchase.
type BuyCredit struct {
	ID               uint `gorm:"primaryKey" json:"id"`
	BuyTransactionID uint `gorm:"index;not null" json:"buy_transaction_id"`

	SupplierID   uint   `gorm:"index;not null" json:"supplier_id"`
	SupplierName string `gorm:"size:180;not null" json:"supplier_name"` // snapshot

	TotalMoney int64     `gorm:"not null" json:"total_money"`
	IssuedDate time.Time `gorm:"not null" json:"issued_date"`
	ReturnDate time.Time `gorm:"not null;index" json:"return_date"`

	Status   CreditStatus `gorm:"size:12;not null;index" json:"status"`
	IsActive bool         `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SalesCreditTransaction is one repayment against a sales credit.
// Append-only audit trail.
type SalesCreditTransaction struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	SalesCreditID uint `gorm:"index;not null" json:"sales_credit_id"`

	AmountPaid         int64         `gorm:"not null" json:"amount_paid"`
	PaymentMethod      PaymentMethod `gorm:"size:10;not null" json:"payment_method"` // CASH / BANK
	OutstandingBalance int64         `gorm:"not null" json:"outstanding_balance"`    // remaining after this payment
	LedgerID           uint          `gorm:"index;not null" json:"ledger_id"`

	ReceiptPath string `gorm:"size:255" json:"receipt_path,omitempty"`
	Note        string `gorm:"size:255" json:"note,omitempty"`

	PaidByID uint      `gorm:"index;not null" json:"paid_by_id"`
	PaidAt   time.Time `gorm:"not null" json:"paid_at"`

	CreatedAt time.Time `json:"created_at"`
}

// BuyCreditTransaction is one repayment against a buy credit.
type BuyCreditTransaction struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	BuyCreditID uint `gorm:"index;not null" json:"buy_credit_id"`

	AmountPaid         int64         `gorm:"not null" json:"amount_paid"`
	PaymentMethod      PaymentMethod `gorm:"size:10;not null" json:"payment_method"`
	OutstandingBalance int64         `gorm:"not null" json:"outstanding_balance"`
	LedgerID           uint          `gorm:"index;not null" json:"ledger_id"`

	ReceiptPath string `gorm:"size:255" json:"receipt_path,omitempty"`
	Note        string `gorm:"size:255" json:"note,omitempty"`

	PaidByID uint      `gorm:"index;not null" json:"paid_by_id"`
	PaidAt   time.Time `gorm:"not null" json:"paid_at"`

	CreatedAt time.Time `json:"created_at"`
}
