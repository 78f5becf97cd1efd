package models

import "time"

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "CASH"
	PaymentBank   PaymentMethod = "BANK"
	PaymentCredit PaymentMethod = "CREDIT"
)

type SalesTransaction struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	TransCode string `gorm:"uniqueIndex;size:40" json:"trans_code"` // e.g. SL-2026-000123
	TransSeq  int64  `gorm:"not null" json:"trans_seq"`

	CustomerID uint     `gorm:"index;not null" json:"customer_id"`
	Customer   Customer `json:"customer"`

	Payment  PaymentMethod `gorm:"size:10;not null" json:"payment"`
	LedgerID *uint         `gorm:"index" json:"ledger_id"` // set for CASH/BANK settlement

	Total     int64     `gorm:"not null" json:"total"`
	SalesDate time.Time `gorm:"not null;index" json:"sales_date"`

	Items []SalesItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`

	CreatedByID uint      `gorm:"index;not null" json:"created_by_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type SalesItem struct {
	ID                 uint `gorm:"primaryKey" json:"id"`
	SalesTransactionID uint `gorm:"index;not null" json:"sales_transaction_id"`

	ProductTypeID uint        `gorm:"not null" json:"product_type_id"`
	ProductType   ProductType `json:"product_type"`

	Qty       int64 `gorm:"not null" json:"qty"`
	SellPrice int64 `gorm:"not null" json:"sell_price"` // unit price at sale time
	LineTotal int64 `gorm:"not null" json:"line_total"`
}
