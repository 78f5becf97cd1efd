package models

import "time"

type BuyTransaction struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	TransCode string `gorm:"uniqueIndex;size:40" json:"trans_code"` // e.g. BY-2026-000045
	TransSeq  int64  `gorm:"not null" json:"trans_seq"`

	SupplierID uint     `gorm:"index;not null" json:"supplier_id"`
	Supplier   Supplier `json:"supplier"`

	Payment  PaymentMethod `gorm:"size:10;not null" json:"payment"`
	LedgerID *uint         `gorm:"index" json:"ledger_id"` // set for CASH/BANK settlement

	Total   int64     `gorm:"not null" json:"total"`
	BuyDate time.Time `gorm:"not null;index" json:"buy_date"`

	Items []BuyItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`

	CreatedByID uint      `gorm:"index;not null" json:"created_by_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type BuyItem struct {
	ID               uint `gorm:"primaryKey" json:"id"`
	BuyTransactionID uint `gorm:"index;not null" json:"buy_transaction_id"`

	ProductTypeID uint        `gorm:"not null" json:"product_type_id"`
	ProductType   ProductType `json:"product_type"`

	Qty       int64 `gorm:"not null" json:"qty"`
	BuyPrice  int64 `gorm:"not null" json:"buy_price"` // unit cost at purchase time
	LineTotal int64 `gorm:"not null" json:"line_total"`
}
