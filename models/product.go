package models

import (
	"time"

	"gorm.io/gorm"
)

type ProductCategory struct {
	gorm.Model
	Name     string `gorm:"size:120;uniqueIndex;not null" json:"name"`
	IsActive bool   `gorm:"default:true"                  json:"is_active"`
}

type ProductType struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	CategoryID uint            `gorm:"index;not null" json:"category_id"`
	Category   ProductCategory `json:"category"`

	Name      string `gorm:"size:180;not null" json:"name"`
	Unit      string `gorm:"size:40"           json:"unit"` // e.g. bottle, crate, jar
	SellPrice int64  `gorm:"not null"          json:"sell_price"`
	BuyPrice  int64  `gorm:"not null"          json:"buy_price"`
	IsActive  bool   `gorm:"default:true"      json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductStock is the quantity on hand, one row per product type.
type ProductStock struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	ProductTypeID uint        `gorm:"uniqueIndex;not null" json:"product_type_id"`
	ProductType   ProductType `json:"product_type"`

	Quantity int64 `gorm:"not null;default:0" json:"quantity"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductTransaction is an append-only stock movement row with the
// resulting quantity snapshot.
type ProductTransaction struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	ProductTypeID uint `gorm:"index;not null" json:"product_type_id"`

	In    int64 `gorm:"not null;default:0" json:"in"`
	Out   int64 `gorm:"not null;default:0" json:"out"`
	Stock int64 `gorm:"not null"           json:"stock"` // quantity after this movement

	RefType string `gorm:"size:40;not null" json:"ref_type"` // "sales", "buy", "adjust"
	RefID   uint   `gorm:"not null"         json:"ref_id"`

	ActorID uint      `gorm:"index;not null" json:"actor_id"`
	Note    string    `gorm:"size:255"       json:"note,omitempty"`
	TxDate  time.Time `gorm:"not null;index" json:"tx_date"`

	CreatedAt time.Time `json:"created_at"`
}
