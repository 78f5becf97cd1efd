package models

import "gorm.io/gorm"

type Customer struct {
	gorm.Model
	Name       string `gorm:"size:180;not null" json:"name"`
	Phone      string `gorm:"size:60"           json:"phone"`
	Address    string `gorm:"size:255"          json:"address"`
	IDCardPath string `gorm:"size:255"          json:"id_card_path,omitempty"`
	IsActive   bool   `gorm:"default:true"      json:"is_active"`
}
